package jsonx

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/monzoclient/internal/common"
)

var (
	errMissing   = errors.New("field is missing")
	errNotObject = errors.New("field is not an object")
	errNotArray  = errors.New("field is not an array")
)

// DecodingError reports a malformed or missing required value. Field is
// empty when the payload itself could not be decoded.
type DecodingError struct {
	Field string
	Err   error
}

func (e *DecodingError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", common.ErrDecoding, e.Err)
	}
	return fmt.Sprintf("%s: field %q: %v", common.ErrDecoding, e.Field, e.Err)
}

func (e *DecodingError) Unwrap() []error {
	return []error{common.ErrDecoding, e.Err}
}
