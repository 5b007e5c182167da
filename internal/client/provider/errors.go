package provider

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/monzoclient/internal/common"
)

var ErrUnsupportedRoute = errors.New("unsupported route")

// Error is a failed provider call. Kind is one of the common sentinels;
// Cause, when set, is the underlying transport error.
type Error struct {
	Route      string
	StatusCode int
	Code       string
	Message    string
	Kind       error
	Cause      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Route, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Code != "" {
		msg += ": " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// kindForStatus maps a non-2xx status code onto a sentinel.
func kindForStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return common.ErrUnauthorized
	case code == http.StatusNotFound:
		return common.ErrNotFound
	case code >= http.StatusInternalServerError:
		return common.ErrUnavailable
	default:
		return common.ErrProvider
	}
}
