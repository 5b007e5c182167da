package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Object is a decoded JSON object.
type Object map[string]any

// Parse decodes data into an Object. Numbers are kept as json.Number so
// 64-bit integers survive without float rounding.
func Parse(data []byte) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &DecodingError{Err: err}
	}
	obj, ok := asObject(raw)
	if !ok {
		return nil, &DecodingError{Err: fmt.Errorf("expected object, got %T", raw)}
	}
	return obj, nil
}

// String returns the string at field, or "".
func (o Object) String(field string) string {
	s, _ := o[field].(string)
	return s
}

// Int64 returns the integer at field, or 0 when absent, fractional or not a number.
func (o Object) Int64(field string) int64 {
	switch v := o[field].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		if v != float64(int64(v)) {
			return 0
		}
		return int64(v)
	default:
		return 0
	}
}

// Time parses an ISO-8601 (RFC 3339) timestamp at field. Fractional seconds
// are accepted. Missing, non-string or unparseable values are errors.
func (o Object) Time(field string) (time.Time, error) {
	raw, ok := o[field]
	if !ok {
		return time.Time{}, &DecodingError{Field: field, Err: errMissing}
	}
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, &DecodingError{Field: field, Err: fmt.Errorf("expected string, got %T", raw)}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &DecodingError{Field: field, Err: err}
	}
	return t, nil
}

// Object returns the nested object at field, or nil.
func (o Object) Object(field string) Object {
	obj, _ := asObject(o[field])
	return obj
}

// Array returns the objects held in the array at field. Non-object elements
// are skipped; a missing field yields nil.
func (o Object) Array(field string) []Object {
	items, _ := o[field].([]any)
	out := make([]Object, 0, len(items))
	for _, item := range items {
		if obj, ok := asObject(item); ok {
			out = append(out, obj)
		}
	}
	return out
}

// RequireObject is the strict form of Object.
func (o Object) RequireObject(field string) (Object, error) {
	obj, ok := asObject(o[field])
	if !ok {
		return nil, &DecodingError{Field: field, Err: errNotObject}
	}
	return obj, nil
}

// RequireArray is the strict form of Array: the field must hold an array.
func (o Object) RequireArray(field string) ([]Object, error) {
	if _, ok := o[field].([]any); !ok {
		return nil, &DecodingError{Field: field, Err: errNotArray}
	}
	return o.Array(field), nil
}

func asObject(v any) (Object, bool) {
	switch m := v.(type) {
	case map[string]any:
		return Object(m), true
	case Object:
		return m, true
	default:
		return nil, false
	}
}
