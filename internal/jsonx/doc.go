// Package jsonx maps loosely typed JSON values onto Go types.
//
// Cosmetic fields are permissive: String and Int64 return the zero value
// when a field is missing or has the wrong type. Fields whose absence means
// the response is not what the client expects (timestamps, envelopes) are
// strict and fail with a *DecodingError, which matches common.ErrDecoding
// under errors.Is.
package jsonx
