// Package provider is the only place that knows how semantic operations map
// onto the banking API.
//
// # Routes
//
// A Route is one of a closed set of request descriptors (Accounts, Balance,
// Webhooks, RegisterWebhook, DeleteWebhook). Each carries exactly the
// parameters its endpoint needs and is translated centrally into an HTTP
// request, so model code never builds URLs.
//
// # Provider
//
// Provider is the transport-agnostic contract the models depend on:
// Request returns one JSON object, RequestArray a list of objects and
// Deliver performs a call whose payload is ignored. HTTPProvider implements
// it over net/http with a bearer access token.
//
// # Error Handling
//
// Every transport, status or decoding failure comes back through the single
// error return. Status failures are *Error values that match the sentinels
// common.ErrUnauthorized, common.ErrNotFound, common.ErrUnavailable or
// common.ErrProvider with errors.Is; malformed bodies match
// common.ErrDecoding.
package provider
