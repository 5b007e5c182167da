package common

const (
	// AuthorizationHeaderName carries the bearer access token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"

	// DefaultAPIBaseURL is the production API endpoint.
	DefaultAPIBaseURL = "https://api.monzo.com"
)
