package common

const (
	// AuthHeaderName is the HTTP header carrying the bearer credential.
	AuthHeaderName = "Authorization"

	// BearerPrefix precedes the token value in AuthHeaderName.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName carries a generated id used to correlate a request
	// with client-side logs.
	RequestIDHeaderName = "X-Request-Id"

	// ContentTypeJSON is the media type for all request and response bodies.
	ContentTypeJSON = "application/json"
)
