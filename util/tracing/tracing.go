package tracing

// Context identifies a single request as it moves through the handlers.
// RequestID is generated when the caller does not supply one.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
