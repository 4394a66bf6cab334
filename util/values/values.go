package values

type contextKey string

// ContextTracingKey carries the per-request tracing context.
const ContextTracingKey = contextKey("tracing-context")

// ContextUserKey carries the resolved actor's user ID.
const ContextUserKey = contextKey("user_id")

const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
)

// Status strings returned inside the response envelope. util.StatusCode maps
// them to HTTP status codes.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	ActiveLogin    = "active-login"
)
