package error

// RequestErrorCode defines error codes for failures that happen before a use case runs.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	// Throttling errors (01XXXX)
	ErrCodeRateLimited RequestErrorCode = "REQ-010001"
)
