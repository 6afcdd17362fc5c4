package siakad

import "fmt"

// NotFoundError marks an entity the upstream has no record of yet (no profile,
// no payment). Callers treat it as an expected state, not a failure.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NetworkError wraps transport failures and upstream 5xx responses. Both are
// retryable by user action.
type NetworkError struct {
	Op  string
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e NetworkError) Unwrap() error { return e.Err }

// ValidationError is an upstream rejection of the request payload. Fields
// carries per-field messages when the upstream provides them, so the frontend
// can render them inline.
type ValidationError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
