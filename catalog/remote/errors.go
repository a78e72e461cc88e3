package remote

import "fmt"

// ConflictError is an error used to encode a 409 response from the
// remote admin API, which signals a uniqueness violation
// (such as a duplicate category name)
type ConflictError struct {
	Resource string
}

// NewConflictError constructs a new ConflictError
func NewConflictError(resource string) *ConflictError {
	return &ConflictError{
		Resource: resource,
	}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists in the remote admin API", e.Resource)
}

// StatusError is an error used to encode any other non-2xx response
// from the remote admin API
type StatusError struct {
	StatusCode int
	Message    string
}

// NewStatusError constructs a new StatusError
func NewStatusError(statusCode int, message string) *StatusError {
	return &StatusError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote admin API responded with status %d: %s",
		e.StatusCode, e.Message)
}
