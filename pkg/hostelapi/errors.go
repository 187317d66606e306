package hostelapi

import "fmt"

// RequestError is a non-2xx response from the backend. Message is the
// server-provided message when the body carried one, otherwise a fallback
// synthesized from the status code.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("hostelapi: %s (status %d)", e.Message, e.Status)
}

// ValidationError is a client-side precondition failure raised before any
// network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var ErrUserIDRequired = &ValidationError{Message: "User ID is required"}
