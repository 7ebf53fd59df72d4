package errors

import "fmt"

// HTTPError carries an HTTP status alongside a user-facing message.
// Delivery layers create these in mapError; pkg/response extracts the status.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}
