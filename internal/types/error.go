package types

import "fmt"

// Error type names carried by CustomError.
const (
	TypeBadRequest = "bad_request"
	TypeNotFound   = "not_found"
	TypeConflict   = "conflict"
)

// CustomError is an error with an explicit HTTP status.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// BadRequest returns a 400 CustomError with a formatted message.
func BadRequest(format string, args ...any) *CustomError {
	return &CustomError{Code: 400, Message: fmt.Sprintf(format, args...), Type: TypeBadRequest}
}

// NotFound returns a 404 CustomError.
func NotFound(message string) *CustomError {
	return &CustomError{Code: 404, Message: message, Type: TypeNotFound}
}
