package models

import "net/http"

// FieldError is one entry of a validation failure list.
type FieldError struct {
	Field   string `json:"path"`
	Message string `json:"msg"`
}

// HTTPError is the one error kind every controller speaks. It carries the
// status the responder should use and, for validation failures, the per-field
// list. Internal causes never ride along to the client.
type HTTPError struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func NewValidationError(errs []FieldError) *HTTPError {
	return &HTTPError{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation Error",
		Errors:  errs,
	}
}
