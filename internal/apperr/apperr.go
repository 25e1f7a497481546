// Package apperr defines the application error taxonomy. Validation failures
// carry a field and a human-readable message and map to HTTP 400. Missing
// entities are reported as absent results (nil entity or false), not errors,
// so handlers decide the 404 themselves.
package apperr

import "fmt"

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
