// Package errs defines the error shape returned to API clients.
//
// Every failed request, whether it failed while binding input, inside
// the database or on an unknown route, is answered with an HTTPError
// serialized as JSON, so clients only ever have to parse one body shape.
package errs

import "strings"

// FieldError represents a field-level input error.
// Example:
//
//	{ "field": "id", "error": "must be an integer" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST", "TODO_REQUIRED").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users as-is.
//   - Errors: list of per-field errors.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
