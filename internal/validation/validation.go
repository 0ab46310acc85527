// Package validation binds incoming requests into typed payloads and
// validates them.
//
// Rules live in `validate` struct tags (go-playground/validator); failures
// come back as 400 errs.HTTPError values with per-field details.
package validation
