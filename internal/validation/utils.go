package validation

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Validatable is implemented by request payloads that validate themselves.
type Validatable interface {
	Validate() error
}

var binder = &echo.DefaultBinder{}

// BindAndValidate binds path params and, when the request declares a JSON
// body, that body into payload, then validates it.
//
// A body sent with any other Content-Type (or none) is ignored, so its
// fields stay at their zero values. Bind and validation failures become a
// 400 *errs.HTTPError; the raw bind error is only logged.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := binder.BindPathParams(c, payload); err != nil {
		logBindError(c, err, "path")
		return errs.NewBadRequestError("Invalid path parameter", true, nil, pathParamErrors(c))
	}

	if hasJSONBody(c.Request()) {
		if err := binder.BindBody(c, payload); err != nil {
			logBindError(c, err, "body")
			return errs.NewBadRequestError("Request body is not valid JSON for this endpoint", true, nil, nil)
		}
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

func hasJSONBody(req *http.Request) bool {
	if req.ContentLength == 0 {
		return false
	}
	ctype := strings.ToLower(req.Header.Get(echo.HeaderContentType))
	return strings.HasPrefix(ctype, echo.MIMEApplicationJSON)
}

// Path params are all numeric ids.
func pathParamErrors(c echo.Context) []errs.FieldError {
	fieldErrors := make([]errs.FieldError, 0, len(c.ParamNames()))
	for _, name := range c.ParamNames() {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: name,
			Error: "must be an integer",
		})
	}
	return fieldErrors
}

func logBindError(c echo.Context, err error, source string) {
	bindErr := err
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Internal != nil {
		bindErr = echoErr.Internal
	}

	zerolog.Ctx(c.Request().Context()).Warn().
		Err(bindErr).
		Str("source", source).
		Msg("failed to bind request")
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}
		case "max":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())
		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
