package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)))
}

func TestConstructors(t *testing.T) {
	code := "TODO_REQUIRED"

	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"bad request custom code", NewBadRequestError("bad", true, &code, nil), http.StatusBadRequest, code},
		{"not found", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestHTTPError_ErrorsAs(t *testing.T) {
	base := NewNotFoundError("Route not found", false, nil)
	wrapped := fmt.Errorf("routing: %w", base)

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Same(t, base, httpErr)
	assert.Equal(t, "routing: Route not found", wrapped.Error())
}
