package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(buf *bytes.Buffer) *server.Server {
	logger := zerolog.New(buf)
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated", incoming: ""},
		{name: "propagated", incoming: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := RequestID()(func(c echo.Context) error {
				seen = GetRequestID(c)
				return nil
			})(c)
			require.NoError(t, err)

			assert.NotEmpty(t, seen)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seen)
			}
			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
		})
	}
}

func TestEnhanceContext_PropagatesLogger(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/todos")

	handler := RequestID()(NewContextEnhancer(s).EnhanceContext()(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		GetLogger(c).Info().Msg("from handler")
		return nil
	}))
	require.NoError(t, handler(c))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, "req-7", entry["request_id"])
		assert.Equal(t, "/todos", entry["path"])
		assert.Equal(t, "GET", entry["method"])
	}
}

func TestGetLogger_WithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "app error passes through",
			err:        errs.NewBadRequestError("bad id", true, nil, nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    "bad id",
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Route not found",
		},
		{
			name:       "echo error keeps status",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
			wantMsg:    "Method Not Allowed",
		},
		{
			name:       "unclassified error",
			err:        errors.Wrap(errors.New("connection refused"), "failed to list todos"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			global := NewGlobalMiddlewares(newTestServer(&buf))

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestGlobalErrorHandler_CommittedResponse(t *testing.T) {
	var buf bytes.Buffer
	global := NewGlobalMiddlewares(newTestServer(&buf))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "partial"))

	global.GlobalErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusFromError(nil, http.StatusOK))
	assert.Equal(t, http.StatusBadRequest, statusFromError(errs.NewBadRequestError("x", false, nil, nil), http.StatusOK))
	assert.Equal(t, http.StatusNotFound, statusFromError(echo.ErrNotFound, http.StatusOK))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("boom"), http.StatusOK))
}
