package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/deppfellow/todo-api/internal/database"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	logger := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:         "0",
			ReadTimeout:  5,
			WriteTimeout: 5,
			IdleTimeout:  5,
		},
	}

	return &Server{
		Config: cfg,
		Logger: &logger,
		DB:     database.NewWithPool(mock, &logger),
	}, mock
}

func TestServer_StartWithoutSetup(t *testing.T) {
	s, _ := newTestServer(t)
	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestServer_SetupHTTPServer(t *testing.T) {
	s, _ := newTestServer(t)
	s.SetupHTTPServer(http.NotFoundHandler())

	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":0", s.httpServer.Addr)
	assert.Equal(t, float64(5), s.httpServer.ReadTimeout.Seconds())
}

func TestServer_ShutdownClosesDatabase(t *testing.T) {
	s, mock := newTestServer(t)
	s.SetupHTTPServer(http.NotFoundHandler())
	mock.ExpectClose()

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
