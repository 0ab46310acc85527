// Package middleware stores the global middleware chain.
//
// It intercepts requests to handle cross-cutting concerns such as
// request IDs, request-scoped logging, New Relic tracing, CORS,
// panic recovery and the final translation of errors into JSON.
package middleware

import (
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components used by the HTTP server,
// built once and reused during router setup.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
}

// NewMiddlewares constructs all middleware components.
//
// Without New Relic nrApp is nil and the tracing middleware is a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
