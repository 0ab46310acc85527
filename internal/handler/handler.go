// Package handler is the HTTP layer between the router and the services.
//
// It binds and validates requests through the validation package, calls
// the matching service, and writes the JSON response.
package handler
