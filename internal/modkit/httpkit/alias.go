// Package httpkit aliases the platform http package for modules
// modules import this instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "benchmarks/internal/platform/net/http"
	"benchmarks/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Call adapts a handler that takes no body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.JSONHandlerNoBody(fn) }

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// URLParam returns a route parameter
func URLParam(r *http.Request, name string) string { return phttp.URLParam(r, name) }

// Validate runs struct validation for inputs bound outside a JSON body
func Validate(v any) error { return bind.Validate(v) }
