// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and the guard middleware chain
// that every request passes through before reaching a handler: tracing,
// access logging, authentication, authorization, rate limiting, CSRF
// protection for state-changing methods, and audit recording. Every
// allow/deny decision made here lands in the audit trail.
package http
