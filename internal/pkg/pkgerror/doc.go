// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// Domain packages report their own sentinel and typed errors; the usecase
// layer translates them into an *Error that carries a message, type, code
// and optional field details, which handlers map to HTTP status codes.
package pkgerror
