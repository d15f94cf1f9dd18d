// Package pkglog contains logging helpers used across the application.
//
// It is built around slog and keeps logs consistent by:
//   - Initializing a JSON (or text) handler with stable keys.
//   - Attaching request correlation IDs (when present) and the service name to each record.
package pkglog
