// Package logger provides structured logging for the application: a
// slog JSON logger configured from ServerConfig, and helpers for
// carrying a request-scoped logger through a context.Context.
package logger
