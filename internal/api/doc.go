// Package api provides the HTTP handlers for the task API, the request
// and response models they bind to, and the mapping from internal
// errors to HTTP status codes and client-safe messages.
package api
