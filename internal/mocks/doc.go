// Package mocks provides hand-written test doubles for the service and
// store interfaces. Behavior is configured through exported fields, so
// tests read as data rather than expectation scripts.
package mocks
