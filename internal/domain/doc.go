// Package domain defines the core business entities of the task API:
// users with their roles, and tasks with their status and priority.
// It owns the validation rules and sentinel errors that govern those
// entities, and has no dependencies on storage or transport concerns.
package domain
