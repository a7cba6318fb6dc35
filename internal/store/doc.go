// Package store defines the persistence interfaces the rest of the
// application programs against, along with the sentinel errors those
// interfaces return. Concrete implementations live in
// internal/platform/postgres.
package store
