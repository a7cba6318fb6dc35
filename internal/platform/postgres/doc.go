// Package postgres provides PostgreSQL implementations of the store
// interfaces, using database/sql over the pgx driver. Ownership scoping
// is baked into every task query: there is no code path that fetches a
// row and checks its owner afterwards.
package postgres
