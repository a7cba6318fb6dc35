// Package migrations embeds the goose SQL migration files so the server
// binary can apply them without shipping loose files alongside it.
package migrations

import "embed"

// FS holds every SQL migration, ordered by filename prefix.
//
//go:embed *.sql
var FS embed.FS
