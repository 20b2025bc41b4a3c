package migrations

import "embed"

// FS contains embedded SQLite migrations for crew storage.
//
//go:embed *.sql
var FS embed.FS
