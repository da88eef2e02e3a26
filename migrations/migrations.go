// Package migrations embeds the SQL schema migrations.
package migrations

import "embed"

// PostgresMigrations contains the PostgreSQL migration files.
//
//go:embed postgres/*.sql
var PostgresMigrations embed.FS

// PostgresDir is the directory inside PostgresMigrations passed to goose.
const PostgresDir = "postgres"
