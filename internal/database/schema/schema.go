// Package schema embeds the goose migrations for the profile database.
package schema

import "embed"

// MigrationsDir is the directory inside Migrations holding the SQL files
const MigrationsDir = "migrations"

// Migrations contains the versioned SQL migrations
//
//go:embed migrations/*.sql
var Migrations embed.FS
