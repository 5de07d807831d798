// Package schemas provides the embedded SQL migrations of the days and entries tables.
package schemas

import "embed"

// Migrations contains all SQL migration files, applied in lexical order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
