// Package db ships the SQL migrations with the binaries.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
