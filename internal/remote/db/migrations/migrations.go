// Package migrations embeds the remote entries schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
