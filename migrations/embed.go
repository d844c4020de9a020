// Package migrations embeds the SQL schema so the server and the migrate CLI
// ship without a migrations directory on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
