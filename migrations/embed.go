package migrations

import "embed"

// PostgresFS holds the forward migrations, applied in file name order.
//
//go:embed postgres/*.up.sql
var PostgresFS embed.FS
