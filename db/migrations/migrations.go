package migrations

import "embed"

// FS embeds the SQL migrations of the development upstream schema. The
// golang-migrate library reads them through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the development upstream expects.
const Version = 1
