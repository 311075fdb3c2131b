// Package migrations holds the versioned SQL schema applied by golang-migrate
// when MIGRATE_MODE=sql. The statements mirror the gorm models in internal/model.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
