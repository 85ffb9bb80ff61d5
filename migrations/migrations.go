// Package migrations embeds the versioned SQL files applied by
// internal/migration at storage Init time (and checked against the stored
// schema version at Load time), one sub-filesystem per backend.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
