package resources

import "embed"

// FS exposes the static resource files.
//
//go:embed favicon.svg
var FS embed.FS
