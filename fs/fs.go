// Package appfs holds the assets embedded in the binaries.
package appfs

import "embed"

//go:embed all:templates
var FS embed.FS
