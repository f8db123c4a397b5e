// Package ui embeds the web app's templates and static assets so the
// binary is self-contained. In dev mode the web app bypasses the embedded
// copy and serves the same files from disk.
package ui

import "embed"

//go:embed templates static
var Files embed.FS
