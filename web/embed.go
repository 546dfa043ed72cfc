package web

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var staticDir embed.FS

// StaticFS is the embedded single-page frontend.
var StaticFS fs.FS

func init() {
	StaticFS, _ = fs.Sub(staticDir, "static")
}
