// Package assets embeds the landing site's static files: the stylesheet and
// the images the pages reference.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static returns the static files, rooted so "css/site.css" and
// "img/pages/home/..." are at the paths the pages link to.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// only fails for an invalid path, and "static" is valid
		panic(err)
	}
	return sub
}
