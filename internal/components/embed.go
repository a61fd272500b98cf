// Package components holds the presentational building blocks of the landing
// page: the layout chrome, links, the hero, the feature grid and its cards,
// and the signup form. The templates they need, and the templates of the
// pages composed from them, are embedded in the binary.
package components

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Templates returns the embedded templates, rooted so the paths match what
// each Component's Templates method returns.
func Templates() fs.FS {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		// only fails for an invalid path, and "templates" is valid
		panic(err)
	}
	return sub
}
