// Package baseurl turns logical asset paths into URLs servable under the
// site's base URL.
package baseurl

import (
	"net/url"
	"strings"
)

// Resolver resolves paths against a base URL. The zero value resolves
// against "/".
type Resolver struct {
	base string
}

// New returns a Resolver for base. The base always ends up with exactly one
// trailing slash, and an empty base means "/".
func New(base string) Resolver {
	base = strings.TrimSpace(base)
	if base == "" {
		return Resolver{base: "/"}
	}
	return Resolver{base: strings.TrimRight(base, "/") + "/"}
}

// Base returns the normalized base URL.
func (r Resolver) Base() string {
	if r.base == "" {
		return "/"
	}
	return r.base
}

// Path returns the path part of the base URL with a trailing slash. It is
// the prefix requests arrive under when the site is served.
func (r Resolver) Path() string {
	base := r.Base()
	if !IsExternal(base) {
		return base
	}
	u, err := url.Parse(base)
	if err != nil {
		return "/"
	}
	return strings.TrimRight(u.Path, "/") + "/"
}

// Resolve returns the URL for path:
//
//   - an empty path resolves to an empty string, which callers treat as
//     "nothing to show";
//   - fragments and absolute URLs (with a scheme, or protocol-relative) are
//     returned unchanged;
//   - paths already under the base URL are returned unchanged;
//   - any other path is joined onto the base URL, dropping a leading "/".
func (r Resolver) Resolve(path string) string {
	base := r.Base()
	switch {
	case path == "":
		return ""
	case strings.HasPrefix(path, "#"):
		return path
	case IsExternal(path):
		return path
	case path == strings.TrimSuffix(base, "/"):
		return base
	case strings.HasPrefix(path, base):
		return path
	default:
		return base + strings.TrimPrefix(path, "/")
	}
}

// IsExternal reports whether path is an absolute URL, with a scheme such as
// https: or mailto:, or protocol-relative.
func IsExternal(path string) bool {
	if strings.HasPrefix(path, "//") {
		return true
	}
	scheme, _, ok := strings.Cut(path, ":")
	if !ok || scheme == "" {
		return false
	}
	for i, c := range scheme {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
