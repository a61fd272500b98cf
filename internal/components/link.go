package components

import (
	"context"

	"impractical.co/landing/internal/baseurl"
)

// Link is an anchor to a page of this site or to somewhere else. External
// links open in a new tab.
type Link struct {
	Label string

	// To is the resolved destination.
	To string

	Class    string
	External bool
}

// NewLink builds a Link to `to`, resolving it against the base URL unless
// it's an absolute URL.
func NewLink(resolver baseurl.Resolver, label, to string) Link {
	return Link{
		Label:    label,
		To:       resolver.Resolve(to),
		External: baseurl.IsExternal(to),
	}
}

// WithClass returns a copy of the Link with its class attribute set.
func (l Link) WithClass(class string) Link {
	l.Class = class
	return l
}

func (Link) Templates(_ context.Context) []string {
	return []string{"link.html.tmpl"}
}
