package components

import (
	"context"

	"impractical.co/landing"
	"impractical.co/landing/internal/baseurl"
	"impractical.co/landing/internal/config"
)

// Stylesheet is the path of the site-wide stylesheet every page links to.
const Stylesheet = "/css/site.css"

// Layout is the document chrome shared by every page: the head metadata,
// the navbar, and the footer. Pages put their content in a "main" block.
type Layout struct {
	// Title is prepended to the site title in the document title. It's
	// used verbatim.
	Title string

	// Description fills the description meta tag, verbatim.
	Description string

	Stylesheet  string
	Navbar      []Link
	FooterLinks []Link
	Copyright   string
}

// NewLayout builds the Layout for a page titled title. The chrome comes
// from cfg, which may be nil.
func NewLayout(cfg *config.Site, resolver baseurl.Resolver, title, description string) Layout {
	layout := Layout{
		Title:       title,
		Description: description,
		Stylesheet:  resolver.Resolve(Stylesheet),
	}
	if cfg == nil {
		return layout
	}
	for _, item := range cfg.Navbar {
		layout.Navbar = append(layout.Navbar, NewLink(resolver, item.Label, item.To).WithClass("navbar__link"))
	}
	for _, item := range cfg.Footer.Links {
		layout.FooterLinks = append(layout.FooterLinks, NewLink(resolver, item.Label, item.To).WithClass("footer__link"))
	}
	layout.Copyright = cfg.Footer.Copyright
	return layout
}

func (l Layout) Templates(_ context.Context) []string {
	return []string{l.BaseTemplate()}
}

// BaseTemplate is the template pages execute to render themselves inside
// the Layout.
func (Layout) BaseTemplate() string {
	return "layout.html.tmpl"
}

func (Layout) UseComponents(_ context.Context) []landing.Component {
	return []landing.Component{
		Link{},
	}
}

func (l Layout) LinkCSS(_ context.Context) []landing.CSSLink {
	if l.Stylesheet == "" {
		return nil
	}
	return []landing.CSSLink{
		{Href: l.Stylesheet},
	}
}
