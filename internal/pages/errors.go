package pages

import (
	"context"

	"impractical.co/landing"
	"impractical.co/landing/internal/baseurl"
	"impractical.co/landing/internal/components"
	"impractical.co/landing/internal/config"
)

var (
	_ landing.Page = NotFound{}
	_ landing.Page = ServerError{}
)

// NotFound is rendered for any path the site doesn't have a page for.
type NotFound struct {
	Layout components.Layout

	// Home links back to the landing page.
	Home components.Link
}

// NewNotFound builds the not-found page. cfg may be nil.
func NewNotFound(cfg *config.Site, resolver baseurl.Resolver) NotFound {
	return NotFound{
		Layout: components.NewLayout(cfg, resolver, "Page Not Found", cfg.GetTagline()),
		Home:   components.NewLink(resolver, "Back to the home page", "/"),
	}
}

func (NotFound) Templates(_ context.Context) []string {
	return []string{"not_found.html.tmpl"}
}

func (p NotFound) UseComponents(_ context.Context) []landing.Component {
	return []landing.Component{
		p.Layout,
	}
}

func (NotFound) Key(_ context.Context) string {
	return "not_found"
}

func (p NotFound) ExecutedTemplate(_ context.Context) string {
	return p.Layout.BaseTemplate()
}

// ServerError is rendered in place of a page that failed to render.
type ServerError struct {
	Layout components.Layout
	Home   components.Link
}

// NewServerError builds the server error page. cfg may be nil.
func NewServerError(cfg *config.Site, resolver baseurl.Resolver) ServerError {
	return ServerError{
		Layout: components.NewLayout(cfg, resolver, "Server Error", ""),
		Home:   components.NewLink(resolver, "Back to the home page", "/"),
	}
}

func (ServerError) Templates(_ context.Context) []string {
	return []string{"server_error.html.tmpl"}
}

func (p ServerError) UseComponents(_ context.Context) []landing.Component {
	return []landing.Component{
		p.Layout,
	}
}

func (ServerError) Key(_ context.Context) string {
	return "server_error"
}

func (p ServerError) ExecutedTemplate(_ context.Context) string {
	return p.Layout.BaseTemplate()
}
