// Package site holds the singleton the landing pages are rendered with.
package site

import (
	"context"
	"html/template"
	"io/fs"

	"impractical.co/landing"
	"impractical.co/landing/internal/baseurl"
	"impractical.co/landing/internal/components"
	"impractical.co/landing/internal/config"
	"impractical.co/landing/internal/content"
	"impractical.co/landing/internal/pages"
)

var (
	_ landing.Site             = &Site{}
	_ landing.TemplateCacher   = &Site{}
	_ landing.FuncMapExtender  = &Site{}
	_ landing.ServerErrorPager = &Site{}
)

// Site carries the configuration and the parsed templates shared by every
// page. It's safe for concurrent use.
type Site struct {
	*landing.CachedSite

	Config  *config.Site
	BaseURL baseurl.Resolver

	features func() ([]content.FeatureCard, error)
}

// Option customizes a Site built with New.
type Option func(*Site)

// WithFeatures replaces the embedded feature table.
func WithFeatures(features func() ([]content.FeatureCard, error)) Option {
	return func(s *Site) {
		s.features = features
	}
}

// New returns a Site configured by cfg, reading templates from templates.
// A nil templates uses the templates embedded in the binary.
func New(cfg *config.Site, templates fs.FS, opts ...Option) *Site {
	if templates == nil {
		templates = components.Templates()
	}
	s := &Site{
		CachedSite: landing.NewCachedSite(templates),
		Config:     cfg,
		BaseURL:    baseurl.New(cfg.GetBaseURL()),
		features:   content.Features,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Title returns the site title.
func (s *Site) Title() string {
	return s.Config.GetTitle()
}

// Signup returns the signup form settings.
func (s *Site) Signup() config.Signup {
	return s.Config.GetSignup()
}

// FuncMap makes baseURL available to every template.
func (s *Site) FuncMap(_ context.Context) template.FuncMap {
	return template.FuncMap{
		"baseURL": s.BaseURL.Resolve,
	}
}

// ServerErrorPage is rendered when another page fails to.
func (s *Site) ServerErrorPage(_ context.Context) landing.Page {
	return pages.NewServerError(s.Config, s.BaseURL)
}

// Home returns the landing page.
func (s *Site) Home(_ context.Context) (pages.Home, error) {
	features, err := s.features()
	if err != nil {
		return pages.Home{}, err
	}
	return pages.NewHome(s.Config, s.BaseURL, features), nil
}

// NotFound returns the page rendered for unknown paths.
func (s *Site) NotFound(_ context.Context) pages.NotFound {
	return pages.NewNotFound(s.Config, s.BaseURL)
}
