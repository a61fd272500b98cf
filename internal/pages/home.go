// Package pages composes the landing site's pages out of components.
package pages

import (
	"context"

	"impractical.co/landing"
	"impractical.co/landing/internal/baseurl"
	"impractical.co/landing/internal/components"
	"impractical.co/landing/internal/config"
	"impractical.co/landing/internal/content"
)

// DocsURL is where the call to action on the home page points. It doesn't
// change with the site configuration.
const DocsURL = "https://docs.flet-docs.pages.dev/"

var _ landing.Page = Home{}

// Home is the landing page: a hero, the feature grid, and the signup form.
type Home struct {
	Layout   components.Layout
	Hero     components.Hero
	Features components.FeatureGrid
	Signup   components.SignupForm
}

// NewHome composes the home page from the site configuration and the
// feature table. cfg may be nil, and so may any of its optional fields;
// the strings they'd fill in are left empty.
func NewHome(cfg *config.Site, resolver baseurl.Resolver, features []content.FeatureCard) Home {
	hero := cfg.Hero()
	return Home{
		Layout: components.NewLayout(cfg, resolver, hero.HeroTitle, cfg.GetTagline()),
		Hero: components.Hero{
			Title:    hero.HeroTitle,
			SubTitle: hero.HeroSubTitle,
			ImageURL: resolver.Resolve(components.HeroImage),
			CTA:      components.NewLink(resolver, "Get Started", DocsURL).WithClass("button button--primary button--lg"),
		},
		Features: components.NewFeatureGrid(resolver, features),
	}
}

func (Home) Templates(_ context.Context) []string {
	return []string{"home.html.tmpl"}
}

func (h Home) UseComponents(_ context.Context) []landing.Component {
	return []landing.Component{
		h.Layout,
		h.Hero,
		h.Features,
		h.Signup,
	}
}

func (Home) Key(_ context.Context) string {
	return "home"
}

// EmbedCSS adds the home page's own styles, which override the site
// stylesheet and so come after it.
func (h Home) EmbedCSS(_ context.Context) []landing.CSSInline {
	return []landing.CSSInline{
		{TemplatePath: "home.css.tmpl", RelationCalculator: landing.RenderAfterCSS(h.Layout.Stylesheet)},
	}
}

func (h Home) ExecutedTemplate(_ context.Context) string {
	return h.Layout.BaseTemplate()
}
