package components

import (
	"context"
	"html/template"

	"impractical.co/landing"
	"impractical.co/landing/internal/baseurl"
	"impractical.co/landing/internal/content"
)

// FeatureCard renders one entry of the feature table: an optional image,
// the title as a heading, and the description as a paragraph.
type FeatureCard struct {
	// Key is the card's position in the table. The table never changes
	// while the process runs, so the position identifies the card.
	Key int

	Title string

	// ImageURL is the resolved image URL. The image is left out when it's
	// empty.
	ImageURL string

	Description template.HTML
}

// NewFeatureCard builds the card for the table entry at position key.
func NewFeatureCard(resolver baseurl.Resolver, key int, feature content.FeatureCard) FeatureCard {
	return FeatureCard{
		Key:         key,
		Title:       feature.Title,
		ImageURL:    resolver.Resolve(feature.ImageURL),
		Description: feature.Description,
	}
}

func (FeatureCard) Templates(_ context.Context) []string {
	return []string{"feature_card.html.tmpl"}
}

// FeatureGrid lays the feature cards out in rows.
type FeatureGrid struct {
	Cards []FeatureCard
}

// NewFeatureGrid builds a card for every entry of features, in order.
func NewFeatureGrid(resolver baseurl.Resolver, features []content.FeatureCard) FeatureGrid {
	grid := FeatureGrid{
		Cards: make([]FeatureCard, 0, len(features)),
	}
	for i, feature := range features {
		grid.Cards = append(grid.Cards, NewFeatureCard(resolver, i, feature))
	}
	return grid
}

// HasCards reports whether there's anything to lay out. The grid renders
// nothing at all when there isn't.
func (g FeatureGrid) HasCards() bool {
	return len(g.Cards) > 0
}

func (FeatureGrid) Templates(_ context.Context) []string {
	return []string{"feature_grid.html.tmpl"}
}

func (FeatureGrid) UseComponents(_ context.Context) []landing.Component {
	return []landing.Component{
		FeatureCard{},
	}
}
