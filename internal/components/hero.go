package components

import (
	"context"

	"impractical.co/landing"
)

// HeroImage is the illustration shown next to the hero text. Like the
// feature images, it's resolved against the base URL.
const HeroImage = "img/pages/home/flet-home.png"

// Hero is the banner at the top of the home page: an illustration, the
// product name and pitch, and one call to action.
type Hero struct {
	Title    string
	SubTitle string
	ImageURL string
	CTA      Link
}

func (Hero) Templates(_ context.Context) []string {
	return []string{"hero.html.tmpl"}
}

func (Hero) UseComponents(_ context.Context) []landing.Component {
	return []landing.Component{
		Link{},
	}
}
