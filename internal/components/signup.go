package components

import (
	"context"

	"impractical.co/landing"
)

// SignupForm is the newsletter signup widget. It takes no arguments; the
// endpoint, field name, and button label come from the Site's Signup
// method, and submissions go straight to that endpoint.
type SignupForm struct{}

func (SignupForm) Templates(_ context.Context) []string {
	return []string{"signup_form.html.tmpl"}
}

func (SignupForm) EmbedJS(_ context.Context) []landing.JSInline {
	return []landing.JSInline{
		{TemplatePath: "signup_form.js.tmpl", PlaceInFooter: true},
	}
}
