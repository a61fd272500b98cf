package landing_test

import (
	"context"
	"log/slog"
	"os"

	"impractical.co/landing"
)

type ResourcesPage struct {
	Layout ResourcesLayout
	Signup ResourcesSignup
}

func (ResourcesPage) Templates(_ context.Context) []string {
	return []string{"resources.html.tmpl"}
}

func (p ResourcesPage) UseComponents(_ context.Context) []landing.Component {
	return []landing.Component{
		p.Layout,
		p.Signup,
	}
}

func (ResourcesPage) Key(_ context.Context) string {
	return "resources.html.tmpl"
}

func (p ResourcesPage) ExecutedTemplate(_ context.Context) string {
	return p.Layout.BaseTemplate()
}

func (ResourcesPage) EmbedCSS(_ context.Context) []landing.CSSInline {
	// the page is declared before its layout, so without a relation its
	// styles would come before the base stylesheet they override
	return []landing.CSSInline{
		{TemplatePath: "resources.css.tmpl", RelationCalculator: landing.RenderAfterCSS("/css/site.css")},
	}
}

type ResourcesLayout struct{}

func (l ResourcesLayout) Templates(_ context.Context) []string {
	return []string{l.BaseTemplate()}
}

func (ResourcesLayout) BaseTemplate() string {
	return "base.html.tmpl"
}

func (ResourcesLayout) LinkCSS(_ context.Context) []landing.CSSLink {
	return []landing.CSSLink{
		{Href: "/css/site.css"},
	}
}

type ResourcesSignup struct{}

func (ResourcesSignup) Templates(_ context.Context) []string {
	return []string{"signup.html.tmpl"}
}

func (ResourcesSignup) LinkJS(_ context.Context) []landing.JSLink {
	return []landing.JSLink{
		{Src: "/js/signup.js", PlaceInFooter: true, Defer: true},
	}
}

func (ResourcesSignup) EmbedJS(_ context.Context) []landing.JSInline {
	return []landing.JSInline{
		{TemplatePath: "signup.js.tmpl"},
	}
}

func ExampleRender_resources() {
	templates := templateFS(map[string]string{
		"resources.html.tmpl": `{{ define "body" }}Welcome aboard.{{ end }}`,
		"signup.html.tmpl":    `{{ define "signup" }}{{ end }}`,
		"base.html.tmpl": `
<!doctype html>
<html lang="en">
	<head>
		<title>{{ .Site.Title }}</title>
		{{- .CSS -}}
		{{- .HeaderJS -}}
	</head>
	<body>
		{{ block "body" . }}{{ end }}
		{{- .FooterJS -}}
	</body>
</html>`,
		"resources.css.tmpl": ".hero { margin: 0; }",
		"signup.js.tmpl":     `window.signupSite = "{{ .Site.Title }}";`,
	})

	ctx := landing.LoggingContext(context.Background(), slog.Default())

	site := LaunchSite{
		CachedSite: landing.NewCachedSite(templates),
		Title:      "Launch",
	}
	page := ResourcesPage{}
	landing.Render(ctx, os.Stdout, site, page)

	//Output:
	// <!doctype html>
	// <html lang="en">
	// 	<head>
	// 		<title>Launch</title><link href="/css/site.css" rel="stylesheet">
	// <style>
	// .hero { margin: 0; }
	// </style>
	// <script>
	// window.signupSite = "Launch";
	// </script>
	// </head>
	// 	<body>
	// 		Welcome aboard.<script src="/js/signup.js" defer></script>
	// </body>
	// </html>
}
