package landing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

// CSSResource is either a CSSInline or a CSSLink. It's what a CSS
// RelationCalculator is handed to compare against.
type CSSResource interface {
	resourceKey() string
	relationTo(context.Context, CSSResource) ResourceRelationship
	hasRelations() bool
	implicitlyOrdered() bool
	render(*template.Template, any, *bytes.Buffer) error
}

// JSResource is either a JSInline or a JSLink. It's what a JavaScript
// RelationCalculator is handed to compare against.
type JSResource interface {
	resourceKey() string
	relationTo(context.Context, JSResource) ResourceRelationship
	hasRelations() bool
	implicitlyOrdered() bool
	inFooter() bool
	render(*template.Template, any, *bytes.Buffer) error
}

// CSSInline is a template whose output is embedded in the page inside a
// <style> element. The template is executed with the same data as the page.
type CSSInline struct {
	// TemplatePath is the path to the template within the Site's
	// TemplateDir.
	TemplatePath string

	// RelationCalculator, if set, is compared against every other CSS
	// resource on the page to decide which must be rendered first. Setting
	// it opts the resource out of implicit ordering.
	RelationCalculator func(context.Context, CSSResource) ResourceRelationship

	// DisableImplicitOrdering stops the resource from being rendered after
	// the resource declared before it by the same Component.
	DisableImplicitOrdering bool
}

// CSSLink is a stylesheet loaded through a <link> element.
type CSSLink struct {
	Href string

	RelationCalculator      func(context.Context, CSSResource) ResourceRelationship
	DisableImplicitOrdering bool
}

// JSInline is a template whose output is embedded in the page inside a
// <script> element.
type JSInline struct {
	TemplatePath string

	// PlaceInFooter renders the script at the end of the body instead of
	// in the document head.
	PlaceInFooter bool

	RelationCalculator      func(context.Context, JSResource) ResourceRelationship
	DisableImplicitOrdering bool
}

// JSLink is a script loaded through a <script> element with a src
// attribute.
type JSLink struct {
	Src           string
	PlaceInFooter bool
	Defer         bool

	RelationCalculator      func(context.Context, JSResource) ResourceRelationship
	DisableImplicitOrdering bool
}

// CSSEmbedder is an interface that Components can fulfill to include CSS
// that should be embedded directly into the rendered HTML. The rendered
// output will be available to the template as .CSS.
type CSSEmbedder interface {
	EmbedCSS(context.Context) []CSSInline
}

// CSSLinker is an interface that Components can fulfill to include CSS that
// should be loaded through a <link> element. The rendered output will be
// available to the template as .CSS.
type CSSLinker interface {
	LinkCSS(context.Context) []CSSLink
}

// JSEmbedder is an interface that Components can fulfill to include
// JavaScript that should be embedded directly into the rendered HTML. The
// rendered output will be available to the template as .HeaderJS or
// .FooterJS, depending on PlaceInFooter.
type JSEmbedder interface {
	EmbedJS(context.Context) []JSInline
}

// JSLinker is an interface that Components can fulfill to include
// JavaScript loaded from a URL.
type JSLinker interface {
	LinkJS(context.Context) []JSLink
}

var resourceTemplates = template.Must(template.New("").Parse(`
{{- define "css_link" }}<link href="{{ .Href }}" rel="stylesheet">
{{ end -}}
{{- define "js_link" }}<script src="{{ .Src }}"{{ if .Defer }} defer{{ end }}></script>
{{ end -}}
`))

func styleWrapperName(path string) string {
	return "landing/style:" + path
}

func scriptWrapperName(path string) string {
	return "landing/script:" + path
}

func (c CSSInline) resourceKey() string { return "inline:" + c.TemplatePath }
func (c CSSLink) resourceKey() string   { return "link:" + c.Href }
func (j JSInline) resourceKey() string  { return "inline:" + j.TemplatePath }
func (j JSLink) resourceKey() string    { return "link:" + j.Src }

func (c CSSInline) hasRelations() bool { return c.RelationCalculator != nil }
func (c CSSLink) hasRelations() bool   { return c.RelationCalculator != nil }
func (j JSInline) hasRelations() bool  { return j.RelationCalculator != nil }
func (j JSLink) hasRelations() bool    { return j.RelationCalculator != nil }

func (c CSSInline) implicitlyOrdered() bool { return !c.DisableImplicitOrdering }
func (c CSSLink) implicitlyOrdered() bool   { return !c.DisableImplicitOrdering }
func (j JSInline) implicitlyOrdered() bool  { return !j.DisableImplicitOrdering }
func (j JSLink) implicitlyOrdered() bool    { return !j.DisableImplicitOrdering }

func (j JSInline) inFooter() bool { return j.PlaceInFooter }
func (j JSLink) inFooter() bool   { return j.PlaceInFooter }

func (c CSSInline) relationTo(ctx context.Context, other CSSResource) ResourceRelationship {
	if c.RelationCalculator == nil {
		return ResourceRelationshipNeutral
	}
	return c.RelationCalculator(ctx, other)
}

func (c CSSLink) relationTo(ctx context.Context, other CSSResource) ResourceRelationship {
	if c.RelationCalculator == nil {
		return ResourceRelationshipNeutral
	}
	return c.RelationCalculator(ctx, other)
}

func (j JSInline) relationTo(ctx context.Context, other JSResource) ResourceRelationship {
	if j.RelationCalculator == nil {
		return ResourceRelationshipNeutral
	}
	return j.RelationCalculator(ctx, other)
}

func (j JSLink) relationTo(ctx context.Context, other JSResource) ResourceRelationship {
	if j.RelationCalculator == nil {
		return ResourceRelationshipNeutral
	}
	return j.RelationCalculator(ctx, other)
}

func (c CSSInline) render(tmpl *template.Template, data any, buf *bytes.Buffer) error {
	if err := tmpl.ExecuteTemplate(buf, styleWrapperName(c.TemplatePath), data); err != nil {
		return fmt.Errorf("error rendering inline CSS %q: %w", c.TemplatePath, err)
	}
	buf.WriteString("\n")
	return nil
}

func (c CSSLink) render(_ *template.Template, _ any, buf *bytes.Buffer) error {
	if err := resourceTemplates.ExecuteTemplate(buf, "css_link", c); err != nil {
		return fmt.Errorf("error rendering CSS link %q: %w", c.Href, err)
	}
	return nil
}

func (j JSInline) render(tmpl *template.Template, data any, buf *bytes.Buffer) error {
	if err := tmpl.ExecuteTemplate(buf, scriptWrapperName(j.TemplatePath), data); err != nil {
		return fmt.Errorf("error rendering inline JavaScript %q: %w", j.TemplatePath, err)
	}
	buf.WriteString("\n")
	return nil
}

func (j JSLink) render(_ *template.Template, _ any, buf *bytes.Buffer) error {
	if err := resourceTemplates.ExecuteTemplate(buf, "js_link", j); err != nil {
		return fmt.Errorf("error rendering JavaScript link %q: %w", j.Src, err)
	}
	return nil
}

// pageResources holds the ordered CSS and JavaScript resources of every
// Component on a page.
type pageResources struct {
	css    []CSSResource
	headJS []JSResource
	footJS []JSResource
}

// collectResources walks the components in the order given, de-duplicates
// their resources, and orders them. Each component's resources of the same
// kind keep their declared order unless they opt out.
func collectResources(ctx context.Context, components []Component) (pageResources, error) {
	css := newGraph[CSSResource]()
	head := newGraph[JSResource]()
	foot := newGraph[JSResource]()
	for _, component := range components {
		if linker, ok := component.(CSSLinker); ok {
			var group []CSSResource
			for _, link := range linker.LinkCSS(ctx) {
				group = append(group, link)
			}
			css.addGroup(group)
		}
		if embedder, ok := component.(CSSEmbedder); ok {
			var group []CSSResource
			for _, block := range embedder.EmbedCSS(ctx) {
				group = append(group, block)
			}
			css.addGroup(group)
		}
		if linker, ok := component.(JSLinker); ok {
			var headGroup, footGroup []JSResource
			for _, link := range linker.LinkJS(ctx) {
				if link.PlaceInFooter {
					footGroup = append(footGroup, link)
				} else {
					headGroup = append(headGroup, link)
				}
			}
			head.addGroup(headGroup)
			foot.addGroup(footGroup)
		}
		if embedder, ok := component.(JSEmbedder); ok {
			var headGroup, footGroup []JSResource
			for _, block := range embedder.EmbedJS(ctx) {
				if block.inFooter() {
					footGroup = append(footGroup, block)
				} else {
					headGroup = append(headGroup, block)
				}
			}
			head.addGroup(headGroup)
			foot.addGroup(footGroup)
		}
	}
	css.applyRelations(ctx)
	head.applyRelations(ctx)
	foot.applyRelations(ctx)

	var res pageResources
	var err error
	if res.css, err = css.sorted(); err != nil {
		return res, fmt.Errorf("error ordering CSS: %w", err)
	}
	if res.headJS, err = head.sorted(); err != nil {
		return res, fmt.Errorf("error ordering header JavaScript: %w", err)
	}
	if res.footJS, err = foot.sorted(); err != nil {
		return res, fmt.Errorf("error ordering footer JavaScript: %w", err)
	}
	return res, nil
}

// templatePaths lists the inline resource templates that must be parsed
// along with the Components' templates.
func (r pageResources) templatePaths() []string {
	var paths []string
	for _, res := range r.css {
		if inline, ok := res.(CSSInline); ok {
			paths = append(paths, inline.TemplatePath)
		}
	}
	for _, list := range [][]JSResource{r.headJS, r.footJS} {
		for _, res := range list {
			if inline, ok := res.(JSInline); ok {
				paths = append(paths, inline.TemplatePath)
			}
		}
	}
	return paths
}

func renderResources[R interface {
	render(*template.Template, any, *bytes.Buffer) error
}](tmpl *template.Template, data any, resources []R) (template.HTML, error) {
	var buf bytes.Buffer
	for _, res := range resources {
		if err := res.render(tmpl, data, &buf); err != nil {
			return "", err
		}
	}
	// every byte in buf was produced by html/template
	return template.HTML(buf.String()), nil // #nosec G203
}
