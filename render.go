package landing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrNoTemplatePath is returned when a template path is needed, but
	// none are supplied.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template path is
	// a pattern, but that pattern doesn't match any files.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

const tracerName = "impractical.co/landing"

// Component is an interface for a UI component that can be rendered to HTML.
type Component interface {
	// Templates returns a list of paths (or fs.Glob patterns) to
	// html/template contents that need to be parsed before the component
	// can be rendered.
	Templates(context.Context) []string
}

// ComponentUser is an interface that a Component can optionally implement to
// list the Components that it relies upon. Their templates, FuncMaps, and
// resources are included whenever this Component is rendered.
type ComponentUser interface {
	// UseComponents returns the Components that this Component relies on.
	UseComponents(context.Context) []Component
}

// FuncMapExtender is an interface that Components and Sites can fulfill to
// add to the map of functions available to templates when rendering.
type FuncMapExtender interface {
	FuncMap(context.Context) template.FuncMap
}

// Page is an interface for a Component that can be passed to Render. It
// defines a single logical page of the site, composed of one or more
// Components.
type Page interface {
	Component

	// Key is a unique key to use when caching this page so it doesn't need
	// to be re-parsed. A good key is consistent, but unique per Page type.
	Key(context.Context) string

	// ExecutedTemplate is the template that needs to actually be executed
	// when rendering the page.
	//
	// This is usually not the template of the Component defining the page;
	// it's usually the layout template that the page fills blocks in.
	ExecutedTemplate(context.Context) string
}

// RenderData is the data that is passed to templates when rendering a Page.
type RenderData[SiteType Site, PageType Page] struct {
	// Site holds the configuration shared by every page.
	Site SiteType

	// Page is the Page being rendered.
	Page PageType

	// CSS holds the <style> and <link> elements for every CSS resource
	// of the page, in order.
	CSS template.HTML

	// HeaderJS holds the <script> elements that belong in the document
	// head.
	HeaderJS template.HTML

	// FooterJS holds the <script> elements that belong at the end of the
	// body.
	FooterJS template.HTML
}

// Render renders the passed Page to the Writer. Nothing is written until the
// page has rendered completely. If it can't be rendered, a server error page
// is written instead: the Site's ServerErrorPage if it implements
// ServerErrorPager, or a short plain-text message if not.
func Render[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) {
	err := Execute(ctx, out, site, page)
	if err == nil {
		return
	}

	Logger(ctx).ErrorContext(ctx, "error rendering page", "page", page.Key(ctx), "error", err)

	if pager, ok := Site(site).(ServerErrorPager); ok {
		err = basicRender(ctx, out, site, pager.ServerErrorPage(ctx))
		if err != nil {
			Logger(ctx).ErrorContext(ctx, "error rendering server error page", "error", err)
		}
		return
	}

	_, err = out.Write([]byte("Server error."))
	if err != nil {
		Logger(ctx).ErrorContext(ctx, "error writing server error message", "error", err)
	}
}

// Execute renders the passed Page to the Writer like Render does, but returns
// any error instead of writing an error page. Unless the Writer itself
// fails, nothing is written when it returns an error.
func Execute[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "landing.Render",
		trace.WithAttributes(
			attribute.String("landing.page.key", page.Key(ctx)),
			attribute.String("landing.page.type", fmt.Sprintf("%T", page)),
		),
	)
	defer span.End()

	err := basicRender(ctx, out, site, page)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "error rendering page")
	}
	return err
}

func basicRender[SiteType Site, PageType Page](ctx context.Context, output io.Writer, site SiteType, page PageType) error {
	components := getRecursiveComponents(ctx, page)
	resources, err := collectResources(ctx, components)
	if err != nil {
		return fmt.Errorf("error collecting resources for %T: %w", page, err)
	}
	tmpl, err := getTemplate(ctx, site, page, components, resources)
	if err != nil {
		return err
	}

	data := RenderData[SiteType, PageType]{
		Site: site,
		Page: page,
	}
	if data.CSS, err = renderResources(tmpl, data, resources.css); err != nil {
		return err
	}
	if data.HeaderJS, err = renderResources(tmpl, data, resources.headJS); err != nil {
		return err
	}
	if data.FooterJS, err = renderResources(tmpl, data, resources.footJS); err != nil {
		return err
	}

	var buf bytes.Buffer
	executed := page.ExecutedTemplate(ctx)
	err = tmpl.ExecuteTemplate(&buf, executed, data)
	if err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
	}
	_, err = buf.WriteTo(output)
	if err != nil {
		return fmt.Errorf("error writing %T: %w", page, err)
	}
	return nil
}

func getTemplate(ctx context.Context, site Site, page Page, components []Component, resources pageResources) (*template.Template, error) {
	key := page.Key(ctx)
	if cache, ok := site.(TemplateCacher); ok {
		cached := cache.GetCachedTemplate(ctx, key)
		if cached != nil {
			return cached, nil
		}
	}
	tmplPaths := getComponentTemplatePaths(ctx, components)
	if len(tmplPaths) < 1 {
		return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
	}
	funcMap := getComponentFuncMap(ctx, site, components)
	parsed, err := parseTemplates(site.TemplateDir(ctx), funcMap, tmplPaths, resources)
	if err != nil {
		return nil, fmt.Errorf("error parsing templates %v for page %T: %w", tmplPaths, page, err)
	}
	if cache, ok := site.(TemplateCacher); ok {
		cache.SetCachedTemplate(ctx, key, parsed)
	}
	return parsed, nil
}

func getRecursiveComponents(ctx context.Context, component Component) []Component {
	results := []Component{component}

	if uses, ok := component.(ComponentUser); ok {
		children := uses.UseComponents(ctx)
		for _, child := range children {
			results = append(results, getRecursiveComponents(ctx, child)...)
		}
	}
	return results
}

func getComponentTemplatePaths(ctx context.Context, components []Component) []string {
	var results []string
	seen := map[string]struct{}{}
	for _, comp := range components {
		for _, path := range comp.Templates(ctx) {
			if _, ok := seen[path]; ok {
				continue
			}
			results = append(results, path)
			seen[path] = struct{}{}
		}
	}
	return results
}

func getComponentFuncMap(ctx context.Context, site Site, components []Component) template.FuncMap {
	results := template.FuncMap{}
	if fm, ok := site.(FuncMapExtender); ok {
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	for _, comp := range components {
		fm, ok := comp.(FuncMapExtender)
		if !ok {
			continue
		}
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	return results
}

func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns []string, resources pageResources) (*template.Template, error) {
	var files []string
	seen := map[string]struct{}{}
	for _, pattern := range slices.Concat(patterns, resources.templatePaths()) {
		list, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(list) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		for _, file := range list {
			if _, ok := seen[file]; ok {
				continue
			}
			seen[file] = struct{}{}
			files = append(files, file)
		}
	}
	tmpl := template.New("").Funcs(funcs)
	for _, file := range files {
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		_, err = tmpl.New(file).Parse(string(contents))
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	for _, res := range resources.css {
		if inline, ok := res.(CSSInline); ok {
			wrapper := fmt.Sprintf("<style>\n{{ template %q . }}\n</style>", inline.TemplatePath)
			if _, err := tmpl.New(styleWrapperName(inline.TemplatePath)).Parse(wrapper); err != nil {
				return nil, fmt.Errorf("error wrapping %q: %w", inline.TemplatePath, err)
			}
		}
	}
	for _, list := range [][]JSResource{resources.headJS, resources.footJS} {
		for _, res := range list {
			if inline, ok := res.(JSInline); ok {
				wrapper := fmt.Sprintf("<script>\n{{ template %q . }}\n</script>", inline.TemplatePath)
				if _, err := tmpl.New(scriptWrapperName(inline.TemplatePath)).Parse(wrapper); err != nil {
					return nil, fmt.Errorf("error wrapping %q: %w", inline.TemplatePath, err)
				}
			}
		}
	}
	return tmpl, nil
}

// mergeFuncMaps flattens two FuncMaps into one, with the values in `over`
// overriding the values in `in` if they have the same keys.
func mergeFuncMaps(in template.FuncMap, over template.FuncMap) template.FuncMap {
	res := template.FuncMap{}
	for k, v := range in {
		res[k] = v
	}
	for k, v := range over {
		res[k] = v
	}
	return res
}
