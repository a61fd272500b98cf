package landing_test

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"impractical.co/landing"
)

type CachedSiteFoo struct{}

func (CachedSiteFoo) Templates(_ context.Context) []string {
	return []string{"base.tmpl", "foo.tmpl"}
}

func (CachedSiteFoo) Key(_ context.Context) string {
	return "foo.tmpl"
}

func (CachedSiteFoo) ExecutedTemplate(_ context.Context) string {
	return "base.tmpl"
}

type CachedSiteBar struct {
	IncludeBaz bool
}

func (bar CachedSiteBar) Templates(_ context.Context) []string {
	templates := []string{"base.tmpl", "bar.tmpl"}
	if bar.IncludeBaz {
		templates = append(templates, "baz.tmpl")
	}
	return templates
}

func (bar CachedSiteBar) Key(_ context.Context) string {
	// a different set of templates needs a different key
	if bar.IncludeBaz {
		return "bar.tmpl+baz.tmpl"
	}
	return "bar.tmpl"
}

func (CachedSiteBar) ExecutedTemplate(_ context.Context) string {
	return "base.tmpl"
}

func cachedSiteFS() fstest.MapFS {
	return fstest.MapFS{
		"foo.tmpl": {
			Data: []byte(`{{ define "template_name" }}foo.tmpl{{ end }}`),
		},
		"bar.tmpl": {
			Data: []byte(`{{ define "template_name" }}bar.tmpl{{ if .Page.IncludeBaz }} {{ block "variable_include" . }}{{ end }}{{ end }}{{ end }}`),
		},
		"baz.tmpl": {
			Data: []byte(`{{ define "variable_include" }}included baz.tmpl{{ end }}`),
		},
		"base.tmpl": {
			Data: []byte(`{{ block "template_name" . }}base.tmpl{{ end }}`),
		},
	}
}

func TestCachedSite(t *testing.T) {
	t.Parallel()

	ctx := landing.LoggingContext(context.Background(), slog.Default())
	templateFS := cachedSiteFS()
	site := landing.NewCachedSite(templateFS)
	renderChangeAndRerender(t, ctx, templateFS, CachedSiteFoo{}, site, "foo.tmpl", "foo.tmpl")
	renderChangeAndRerender(t, ctx, templateFS, CachedSiteBar{}, site, "bar.tmpl", "bar.tmpl")
	renderChangeAndRerender(t, ctx, templateFS, CachedSiteBar{IncludeBaz: true}, site, "bar.tmpl", "bar.tmpl included baz.tmpl")
}

func TestCachedSiteReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	templateFS := cachedSiteFS()
	site := landing.NewCachedSite(templateFS)

	var out bytes.Buffer
	landing.Render(ctx, &out, site, CachedSiteFoo{})
	if got := out.String(); got != "foo.tmpl" {
		t.Fatalf("expected %q, got %q", "foo.tmpl", got)
	}

	templateFS["foo.tmpl"].Data = []byte(`{{ define "template_name" }}edited foo.tmpl{{ end }}`)
	site.Reset(ctx)

	out.Reset()
	landing.Render(ctx, &out, site, CachedSiteFoo{})
	if got := out.String(); got != "edited foo.tmpl" {
		t.Errorf("expected %q after reset, got %q", "edited foo.tmpl", got)
	}
}

func TestCachedSiteConcurrentRenders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	site := landing.NewCachedSite(cachedSiteFS())

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var out bytes.Buffer
			landing.Render(ctx, &out, site, CachedSiteBar{IncludeBaz: true})
			results[i] = out.String()
		}()
	}
	wg.Wait()
	for i, got := range results {
		if got != "bar.tmpl included baz.tmpl" {
			t.Errorf("render %d: unexpected output %q", i, got)
		}
	}
}

func renderChangeAndRerender(t *testing.T, ctx context.Context, fs fstest.MapFS, page landing.Page, site landing.Site, file, expected string) {
	t.Helper()

	var out bytes.Buffer
	landing.Render(ctx, &out, site, page)
	if output := out.String(); output != expected {
		t.Errorf("Expected to get %q, got %q", expected, output)
	}
	out.Reset()
	oldData := slices.Clone(fs[file].Data)
	fs[file].Data = []byte(strings.ReplaceAll(string(fs[file].Data), expected, "changed-"+expected))
	landing.Render(ctx, &out, site, page)
	if output := out.String(); output != expected {
		t.Errorf("Expected to get %q after modifying underlying data, got %q", expected, output)
	}
	fs[file].Data = oldData
}
