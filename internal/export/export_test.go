package export_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"impractical.co/landing/internal/assets"
	"impractical.co/landing/internal/config"
	"impractical.co/landing/internal/content"
	"impractical.co/landing/internal/export"
	"impractical.co/landing/internal/site"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "public")
	cfg := &config.Site{
		Title:        "Flet",
		Tagline:      "Build apps in Python.",
		CustomFields: &config.CustomFields{HeroTitle: "Flet"},
	}
	if err := export.Build(context.Background(), site.New(cfg, nil), assets.Static(), out); err != nil {
		t.Fatalf("build: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "Main features") {
		t.Errorf("expected the home page in index.html, got:\n%s", index)
	}
	notFound, err := os.ReadFile(filepath.Join(out, "404.html"))
	if err != nil {
		t.Fatalf("read 404: %v", err)
	}
	if !strings.Contains(string(notFound), "Page Not Found") {
		t.Errorf("expected the not found page in 404.html, got:\n%s", notFound)
	}
	for _, path := range []string{
		"css/site.css",
		"img/pages/home/flet-home.png",
		"img/pages/home/feature-bolt.svg",
		"img/pages/home/feature-mobile.svg",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(path))); err != nil {
			t.Errorf("expected %s to be exported: %v", path, err)
		}
	}
}

func TestBuildCopiesStaticFiles(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	static := fstest.MapFS{
		"css/site.css":      {Data: []byte("body {}")},
		"img/deep/logo.svg": {Data: []byte("<svg></svg>")},
	}
	if err := export.Build(context.Background(), site.New(nil, nil), static, out); err != nil {
		t.Fatalf("build: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(out, "img", "deep", "logo.svg"))
	if err != nil {
		t.Fatalf("read copied file: %v", err)
	}
	if string(got) != "<svg></svg>" {
		t.Errorf("unexpected copied contents %q", got)
	}
}

func TestBuildFeatureError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("broken table")
	s := site.New(nil, nil, site.WithFeatures(func() ([]content.FeatureCard, error) {
		return nil, wantErr
	}))
	out := t.TempDir()
	err := export.Build(context.Background(), s, fstest.MapFS{}, out)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if _, err := os.Stat(filepath.Join(out, "index.html")); !os.IsNotExist(err) {
		t.Error("expected no index.html after a failed build")
	}
}

func TestBuildTemplateError(t *testing.T) {
	t.Parallel()

	templates := fstest.MapFS{
		"layout.html.tmpl": {Data: []byte(`{{ .Page.Nonexistent }}`)},
		"home.html.tmpl":   {Data: []byte(`{{ define "main" }}{{ end }}`)},
	}
	err := export.Build(context.Background(), site.New(nil, templates), fstest.MapFS{}, t.TempDir())
	if err == nil {
		t.Fatal("expected a render error instead of an error page")
	}
	if !strings.Contains(err.Error(), "index.html") {
		t.Errorf("expected the failing page in the error, got %v", err)
	}
}
