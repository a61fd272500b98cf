// Package content holds the landing page's feature table. The table is
// authored as markdown files with YAML frontmatter, embedded in the binary,
// and parsed once.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	// ErrMissingTitle is returned when a feature file has no title in its
	// frontmatter.
	ErrMissingTitle = errors.New("feature has no title")

	// ErrNotInline is returned by RenderInline when the markdown holds more
	// than one paragraph or a block other than a paragraph.
	ErrNotInline = errors.New("markdown is not a single paragraph")
)

//go:embed features/*.md
var featureFiles embed.FS

// FeatureCard is one product-feature callout.
type FeatureCard struct {
	Title string

	// ImageURL is a logical path, resolved against the base URL when the
	// page is built. Empty means the card has no image.
	ImageURL string

	// Description is rendered from markdown and may contain links.
	Description template.HTML
}

type featureFrontmatter struct {
	Title string `yaml:"title"`
	Image string `yaml:"image"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

var loadFeatures = sync.OnceValues(func() ([]FeatureCard, error) {
	sub, err := fs.Sub(featureFiles, "features")
	if err != nil {
		return nil, err
	}
	return Parse(sub)
})

// Features returns the feature table in display order. Each call returns a
// fresh copy; the table itself never changes.
func Features() ([]FeatureCard, error) {
	cards, err := loadFeatures()
	if err != nil {
		return nil, err
	}
	return slices.Clone(cards), nil
}

// Parse reads every *.md file at the root of fsys as one FeatureCard,
// ordered by file name.
func Parse(fsys fs.FS) ([]FeatureCard, error) {
	files, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("error listing feature files: %w", err)
	}
	cards := make([]FeatureCard, 0, len(files))
	for _, file := range files {
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		card, err := parseCard(contents)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func parseCard(contents []byte) (FeatureCard, error) {
	var meta featureFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(contents), &meta)
	if err != nil {
		return FeatureCard{}, err
	}
	if strings.TrimSpace(meta.Title) == "" {
		return FeatureCard{}, ErrMissingTitle
	}
	desc, err := RenderInline(body)
	if err != nil {
		return FeatureCard{}, err
	}
	return FeatureCard{
		Title:       strings.TrimSpace(meta.Title),
		ImageURL:    strings.TrimSpace(meta.Image),
		Description: desc,
	}, nil
}

// RenderInline converts markdown to HTML for use inside an element that
// already is a paragraph. The source must be empty or a single paragraph,
// which loses its <p> wrapper; anything else returns ErrNotInline.
func RenderInline(source []byte) (template.HTML, error) {
	source = bytes.TrimSpace(source)
	doc := markdown.Parser().Parse(text.NewReader(source))
	switch {
	case doc.ChildCount() == 0:
		return "", nil
	case doc.ChildCount() > 1 || doc.FirstChild().Kind() != ast.KindParagraph:
		return "", ErrNotInline
	}
	var buf bytes.Buffer
	if err := markdown.Renderer().Render(&buf, source, doc); err != nil {
		return "", fmt.Errorf("error rendering markdown: %w", err)
	}
	out := strings.TrimPrefix(buf.String(), "<p>")
	out = strings.TrimSuffix(strings.TrimSuffix(out, "\n"), "</p>")
	// goldmark escapes raw HTML unless WithUnsafe is set
	return template.HTML(out), nil // #nosec G203
}
