package landing

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func cssKeys(resources []CSSResource) []string {
	keys := make([]string, 0, len(resources))
	for _, res := range resources {
		keys = append(keys, res.resourceKey())
	}
	return keys
}

func TestGraphPreservesDeclaredOrder(t *testing.T) {
	t.Parallel()

	g := newGraph[CSSResource]()
	g.addGroup([]CSSResource{CSSLink{Href: "b.css"}, CSSLink{Href: "a.css"}})
	g.addGroup([]CSSResource{CSSInline{TemplatePath: "z.css.tmpl"}, CSSInline{TemplatePath: "y.css.tmpl"}})
	g.applyRelations(context.Background())

	sorted, err := g.sorted()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"link:b.css", "link:a.css", "inline:z.css.tmpl", "inline:y.css.tmpl"}
	if got := cssKeys(sorted); !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestGraphDeduplicates(t *testing.T) {
	t.Parallel()

	g := newGraph[CSSResource]()
	g.addGroup([]CSSResource{CSSLink{Href: "site.css"}, CSSInline{TemplatePath: "card.css.tmpl"}})
	g.addGroup([]CSSResource{CSSInline{TemplatePath: "card.css.tmpl"}, CSSLink{Href: "site.css"}})
	g.applyRelations(context.Background())

	sorted, err := g.sorted()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"link:site.css", "inline:card.css.tmpl"}
	if got := cssKeys(sorted); !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestGraphExplicitRelations(t *testing.T) {
	t.Parallel()

	before := func(target string) func(context.Context, CSSResource) ResourceRelationship {
		return func(_ context.Context, other CSSResource) ResourceRelationship {
			if other.resourceKey() == target {
				return ResourceRelationshipBefore
			}
			return ResourceRelationshipNeutral
		}
	}

	g := newGraph[CSSResource]()
	g.addGroup([]CSSResource{
		CSSInline{TemplatePath: "page.css.tmpl", RelationCalculator: RenderAfterCSS("site.css")},
		CSSInline{TemplatePath: "reset.css.tmpl", RelationCalculator: before("link:site.css")},
	})
	g.addGroup([]CSSResource{CSSLink{Href: "site.css"}})
	g.applyRelations(context.Background())

	sorted, err := g.sorted()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"inline:reset.css.tmpl", "link:site.css", "inline:page.css.tmpl"}
	if got := cssKeys(sorted); !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestGraphDisableImplicitOrdering(t *testing.T) {
	t.Parallel()

	g := newGraph[CSSResource]()
	g.addGroup([]CSSResource{
		CSSInline{TemplatePath: "a.css.tmpl"},
		CSSInline{TemplatePath: "b.css.tmpl", DisableImplicitOrdering: true},
		CSSInline{TemplatePath: "c.css.tmpl", RelationCalculator: func(_ context.Context, other CSSResource) ResourceRelationship {
			if other.resourceKey() == "inline:b.css.tmpl" {
				return ResourceRelationshipBefore
			}
			return ResourceRelationshipNeutral
		}},
	})
	g.applyRelations(context.Background())

	sorted, err := g.sorted()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"inline:a.css.tmpl", "inline:c.css.tmpl", "inline:b.css.tmpl"}
	if got := cssKeys(sorted); !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestGraphCycle(t *testing.T) {
	t.Parallel()

	after := func(target string) func(context.Context, JSResource) ResourceRelationship {
		return func(_ context.Context, other JSResource) ResourceRelationship {
			if other.resourceKey() == target {
				return ResourceRelationshipAfter
			}
			return ResourceRelationshipNeutral
		}
	}

	g := newGraph[JSResource]()
	g.addGroup([]JSResource{
		JSLink{Src: "a.js", RelationCalculator: after("link:b.js")},
		JSLink{Src: "b.js", RelationCalculator: after("link:a.js")},
		JSLink{Src: "c.js"},
	})
	g.applyRelations(context.Background())

	sorted, err := g.sorted()
	if !errors.Is(err, ErrResourceCycle) {
		t.Fatalf("expected ErrResourceCycle, got %v", err)
	}
	if len(sorted) != 1 || sorted[0].resourceKey() != "link:c.js" {
		t.Errorf("expected only c.js to be sorted, got %v", sorted)
	}
}

type cyclePage struct{}

func (cyclePage) Templates(_ context.Context) []string { return []string{"page.tmpl"} }
func (cyclePage) Key(_ context.Context) string         { return "page.tmpl" }
func (cyclePage) ExecutedTemplate(_ context.Context) string {
	return "page.tmpl"
}

func (cyclePage) EmbedCSS(_ context.Context) []CSSInline {
	return []CSSInline{
		{TemplatePath: "a.css.tmpl", RelationCalculator: func(_ context.Context, other CSSResource) ResourceRelationship {
			if other.resourceKey() == "inline:b.css.tmpl" {
				return ResourceRelationshipAfter
			}
			return ResourceRelationshipNeutral
		}},
		{TemplatePath: "b.css.tmpl", RelationCalculator: func(_ context.Context, other CSSResource) ResourceRelationship {
			if other.resourceKey() == "inline:a.css.tmpl" {
				return ResourceRelationshipAfter
			}
			return ResourceRelationshipNeutral
		}},
	}
}

func TestCollectResourcesCycle(t *testing.T) {
	t.Parallel()

	_, err := collectResources(context.Background(), []Component{cyclePage{}})
	if !errors.Is(err, ErrResourceCycle) {
		t.Fatalf("expected ErrResourceCycle, got %v", err)
	}
}
