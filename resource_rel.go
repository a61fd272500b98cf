package landing

import "context"

// ResourceRelationship controls the relationship between two resources. It's
// used to control the order in which CSS and JavaScript resources are rendered
// to the page.
type ResourceRelationship string

const (
	// ResourceRelationshipAfter indicates that the resource should be
	// rendered after the resource it's being compared to.
	ResourceRelationshipAfter ResourceRelationship = "after"

	// ResourceRelationshipBefore indicates that the resource should be
	// rendered before the resource it's being compared to.
	ResourceRelationshipBefore ResourceRelationship = "before"

	// ResourceRelationshipNeutral indicates that the resource has no
	// restrictions about where it's rendered in relation to the resource
	// it's being compared to.
	ResourceRelationshipNeutral ResourceRelationship = "neutral"
)

// RenderAfterCSS returns a RelationCalculator for a CSS resource that must be
// rendered after the stylesheet linked at href, such as a page's own styles
// that override the layout's base stylesheet.
func RenderAfterCSS(href string) func(_ context.Context, other CSSResource) ResourceRelationship {
	return func(_ context.Context, other CSSResource) ResourceRelationship {
		if link, ok := other.(CSSLink); ok && link.Href == href {
			return ResourceRelationshipAfter
		}
		return ResourceRelationshipNeutral
	}
}
