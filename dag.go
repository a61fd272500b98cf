package landing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrResourceCycle is returned when a dependency cycle between
	// resources is found. It always indicates a misconfiguration of a
	// RelationCalculator: some resource ends up required to render both
	// before and after another.
	ErrResourceCycle = errors.New("resource cycle detected")
)

type graphNode[R any] interface {
	resourceKey() string
	relationTo(context.Context, R) ResourceRelationship
	hasRelations() bool
	implicitlyOrdered() bool
}

// graph is a directed acyclic graph of resources, used to make sure ordering
// constraints of CSS and JavaScript are met. Nodes point to the nodes they
// must be rendered after.
type graph[R graphNode[R]] struct {
	nodes []R
	seen  map[string]int

	// after maps a node's position to the positions of the nodes it has to
	// be rendered after.
	after map[int]map[int]struct{}
}

func newGraph[R graphNode[R]]() *graph[R] {
	return &graph[R]{
		seen:  map[string]int{},
		after: map[int]map[int]struct{}{},
	}
}

// addGroup adds the resources declared together by one Component. Each
// resource depends on the previous implicitly ordered resource of the group,
// so their declared order is preserved. Resources already in the graph are
// skipped.
func (g *graph[R]) addGroup(group []R) {
	prev := -1
	for _, res := range group {
		key := res.resourceKey()
		if _, ok := g.seen[key]; ok {
			continue
		}
		g.nodes = append(g.nodes, res)
		pos := len(g.nodes) - 1
		g.seen[key] = pos
		if res.hasRelations() || !res.implicitlyOrdered() {
			continue
		}
		if prev >= 0 {
			g.addEdge(pos, prev)
		}
		prev = pos
	}
}

func (g *graph[R]) addEdge(node, dependency int) {
	if g.after[node] == nil {
		g.after[node] = map[int]struct{}{}
	}
	g.after[node][dependency] = struct{}{}
}

// applyRelations asks every resource with a RelationCalculator how it relates
// to every other resource, and records the answers as edges.
func (g *graph[R]) applyRelations(ctx context.Context) {
	for pos, res := range g.nodes {
		if !res.hasRelations() {
			continue
		}
		for otherPos, other := range g.nodes {
			if pos == otherPos {
				continue
			}
			switch res.relationTo(ctx, other) {
			case ResourceRelationshipAfter:
				g.addEdge(pos, otherPos)
			case ResourceRelationshipBefore:
				g.addEdge(otherPos, pos)
			case ResourceRelationshipNeutral:
				// no dependency
			}
		}
	}
}

// sorted returns the nodes in dependency order. Among the nodes that are
// ready at the same time, the one declared first wins, so output is stable
// across renders.
func (g *graph[R]) sorted() ([]R, error) {
	pending := make(map[int]int, len(g.nodes))
	dependents := map[int][]int{}
	for node, deps := range g.after {
		pending[node] = len(deps)
		for dep := range deps {
			dependents[dep] = append(dependents[dep], node)
		}
	}
	var ready []int
	for pos := range g.nodes {
		if pending[pos] == 0 {
			ready = append(ready, pos)
		}
	}
	results := make([]R, 0, len(g.nodes))
	for len(ready) > 0 {
		slices.Sort(ready)
		pos := ready[0]
		ready = ready[1:]
		results = append(results, g.nodes[pos])
		for _, dependent := range dependents[pos] {
			pending[dependent]--
			if pending[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}
	if len(results) == len(g.nodes) {
		return results, nil
	}
	var stuck []string
	for pos, res := range g.nodes {
		if pending[pos] > 0 {
			stuck = append(stuck, res.resourceKey())
		}
	}
	return results, fmt.Errorf("%w: resources=[%s]", ErrResourceCycle, strings.Join(stuck, ", "))
}
