// Package prefgraph implements the directed acyclic preference graph of
// spec §4.2: a graph over rule names where an edge `higher -> lower` means
// "higher is more preferred than lower", and "more preferred" is reachability
// along edges.
//
// Grounded on the shape of internal/ictiobus/translation.DirectedGraph[V] —
// a node holding forward and back edge references — simplified to a
// name-keyed adjacency map, since rule-name preference never needs to carry
// arbitrary per-node data the way a translation graph does.
package prefgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arglab/defarg/internal/term"
)

// CycleError is returned by InsertOrdering when committing an edge
// would create a cycle (i.e. a path already exists in the reverse
// direction).
type CycleError struct {
	Higher, Lower string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("inserting preference %q > %q would create a cycle: %q already precedes %q", e.Higher, e.Lower, e.Lower, e.Higher)
}

// ErrSelfPreference is returned when an ordering would assert a name is
// preferred over itself.
var ErrSelfPreference = errors.New("a rule name cannot be preferred over itself")

// Graph is a directed graph over rule names. The zero value is an empty,
// ready-to-use graph.
type Graph struct {
	// edges[higher] is the set of names higher directly dominates.
	edges map[string]map[string]struct{}
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{edges: make(map[string]map[string]struct{})}
}

// clone returns a deep copy of g, used to stage a tentative insertion that
// can be discarded without side effects if any edge in the batch would
// create a cycle.
func (g *Graph) clone() *Graph {
	cp := New()
	for higher, lowers := range g.edges {
		cp.edges[higher] = make(map[string]struct{}, len(lowers))
		for lower := range lowers {
			cp.edges[higher][lower] = struct{}{}
		}
	}
	return cp
}

// hasPath reports whether there is a directed path of length >= 1 from from
// to to, via depth-first search.
func (g *Graph) hasPath(from, to string) bool {
	visited := make(map[string]bool)
	var visit func(cur string) bool
	visit = func(cur string) bool {
		if visited[cur] {
			return false
		}
		visited[cur] = true
		for next := range g.edges[cur] {
			if next == to {
				return true
			}
			if visit(next) {
				return true
			}
		}
		return false
	}
	return visit(from)
}

func (g *Graph) addEdge(higher, lower string) {
	if g.edges[higher] == nil {
		g.edges[higher] = make(map[string]struct{})
	}
	g.edges[higher][lower] = struct{}{}
}

func (g *Graph) removeEdge(higher, lower string) {
	if g.edges[higher] == nil {
		return
	}
	delete(g.edges[higher], lower)
	if len(g.edges[higher]) == 0 {
		delete(g.edges, higher)
	}
}

// InsertOrdering expands o into every (lower, higher) pair its groups imply
// (term.Ordering.Pairs), tentatively inserts each into a deep copy, and
// rejects the whole ordering — leaving g entirely unchanged — if any edge
// would create a cycle. Only on full success are the edges committed to g.
func (g *Graph) InsertOrdering(o term.Ordering) error {
	pairs := o.Pairs()

	staged := g.clone()
	for _, p := range pairs {
		lower, higher := p[0], p[1]
		if lower == higher {
			return ErrSelfPreference
		}
		if staged.hasPath(lower, higher) {
			return &CycleError{Higher: higher, Lower: lower}
		}
		staged.addEdge(higher, lower)
	}

	g.edges = staged.edges
	return nil
}

// DeleteOrdering removes exactly the pairs InsertOrdering(o) would have
// produced. Pairs that are not present as edges are silently ignored.
func (g *Graph) DeleteOrdering(o term.Ordering) {
	for _, p := range o.Pairs() {
		lower, higher := p[0], p[1]
		g.removeEdge(higher, lower)
	}
}

// MorePreferred reports whether a is more preferred than b: a directed path
// of length >= 1 exists from a to b. Equal names always return false.
func (g *Graph) MorePreferred(a, b string) bool {
	if a == b {
		return false
	}
	return g.hasPath(a, b)
}

// Edges returns every direct (lower, higher) preference pair currently in
// g, sorted for deterministic serialization. Used by kb.Save to persist the
// preference graph alongside the rule set.
func (g *Graph) Edges() [][2]string {
	var out [][2]string
	for higher, lowers := range g.edges {
		for lower := range lowers {
			out = append(out, [2]string{lower, higher})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
