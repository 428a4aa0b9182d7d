package argument

import (
	"sort"

	"github.com/arglab/defarg/internal/proof"
	"github.com/arglab/defarg/internal/term"
)

// MorePreferred reports whether rule named a is preferred over rule named b,
// the same callback shape proof.WeakestLink takes, so Build never imports
// internal/prefgraph directly.
type MorePreferred func(a, b string) bool

// Graph holds one Argument per distinct proof and answers attack/conclusion
// queries over the whole set. Grounded on aal.py's ArgumentationFramework,
// trimmed of its pygraphviz rendering (adapter/dot covers that separately)
// and its embedded KnowledgeBase reference (Build takes proofs and a
// preference callback directly, so this package stays independent of
// internal/kb).
type Graph struct {
	arguments []*Argument
	byConclu  map[term.Literal][]*Argument
}

// Build constructs a fresh argument graph from proofs: one Argument per
// proof, then every undercut/rebut attack edge per spec §4.5.
func Build(proofs []*proof.Proof, morePreferred MorePreferred) *Graph {
	g := &Graph{byConclu: make(map[term.Literal][]*Argument)}
	for _, p := range proofs {
		a := newArgument(p)
		g.arguments = append(g.arguments, a)
		g.byConclu[a.Conclusion()] = append(g.byConclu[a.Conclusion()], a)
	}
	sort.Slice(g.arguments, func(i, j int) bool { return g.arguments[i].proof.Less(g.arguments[j].proof) })
	g.Rebuild(morePreferred)
	return g
}

// Arguments returns every argument in the graph, in the order established
// at Build (matching the original's sort-by-proof before attack
// construction).
func (g *Graph) Arguments() []*Argument { return g.arguments }

// ArgumentsWithConclusion returns every argument whose proof concludes lit.
func (g *Graph) ArgumentsWithConclusion(lit term.Literal) []*Argument {
	return g.byConclu[lit]
}

// FindByName returns the argument whose underlying proof has the given
// name, or nil.
func (g *Graph) FindByName(name string) *Argument {
	for _, a := range g.arguments {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// Rebuild clears every argument's attack relations and recomputes them from
// scratch against morePreferred. It is idempotent: calling it twice in a
// row with the same morePreferred produces the same edges. Grounded on
// aal.py's reconstruct_graph.
func (g *Graph) Rebuild(morePreferred MorePreferred) {
	for _, a := range g.arguments {
		a.clear()
	}
	for _, a1 := range g.arguments {
		for _, a2 := range g.arguments {
			if a1 == a2 || a2.IsStrict() {
				continue
			}
			checkUndercut(a1, a2)
			checkRebut(a1, a2, morePreferred)
		}
	}
}

// checkUndercut records a1 -> a2 if some proof in a2's closure has
// -conclusion(a1) among its vulnerabilities. Only the first matching
// sub-proof is needed since the edge is boolean, matching aal.py's
// _check_undercut break-on-first-match.
func checkUndercut(a1, a2 *Argument) {
	target := a1.Conclusion().Negate()
	for _, p := range a2.proof.Closure() {
		for _, v := range p.Vulnerabilities() {
			if v.Equal(target) {
				attack(a1, a2)
				return
			}
		}
	}
}

// checkRebut records a1 -> a2 if some proof in a2's closure concludes
// -conclusion(a1) and a1's weakest link is not less preferred than that
// sub-proof's weakest link. Every sub-proof in the closure is scanned (not
// just the first match), but since attack records an edge-set membership
// rather than a count, multiple qualifying sub-proofs collapse to the same
// single edge.
func checkRebut(a1, a2 *Argument, morePreferred MorePreferred) {
	target := a1.Conclusion().Negate()
	for _, p := range a2.proof.Closure() {
		if !p.Consequent().Equal(target) {
			continue
		}
		if !lessPreferred(a1.proof.WeakestLink(), p.WeakestLink(), morePreferred) {
			attack(a1, a2)
		}
	}
}

// lessPreferred reports whether rule a is strictly less preferred than rule
// b, mirroring proof.WeakestLink's internal weaker helper: a strict rule is
// never less preferred than anything, while a defeasible rule facing a
// strict one always is. Two strict rules are never less preferred than each
// other (no naming to compare).
func lessPreferred(a, b term.Rule, morePreferred MorePreferred) bool {
	if a.IsStrict() {
		return false
	}
	if b.IsStrict() {
		return true
	}
	return morePreferred(b.Name, a.Name)
}

func attack(attacker, victim *Argument) {
	attacker.plus[victim] = true
	victim.minus[attacker] = true
}
