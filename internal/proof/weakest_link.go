package proof

import "github.com/arglab/defarg/internal/term"

// MorePreferred reports whether rule name a is more preferred than rule name
// b. Implementations are expected to be backed by a prefgraph.Graph; this
// package takes it as a function so it does not need to import prefgraph
// (kept at the bottom of the dependency stack alongside term).
type MorePreferred func(a, b string) bool

// WeakestLink computes the weakest-link rule for p per spec §4.4:
//
//   - a strict proof's weakest link is its own top rule;
//   - a defeasible proof's weakest link is the least-preferred rule
//     appearing anywhere in its closure, where a strict rule is always
//     considered stronger than a defeasible one, and ties under
//     morePreferred are broken by keeping whichever rule was encountered
//     first.
//
// The result is not attached to p; call p.SetWeakestLink with it.
func WeakestLink(p *Proof, morePreferred MorePreferred) term.Rule {
	if p.IsStrict() {
		return p.rule
	}

	var weakest term.Rule
	first := true
	for _, q := range p.Closure() {
		if first {
			weakest = q.rule
			first = false
			continue
		}
		weakest = weaker(weakest, q.rule, morePreferred)
	}
	return weakest
}

// weaker returns whichever of cur, next is less preferred, with strict
// rules always stronger (never weaker) than defeasible ones.
func weaker(cur, next term.Rule, morePreferred MorePreferred) term.Rule {
	if cur.IsStrict() != next.IsStrict() {
		if cur.IsStrict() {
			return next
		}
		return cur
	}

	if cur.Name != "" && next.Name != "" {
		if morePreferred(next.Name, cur.Name) {
			return cur
		}
		if morePreferred(cur.Name, next.Name) {
			return next
		}
	}
	return cur
}
