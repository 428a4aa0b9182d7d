// Package proof implements the Proof value (spec §3) and the forward-chaining
// closure that derives new proofs from a rule set (spec §4.3).
//
// Grounded on original_source/argumentation/kb.py's Proof class and
// KnowledgeBase.construct_proofs/_create_proofs, translated from Python sets
// and itertools.product into Go slices, maps, and a hand-rolled Cartesian
// product.
package proof

import "github.com/arglab/defarg/internal/term"

// Proof is a tuple (name, top rule, sub-proofs): sub-proofs maps each
// antecedent literal of the top rule to a chosen proof of that literal, with
// zero entries when the rule has no antecedent. Proof values are immutable
// once constructed except for their weakest link, which is computed and
// attached after creation (it depends on the knowledge base's preference
// graph, which a Proof does not itself hold a reference to).
type Proof struct {
	name      string
	rule      term.Rule
	subProofs map[term.Literal]*Proof

	isStrict bool

	weakestLink    term.Rule
	weakestLinkSet bool

	hash         uint64
	hashComputed bool
}

// New constructs a Proof from name, rule, and a mapping of antecedent
// literal to the proof chosen for it. Callers outside this package only need
// this to build seed/axiom proofs directly; forward chaining uses it
// internally via Construct.
func New(name string, rule term.Rule, subProofs map[term.Literal]*Proof) *Proof {
	strict := rule.IsStrict()
	if strict {
		for _, sp := range subProofs {
			if !sp.IsStrict() {
				strict = false
				break
			}
		}
	}
	return &Proof{name: name, rule: rule, subProofs: subProofs, isStrict: strict}
}

// Name returns the proof's assigned name ("P0", "P1", ...).
func (p *Proof) Name() string { return p.name }

// setName attaches a name after construction, used by Construct once a
// candidate proof has survived dedup and is worth numbering.
func (p *Proof) setName(name string) { p.name = name }

// Rule returns the proof's top rule.
func (p *Proof) Rule() term.Rule { return p.rule }

// Consequent returns the top rule's consequent.
func (p *Proof) Consequent() term.Literal { return p.rule.Consequent }

// Antecedents returns the top rule's antecedent literals.
func (p *Proof) Antecedents() []term.Literal { return p.rule.Antecedent }

// SubProof returns the chosen proof for antecedent literal lit, if any.
func (p *Proof) SubProof(lit term.Literal) (*Proof, bool) {
	sp, ok := p.subProofs[lit]
	return sp, ok
}

// SubProofs returns the proof's direct sub-proofs, one per antecedent
// literal of its top rule. The returned map must not be mutated.
func (p *Proof) SubProofs() map[term.Literal]*Proof { return p.subProofs }

// HasEmptyAntecedent reports whether the proof's top rule has no
// antecedent (an axiomatic proof).
func (p *Proof) HasEmptyAntecedent() bool { return len(p.subProofs) == 0 }

// IsStrict reports whether every rule in the proof tree is strict.
func (p *Proof) IsStrict() bool { return p.isStrict }

// IsDefeasible reports whether the proof uses at least one defeasible rule.
func (p *Proof) IsDefeasible() bool { return !p.isStrict }

// Vulnerabilities returns the top rule's vulnerabilities, empty for a
// strict proof.
func (p *Proof) Vulnerabilities() []term.Literal {
	if p.rule.IsStrict() {
		return nil
	}
	return p.rule.Vulnerabilities
}

// WeakestLink returns the rule identity previously attached by
// SetWeakestLink. The zero Rule is returned if none has been set yet.
func (p *Proof) WeakestLink() term.Rule { return p.weakestLink }

// SetWeakestLink attaches the proof's weakest-link rule, computed by
// WeakestLink in this package against a knowledge base's preference graph.
func (p *Proof) SetWeakestLink(r term.Rule) {
	p.weakestLink = r
	p.weakestLinkSet = true
}

// Closure returns this proof and every proof transitively reachable through
// its sub-proofs, each appearing exactly once (by pointer identity, which
// coincides with logical identity since forward chaining never creates two
// distinct Proof values for the same (rule, sub-proofs) pair).
func (p *Proof) Closure() []*Proof {
	seen := make(map[*Proof]bool)
	var out []*Proof
	var visit func(q *Proof)
	visit = func(q *Proof) {
		if seen[q] {
			return
		}
		seen[q] = true
		out = append(out, q)
		for _, sp := range q.subProofs {
			visit(sp)
		}
	}
	visit(p)
	return out
}

// UsesRule reports whether r appears anywhere in the proof's closure
// (including as its own top rule).
func (p *Proof) UsesRule(r term.Rule) bool {
	for _, q := range p.Closure() {
		if q.rule.Equal(r) {
			return true
		}
	}
	return false
}

// Len returns the number of rule applications on the proof's longest
// branch: 1 plus the greatest sub-proof length, or 1 for an axiom.
func (p *Proof) Len() int {
	max := 0
	for _, sp := range p.subProofs {
		if l := sp.Len(); l > max {
			max = l
		}
	}
	return 1 + max
}

// Less orders proofs by length, then by name, matching the original's
// __lt__.
func (p *Proof) Less(o *Proof) bool {
	if pl, ol := p.Len(), o.Len(); pl != ol {
		return pl < ol
	}
	return p.name < o.name
}

// Equal reports whether p and o share the same top rule and identical
// sub-proofs, recursively. Names do not participate.
func (p *Proof) Equal(o *Proof) bool {
	if o == nil {
		return false
	}
	if p == o {
		return true
	}
	if !p.rule.Equal(o.rule) {
		return false
	}
	if len(p.subProofs) != len(o.subProofs) {
		return false
	}
	for lit, sp := range p.subProofs {
		osp, ok := o.subProofs[lit]
		if !ok || !sp.Equal(osp) {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal: the top rule's hash XORed with
// the hash of every sub-proof.
func (p *Proof) Hash() uint64 {
	if !p.hashComputed {
		h := p.rule.Hash()
		for _, sp := range p.subProofs {
			h ^= sp.Hash()
		}
		p.hash = h
		p.hashComputed = true
	}
	return p.hash
}

// String renders the proof as its sub-proofs conjoined, followed by the top
// rule, e.g. "(P0 & P1) -> S1: a, b --> c". Unlike Rule.String, this is a
// debugging aid, not something Parse can read back.
func (p *Proof) String() string {
	if p.HasEmptyAntecedent() {
		return p.rule.String()
	}
	names := subProofNames(p.subProofs)
	s := "("
	for i, n := range names {
		if i > 0 {
			s += " & "
		}
		s += n
	}
	s += ") -> " + p.rule.String()
	return s
}

func subProofNames(subProofs map[term.Literal]*Proof) []string {
	names := make([]string, 0, len(subProofs))
	for _, sp := range subProofs {
		names = append(names, sp.name)
	}
	// deterministic order independent of map iteration
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return names
}
