package proof

import "github.com/arglab/defarg/internal/term"

// NameFunc returns the next proof name ("P0", "P1", ...); the caller (the
// knowledge base) owns the counter, since name assignment is KB state, not
// proof-construction state.
type NameFunc func() string

// Construct runs the forward-chaining procedure of spec §4.3 and returns
// every new proof it derives. existing is the proof index by consequent
// before this call; it is read, never mutated. newRules is the rule set
// that just changed (e.g. one new strict rule plus its contrapositions);
// allRules is the complete working-memory rule set, consulted starting on
// the second pass so that rules untouched by the seed round are still
// considered once new conclusions exist for them.
func Construct(existing map[term.Literal][]*Proof, newRules, allRules []term.Rule, nextName NameFunc) []*Proof {
	accepted := newProofSet()
	inferred := make(map[term.Literal]bool)

	allProofs := make(map[term.Literal][]*Proof, len(existing))
	for lit, proofs := range existing {
		allProofs[lit] = proofs
	}

	rules := term.SortRules(newRules)

	step := 0
	lastSize := -1
	for lastSize != len(accepted.list) {
		lastSize = len(accepted.list)
		step++

		for _, r := range rules {
			if step > 1 && !antecedentTouched(inferred, r.Antecedent) {
				continue
			}

			choices, complete := subProofChoices(r, allProofs)
			if !complete {
				continue
			}

			for _, candidate := range createProofs(r, choices) {
				known := false
				for _, q := range existing[r.Consequent] {
					if q.Equal(candidate) {
						known = true
						break
					}
				}
				if known || !accepted.add(candidate) {
					continue
				}
				candidate.setName(nextName())
				inferred[candidate.Consequent()] = true
				allProofs[r.Consequent] = append(allProofs[r.Consequent], candidate)
			}
		}

		if step == 1 && len(accepted.list) > 0 {
			rules = term.SortRules(unionRules(rules, allRules))
		}
	}

	return accepted.list
}

// antecedentTouched reports whether any literal in antecedent was newly
// inferred in a prior round.
func antecedentTouched(inferred map[term.Literal]bool, antecedent []term.Literal) bool {
	for _, a := range antecedent {
		if inferred[a] {
			return true
		}
	}
	return false
}

// subProofChoices looks up, for every antecedent literal of r, the set of
// proofs currently available for it. complete is false if any antecedent
// literal has no proof yet, in which case choices is not usable.
func subProofChoices(r term.Rule, allProofs map[term.Literal][]*Proof) (choices map[term.Literal][]*Proof, complete bool) {
	choices = make(map[term.Literal][]*Proof, len(r.Antecedent))
	for _, a := range r.Antecedent {
		ps, ok := allProofs[a]
		if !ok || len(ps) == 0 {
			return nil, false
		}
		choices[a] = ps
	}
	return choices, true
}

// createProofs forms the Cartesian product of per-antecedent proof choices
// for r, discarding any combination that would let r appear twice on a
// single derivation path (loop prevention, spec I5), and builds an unnamed
// Proof for every surviving combination.
func createProofs(r term.Rule, choices map[term.Literal][]*Proof) []*Proof {
	var out []*Proof
	for _, combo := range cartesianProduct(r.Antecedent, choices) {
		loops := false
		for _, sp := range combo {
			if sp.UsesRule(r) {
				loops = true
				break
			}
		}
		if loops {
			continue
		}

		subProofs := make(map[term.Literal]*Proof, len(combo))
		for _, sp := range combo {
			subProofs[sp.Consequent()] = sp
		}
		out = append(out, New("", r, subProofs))
	}
	return out
}

// cartesianProduct enumerates every combination of one proof per antecedent
// literal, in the order antecedent lists them. An empty antecedent yields
// exactly one (empty) combination, matching itertools.product() called with
// no iterables: this is what lets an axiomatic rule produce a single
// no-sub-proof Proof instead of none at all.
func cartesianProduct(antecedent []term.Literal, choices map[term.Literal][]*Proof) [][]*Proof {
	combos := [][]*Proof{{}}
	for _, a := range antecedent {
		var next [][]*Proof
		for _, combo := range combos {
			for _, p := range choices[a] {
				extended := make([]*Proof, len(combo)+1)
				copy(extended, combo)
				extended[len(combo)] = p
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}

func unionRules(a, b []term.Rule) []term.Rule {
	seen := make(map[uint64][]term.Rule)
	var out []term.Rule
	add := func(r term.Rule) {
		h := r.Hash()
		for _, o := range seen[h] {
			if o.Equal(r) {
				return
			}
		}
		seen[h] = append(seen[h], r)
		out = append(out, r)
	}
	for _, r := range a {
		add(r)
	}
	for _, r := range b {
		add(r)
	}
	return out
}

// proofSet is a dedup-on-insert collection keyed by Proof.Hash/Equal, since
// two candidate proofs built from the same rule and the same sub-proofs (via
// different rounds revisiting the same rule) must collapse to one. Only
// combinations that survive dedup are assigned a name, so proof numbering
// never has gaps from discarded duplicates.
type proofSet struct {
	byHash map[uint64][]*Proof
	list   []*Proof
}

func newProofSet() *proofSet {
	return &proofSet{byHash: make(map[uint64][]*Proof)}
}

// add appends p to the set and returns true if p is new; it returns false
// if an equal proof is already present. Naming is left to the caller.
func (s *proofSet) add(p *Proof) bool {
	h := p.Hash()
	for _, q := range s.byHash[h] {
		if q.Equal(p) {
			return false
		}
	}
	s.byHash[h] = append(s.byHash[h], p)
	s.list = append(s.list, p)
	return true
}
