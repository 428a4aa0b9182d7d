// Package kb implements the knowledge base (spec §3, §4.3 invariants I1-I6):
// it owns the user-declared rule store, the derived working-memory rule
// store, the preference graph, and the proof index, and mediates every edit
// so that the three stay consistent with each other.
//
// Grounded on original_source/argumentation/kb.py's KnowledgeBase class:
// _add_strict_rule/_add_defeasible_rule, _del_strict_rule/_del_defeasible_rule,
// check_consistency, recalculate, and the rules_added/rules_deleted/updated
// signal emissions all carry over, translated from Python sets keyed by
// consequent into Go maps of slices.
package kb

import (
	"fmt"

	"github.com/arglab/defarg/internal/prefgraph"
	"github.com/arglab/defarg/internal/proof"
	"github.com/arglab/defarg/internal/term"
)

// KnowledgeBase owns user rules, working-memory rules (user rules plus
// derived contrapositions), the preference DAG, and the derived proof set.
// It is not safe for concurrent mutation (spec §5): a host running several
// reasoners in parallel must give each its own instance.
type KnowledgeBase struct {
	Name string

	userRules    map[term.Literal][]term.Rule
	workingRules map[term.Literal][]term.Rule
	prefs        *prefgraph.Graph
	proofs       map[term.Literal][]*proof.Proof

	proofIdx int
	batch    bool

	observers []subscription
}

// New returns an empty knowledge base.
func New(name string) *KnowledgeBase {
	return &KnowledgeBase{
		Name:         name,
		userRules:    make(map[term.Literal][]term.Rule),
		workingRules: make(map[term.Literal][]term.Rule),
		prefs:        prefgraph.New(),
		proofs:       make(map[term.Literal][]*proof.Proof),
	}
}

// UserRules returns every user-declared rule (never contrapositions),
// across every consequent. Order is unspecified.
func (kb *KnowledgeBase) UserRules() []term.Rule {
	return flattenRules(kb.userRules)
}

// WorkingRules returns every rule in working memory: user rules plus every
// derived contraposition. Order is unspecified.
func (kb *KnowledgeBase) WorkingRules() []term.Rule {
	return flattenRules(kb.workingRules)
}

// Proofs returns every proof currently in the knowledge base. Order is
// unspecified.
func (kb *KnowledgeBase) Proofs() []*proof.Proof {
	return flattenProofs(kb.proofs)
}

// ProofsFor returns the proofs the knowledge base currently holds for
// conclusion.
func (kb *KnowledgeBase) ProofsFor(conclusion term.Literal) []*proof.Proof {
	out := make([]*proof.Proof, len(kb.proofs[conclusion]))
	copy(out, kb.proofs[conclusion])
	return out
}

// MorePreferred reports whether rule name a is more preferred than rule
// name b per the knowledge base's preference graph.
func (kb *KnowledgeBase) MorePreferred(a, b string) bool {
	return kb.prefs.MorePreferred(a, b)
}

// SetBatch toggles batch mode (spec §5): while true, AddRule/DeleteRule
// still update the rule stores but suppress proof (re)construction. The
// caller must call Recalculate once batch mode is turned back off.
func (kb *KnowledgeBase) SetBatch(batch bool) {
	kb.batch = batch
}

func (kb *KnowledgeBase) nextProofName() string {
	name := fmt.Sprintf("P%d", kb.proofIdx)
	kb.proofIdx++
	return name
}

// AddRule adds r to the knowledge base: a strict or defeasible rule updates
// the rule stores and (outside batch mode) the proof set; an ordering rule
// updates the preference graph. It returns a *KbError if r would make the
// knowledge base inconsistent (cyclic preference, conflicting strict
// proofs, or a defeasible rule name already used for a different body);
// the knowledge base is left unchanged when that happens.
func (kb *KnowledgeBase) AddRule(r term.Rule) error {
	switch r.Kind {
	case term.KindOrdering:
		return kb.addOrdering(r)
	case term.KindStrict:
		return kb.addStrictRule(r)
	case term.KindDefeasible:
		return kb.addDefeasibleRule(r)
	default:
		return newKbError("unknown rule kind for rule %q", r.String())
	}
}

func (kb *KnowledgeBase) addOrdering(r term.Rule) error {
	if err := kb.prefs.InsertOrdering(r.Ordering); err != nil {
		return wrapKbError(err, "preference ordering %q is inconsistent with the existing order", r.Ordering.String())
	}
	kb.recomputeWeakestLinks()
	kb.publish(Event{Kind: EventOrderingChanged, Ordering: r.Ordering})
	return nil
}

func (kb *KnowledgeBase) addStrictRule(r term.Rule) error {
	contras := r.Contrapositions()
	all := append([]term.Rule{r}, contras...)

	newProofs := kb.constructProofs(all)
	if err := kb.checkConsistency(newProofs); err != nil {
		return err
	}
	kb.attachWeakestLinks(newProofs)

	kb.userRules[r.Consequent] = append(kb.userRules[r.Consequent], r)
	for _, rr := range all {
		kb.workingRules[rr.Consequent] = append(kb.workingRules[rr.Consequent], rr)
	}
	kb.storeProofs(newProofs)

	kb.publish(Event{Kind: EventRulesAdded, Rules: all})
	kb.publish(Event{Kind: EventUpdated, Proofs: newProofs, Added: true})
	return nil
}

func (kb *KnowledgeBase) addDefeasibleRule(r term.Rule) error {
	if r.Name != "" {
		if existing, ok := kb.ruleWithName(r.Name); ok && !existing.Equal(r) {
			return newKbError("defeasible rule name %q is already used for a different rule body (%q)", r.Name, existing.String())
		}
	}

	newProofs := kb.constructProofs([]term.Rule{r})
	kb.attachWeakestLinks(newProofs)

	kb.userRules[r.Consequent] = append(kb.userRules[r.Consequent], r)
	kb.workingRules[r.Consequent] = append(kb.workingRules[r.Consequent], r)
	kb.storeProofs(newProofs)

	kb.publish(Event{Kind: EventRulesAdded, Rules: []term.Rule{r}})
	kb.publish(Event{Kind: EventUpdated, Proofs: newProofs, Added: true})
	return nil
}

// constructProofs runs forward chaining for newRules against the current
// proof index, returning nil without doing any work while in batch mode.
func (kb *KnowledgeBase) constructProofs(newRules []term.Rule) []*proof.Proof {
	if kb.batch {
		return nil
	}
	return proof.Construct(kb.proofs, newRules, kb.WorkingRules(), kb.nextProofName)
}

// checkConsistency rejects newProofs if any new strict proof for a
// conclusion conflicts with an existing strict proof for its negation
// (spec §4.3, I3).
func (kb *KnowledgeBase) checkConsistency(newProofs []*proof.Proof) error {
	for _, p := range newProofs {
		if !p.IsStrict() {
			continue
		}
		for _, cp := range kb.proofs[p.Consequent().Negate()] {
			if cp.IsStrict() {
				return newKbError("proof %q is inconsistent with existing strict proof %q", p.String(), cp.String())
			}
		}
	}
	return nil
}

func (kb *KnowledgeBase) attachWeakestLinks(proofs []*proof.Proof) {
	for _, p := range proofs {
		p.SetWeakestLink(proof.WeakestLink(p, kb.prefs.MorePreferred))
	}
}

// recomputeWeakestLinks re-derives every proof's weakest link, used after a
// preference-order change since it can alter which rule in a closure is
// least preferred.
func (kb *KnowledgeBase) recomputeWeakestLinks() {
	kb.attachWeakestLinks(kb.Proofs())
}

func (kb *KnowledgeBase) storeProofs(proofs []*proof.Proof) {
	for _, p := range proofs {
		kb.proofs[p.Consequent()] = append(kb.proofs[p.Consequent()], p)
	}
}

func (kb *KnowledgeBase) ruleWithName(name string) (term.Rule, bool) {
	for _, r := range kb.workingRules {
		for _, rr := range r {
			if rr.Name == name {
				return rr, true
			}
		}
	}
	return term.Rule{}, false
}

// DeleteRule removes r (and, for a strict rule, its contrapositions) along
// with every proof that depends on it anywhere in its derivation tree. An
// ordering rule instead removes the corresponding preference edges. It is
// a no-op if r is not currently present.
func (kb *KnowledgeBase) DeleteRule(r term.Rule) error {
	switch r.Kind {
	case term.KindOrdering:
		kb.prefs.DeleteOrdering(r.Ordering)
		kb.recomputeWeakestLinks()
		kb.publish(Event{Kind: EventOrderingChanged, Ordering: r.Ordering})
		return nil
	case term.KindStrict:
		return kb.deleteStrictRule(r)
	case term.KindDefeasible:
		return kb.deleteDefeasibleRule(r)
	default:
		return newKbError("unknown rule kind for rule %q", r.String())
	}
}

func (kb *KnowledgeBase) deleteStrictRule(r term.Rule) error {
	if !removeRuleEqual(kb.userRules, r) {
		return nil
	}

	contras := r.Contrapositions()
	all := append([]term.Rule{r}, contras...)
	for _, rr := range all {
		removeRuleEqual(kb.workingRules, rr)
	}

	removed := kb.collectAndRemoveProofsUsingRules(all)

	kb.publish(Event{Kind: EventRulesDeleted, Rules: all})
	kb.publish(Event{Kind: EventUpdated, Proofs: removed, Added: false})
	return nil
}

func (kb *KnowledgeBase) deleteDefeasibleRule(r term.Rule) error {
	if !removeRuleEqual(kb.userRules, r) {
		return nil
	}
	removeRuleEqual(kb.workingRules, r)

	removed := kb.collectAndRemoveProofsUsingRules([]term.Rule{r})

	kb.publish(Event{Kind: EventRulesDeleted, Rules: []term.Rule{r}})
	kb.publish(Event{Kind: EventUpdated, Proofs: removed, Added: false})
	return nil
}

// collectAndRemoveProofsUsingRules scans every proof the knowledge base
// holds, regardless of its own consequent, removes any whose closure uses
// one of rules, and returns the removed set (each proof at most once).
func (kb *KnowledgeBase) collectAndRemoveProofsUsingRules(rules []term.Rule) []*proof.Proof {
	var removed []*proof.Proof
	for consequent, proofs := range kb.proofs {
		var kept []*proof.Proof
		for _, p := range proofs {
			if proofUsesAny(p, rules) {
				removed = append(removed, p)
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) == 0 {
			delete(kb.proofs, consequent)
		} else {
			kb.proofs[consequent] = kept
		}
	}
	return removed
}

func proofUsesAny(p *proof.Proof, rules []term.Rule) bool {
	for _, r := range rules {
		if p.UsesRule(r) {
			return true
		}
	}
	return false
}

// Recalculate rebuilds the entire proof set from scratch against the
// current working-memory rule set. Used after a run of batch-mode edits.
func (kb *KnowledgeBase) Recalculate() {
	kb.proofs = make(map[term.Literal][]*proof.Proof)
	kb.proofIdx = 0

	all := kb.WorkingRules()
	newProofs := proof.Construct(kb.proofs, all, all, kb.nextProofName)
	kb.attachWeakestLinks(newProofs)
	kb.storeProofs(newProofs)

	kb.publish(Event{Kind: EventUpdated, Proofs: newProofs, Added: true})
}

func flattenRules(m map[term.Literal][]term.Rule) []term.Rule {
	var out []term.Rule
	for _, rules := range m {
		out = append(out, rules...)
	}
	return out
}

func flattenProofs(m map[term.Literal][]*proof.Proof) []*proof.Proof {
	var out []*proof.Proof
	for _, proofs := range m {
		out = append(out, proofs...)
	}
	return out
}

// removeRuleEqual removes the first rule Equal to r from m's bucket for
// r.Consequent, reporting whether one was found.
func removeRuleEqual(m map[term.Literal][]term.Rule, r term.Rule) bool {
	bucket := m[r.Consequent]
	for i, rr := range bucket {
		if rr.Equal(r) {
			m[r.Consequent] = append(bucket[:i], bucket[i+1:]...)
			if len(m[r.Consequent]) == 0 {
				delete(m, r.Consequent)
			}
			return true
		}
	}
	return false
}
