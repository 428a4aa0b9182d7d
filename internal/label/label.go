// Package label computes the grounded labelling of an argument graph (spec
// §4.6): a three-way partition of arguments into IN, OUT, and UNDEC, built
// as the upward-complete fixed point over legally-IN/legally-OUT moves.
//
// Grounded on original_source/argumentation/aal.py's Labelling class:
// up_complete_update's round-counter loop, isLegallyIN/isLegallyOUT/
// isLegallyUNDEC, diffargs, split, and the set-algebra overloads
// (__and__/__or__/__sub__/__le__) all carry over, translated from Python
// set() attributes into internal/util's generic KeySet[*argument.Argument].
// That package's Container[E] interface was undefined anywhere in the
// retrieved sources (set.go references it but no file in the pack declares
// it), so it is supplied here rather than dropping the generic set in
// favor of a hand-rolled one.
package label

import (
	"github.com/arglab/defarg/internal/argument"
	"github.com/arglab/defarg/internal/util"
)

type argSet = util.KeySet[*argument.Argument]

func newArgSet() argSet { return util.NewKeySet[*argument.Argument]() }

// Labelling is a three-way partition of arguments into IN, OUT, and UNDEC,
// plus the round at which each IN/OUT argument was decided.
type Labelling struct {
	in    argSet
	out   argSet
	undec argSet
	steps map[*argument.Argument]int
}

// Empty returns a labelling with all three sets empty.
func Empty() *Labelling {
	return &Labelling{in: newArgSet(), out: newArgSet(), undec: newArgSet(), steps: map[*argument.Argument]int{}}
}

// FromArgument returns a labelling containing exactly one argument, given
// the label "IN", "OUT", or "UNDEC".
func FromArgument(a *argument.Argument, lab string) *Labelling {
	l := Empty()
	l.addArg(a, lab)
	return l
}

func (l *Labelling) addArg(a *argument.Argument, lab string) {
	switch lab {
	case "IN":
		l.in.Add(a)
	case "OUT":
		l.out.Add(a)
	case "UNDEC":
		l.undec.Add(a)
	}
}

// Grounded computes the grounded labelling of g per spec §4.6: start with
// every argument UNDEC, then repeatedly promote legally-IN and legally-OUT
// arguments until a round promotes nothing, at which point every remaining
// UNDEC argument is stamped with that final round as its step.
func Grounded(g *argument.Graph) *Labelling {
	l := Empty()
	for _, a := range g.Arguments() {
		l.undec.Add(a)
	}
	l.upCompleteUpdate()
	return l
}

func (l *Labelling) upCompleteUpdate() {
	round := 0
	for {
		round++
		legallyIn := newArgSet()
		legallyOut := newArgSet()
		for _, a := range l.undec.Elements() {
			if l.IsLegallyIN(a) {
				legallyIn.Add(a)
			}
			if l.IsLegallyOUT(a) {
				legallyOut.Add(a)
			}
		}
		if legallyIn.Empty() && legallyOut.Empty() {
			for _, a := range l.undec.Elements() {
				l.stampStep(a, round)
			}
			return
		}
		for _, a := range legallyIn.Elements() {
			l.in.Add(a)
			l.undec.Remove(a)
			l.stampStep(a, round)
		}
		for _, a := range legallyOut.Elements() {
			l.out.Add(a)
			l.undec.Remove(a)
			l.stampStep(a, round)
		}
	}
}

func (l *Labelling) stampStep(a *argument.Argument, round int) {
	if _, ok := l.steps[a]; !ok {
		l.steps[a] = round
	}
}

// IsLegallyIN reports whether every attacker of a is in OUT.
func (l *Labelling) IsLegallyIN(a *argument.Argument) bool {
	for _, x := range a.AttackedBy() {
		if !l.out.Has(x) {
			return false
		}
	}
	return true
}

// IsLegallyOUT reports whether some attacker of a is in IN.
func (l *Labelling) IsLegallyOUT(a *argument.Argument) bool {
	for _, x := range a.AttackedBy() {
		if l.in.Has(x) {
			return true
		}
	}
	return false
}

// IsLegallyUNDEC reports whether no attacker of a is in IN but some
// attacker is in UNDEC.
func (l *Labelling) IsLegallyUNDEC(a *argument.Argument) bool {
	hasUndecAttacker := false
	for _, x := range a.AttackedBy() {
		if l.in.Has(x) {
			return false
		}
		if l.undec.Has(x) {
			hasUndecAttacker = true
		}
	}
	return hasUndecAttacker
}

// IsIn, IsOut, and IsUndec report a's current label.
func (l *Labelling) IsIn(a *argument.Argument) bool   { return l.in.Has(a) }
func (l *Labelling) IsOut(a *argument.Argument) bool   { return l.out.Has(a) }
func (l *Labelling) IsUndec(a *argument.Argument) bool { return l.undec.Has(a) }

// LabelFor returns "IN", "OUT", or "UNDEC" for a, or "" if a appears in none
// of the three sets.
func (l *Labelling) LabelFor(a *argument.Argument) string {
	switch {
	case l.in.Has(a):
		return "IN"
	case l.out.Has(a):
		return "OUT"
	case l.undec.Has(a):
		return "UNDEC"
	default:
		return ""
	}
}

// StepOf returns the round at which a was decided and whether it has one.
func (l *Labelling) StepOf(a *argument.Argument) (int, bool) {
	step, ok := l.steps[a]
	return step, ok
}

// In, Out, and Undec return the arguments in each set.
func (l *Labelling) In() []*argument.Argument    { return l.in.Elements() }
func (l *Labelling) Out() []*argument.Argument   { return l.out.Elements() }
func (l *Labelling) Undec() []*argument.Argument { return l.undec.Elements() }

// Len returns the total number of labelled arguments.
func (l *Labelling) Len() int { return l.in.Len() + l.out.Len() + l.undec.Len() }

// Equal reports whether l and o agree on all three sets.
func (l *Labelling) Equal(o *Labelling) bool {
	return l.in.Equal(o.in) && l.out.Equal(o.out) && l.undec.Equal(o.undec)
}

// SubLabelling reports whether l is a sub-labelling of o: each of IN, OUT,
// UNDEC in l is a subset of the same set in o.
func (l *Labelling) SubLabelling(o *Labelling) bool {
	return isSubset(l.in, o.in) && isSubset(l.out, o.out) && isSubset(l.undec, o.undec)
}

func isSubset(a, b argSet) bool {
	for _, k := range a.Elements() {
		if !b.Has(k) {
			return false
		}
	}
	return true
}

// Intersection returns a new labelling where each set is the intersection
// of the corresponding sets of l and o.
func (l *Labelling) Intersection(o *Labelling) *Labelling {
	return &Labelling{
		in:    l.in.Intersection(o.in).(argSet),
		out:   l.out.Intersection(o.out).(argSet),
		undec: l.undec.Intersection(o.undec).(argSet),
		steps: map[*argument.Argument]int{},
	}
}

// Union returns a new labelling combining l and o, keeping l's own label
// when the two disagree on the same argument: the result's IN is l.IN plus
// whatever of o.IN is not already in l.OUT, and the result's OUT is l.OUT
// plus whatever of o.OUT is not already in l.IN.
func (l *Labelling) Union(o *Labelling) *Labelling {
	in := l.in.Copy().(argSet)
	in.AddAll(o.in.Difference(l.out))

	out := l.out.Copy().(argSet)
	out.AddAll(o.out.Difference(l.in))

	undec := newArgSet()
	for _, a := range l.undec.Elements() {
		if !in.Has(a) && !out.Has(a) {
			undec.Add(a)
		}
	}
	for _, a := range o.undec.Elements() {
		if !in.Has(a) && !out.Has(a) {
			undec.Add(a)
		}
	}

	return &Labelling{in: in, out: out, undec: undec, steps: map[*argument.Argument]int{}}
}

// Difference returns a new labelling where each set is l's set minus o's
// corresponding set.
func (l *Labelling) Difference(o *Labelling) *Labelling {
	return &Labelling{
		in:    l.in.Difference(o.in).(argSet),
		out:   l.out.Difference(o.out).(argSet),
		undec: l.undec.Difference(o.undec).(argSet),
		steps: map[*argument.Argument]int{},
	}
}

// DiffArgs returns every argument on which l and o disagree: in IN under
// one labelling and OUT or UNDEC under the other, and so on for every
// mismatched pair of sets.
func (l *Labelling) DiffArgs(o *Labelling) []*argument.Argument {
	diff := newArgSet()
	addIntersection := func(a, b argSet) {
		for _, k := range a.Elements() {
			if b.Has(k) {
				diff.Add(k)
			}
		}
	}
	addIntersection(l.in, o.out)
	addIntersection(l.in, o.undec)
	addIntersection(l.out, o.in)
	addIntersection(l.out, o.undec)
	addIntersection(l.undec, o.in)
	addIntersection(l.undec, o.out)
	return diff.Elements()
}

// IsJustified reports whether labArg's label is what commitment would
// assign its argument (by the same legally-IN/legally-OUT structural test
// used in Grounded, applied to commitment's own IN/OUT sets rather than a
// fixed point). An empty labArg is trivially justified. Grounded on
// aal.py's is_justified/assign_label_from helpers.
func IsJustified(labArg, commitment *Labelling) bool {
	if labArg.Len() == 0 {
		return true
	}
	a, lab, ok := labArg.SingleArgument()
	if !ok {
		return false
	}
	switch {
	case commitment.IsLegallyIN(a):
		return lab == "IN"
	case commitment.IsLegallyOUT(a):
		return lab == "OUT"
	default:
		return lab == "UNDEC"
	}
}

// FindLowestStep returns whichever of candidates was decided at the
// earliest round according to l's step stamps, and false if candidates is
// empty. Grounded on aal.py's find_lowest_step, adapted to report absence
// instead of raising IllegalArgument on an empty list.
func FindLowestStep(l *Labelling, candidates []*Labelling) (*Labelling, bool) {
	if len(candidates) == 0 {
		return nil, false
	}
	best := candidates[0]
	bestArg, _, _ := best.SingleArgument()
	bestStep, _ := l.StepOf(bestArg)
	for _, c := range candidates[1:] {
		a, _, _ := c.SingleArgument()
		step, _ := l.StepOf(a)
		if step < bestStep {
			best, bestStep = c, step
		}
	}
	return best, true
}

// SingleArgument returns the lone argument and its label when l labels
// exactly one argument, for callers that use a single-argument Labelling as
// a labelled-argument value (the dialogue engine's move payloads).
func (l *Labelling) SingleArgument() (*argument.Argument, string, bool) {
	if l.Len() != 1 {
		return nil, "", false
	}
	if in := l.in.Elements(); len(in) == 1 {
		return in[0], "IN", true
	}
	if out := l.out.Elements(); len(out) == 1 {
		return out[0], "OUT", true
	}
	undec := l.undec.Elements()
	return undec[0], "UNDEC", true
}

// ApplyCommitment merges update into l in place, mirroring a player's
// commitment-store update in aal.py's Player.update_commitment: IN first
// absorbs update's IN minus l's current OUT, then OUT absorbs update's OUT
// minus l's now-updated IN, then UNDEC absorbs update's UNDEC outright. The
// two-step order matters: an argument that moves from OUT to IN in update
// is no longer eligible to re-enter OUT in the same call.
func (l *Labelling) ApplyCommitment(update *Labelling) {
	l.in.AddAll(update.in.Difference(l.out))
	l.out.AddAll(update.out.Difference(l.in))
	l.undec.AddAll(update.undec)
}

// Split breaks the labelling into one single-argument labelling per
// argument.
func (l *Labelling) Split() []*Labelling {
	var out []*Labelling
	for _, a := range l.in.Elements() {
		out = append(out, FromArgument(a, "IN"))
	}
	for _, a := range l.out.Elements() {
		out = append(out, FromArgument(a, "OUT"))
	}
	for _, a := range l.undec.Elements() {
		out = append(out, FromArgument(a, "UNDEC"))
	}
	return out
}
