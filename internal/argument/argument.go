// Package argument builds the argument graph of spec §4.5: one Argument per
// proof in a knowledge base, with undercut/rebut attack edges computed
// pairwise over the whole set.
//
// Grounded on original_source/argumentation/aal.py's Argument class: the
// plus/minus attacker-bookkeeping sets, Clear, and the name/rule/consequent
// passthrough accessors all carry over from the Python proof wrapper,
// translated from duck-typed properties into Go methods over a
// *proof.Proof.
package argument

import (
	"github.com/arglab/defarg/internal/proof"
	"github.com/arglab/defarg/internal/term"
)

// Argument wraps a single proof one-to-one. Plus holds the arguments this
// one attacks; Minus holds the arguments attacking this one. Both are built
// and rebuilt by Build/Rebuild, never mutated directly by callers.
type Argument struct {
	proof *proof.Proof
	plus  map[*Argument]bool
	minus map[*Argument]bool
}

func newArgument(p *proof.Proof) *Argument {
	return &Argument{proof: p, plus: make(map[*Argument]bool), minus: make(map[*Argument]bool)}
}

// Proof returns the underlying proof this argument is based on.
func (a *Argument) Proof() *proof.Proof { return a.proof }

// Name returns the name of the underlying proof.
func (a *Argument) Name() string { return a.proof.Name() }

// Conclusion returns the underlying proof's consequent.
func (a *Argument) Conclusion() term.Literal { return a.proof.Consequent() }

// IsStrict reports whether the underlying proof is strict.
func (a *Argument) IsStrict() bool { return a.proof.IsStrict() }

// Attacks reports the set of arguments this argument attacks (its plus
// set), sorted by name for deterministic iteration.
func (a *Argument) Attacks() []*Argument { return sortedArgs(a.plus) }

// AttackedBy reports the set of arguments attacking this argument (its
// minus set), sorted by name for deterministic iteration.
func (a *Argument) AttackedBy() []*Argument { return sortedArgs(a.minus) }

func sortedArgs(set map[*Argument]bool) []*Argument {
	out := make([]*Argument, 0, len(set))
	for arg := range set {
		out = append(out, arg)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Name() < out[j-1].Name(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// clear removes every attack relation, called at the start of every rebuild
// so Build is idempotent given identical inputs.
func (a *Argument) clear() {
	a.plus = make(map[*Argument]bool)
	a.minus = make(map[*Argument]bool)
}

// String renders the argument as its name and top rule, matching
// aal.py's Argument.__str__ ("P0: (rule)").
func (a *Argument) String() string {
	return a.Name() + ": (" + a.proof.Rule().String() + ")"
}
