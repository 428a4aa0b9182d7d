// Package term holds the value types of the argumentation core: literals,
// rules, and preference orderings, along with their equality, ordering, and
// hashing semantics. Nothing in this package touches a knowledge base, a
// proof, or an argument graph; it is the bottom of the dependency stack.
package term

import (
	"hash/fnv"
	"strings"
)

// Literal is a propositional atom, optionally negated. Two Literals are
// equal iff they share the same Name and Negated flag.
type Literal struct {
	Name    string
	Negated bool
}

// NewLiteral returns a non-negated Literal with the given name.
func NewLiteral(name string) Literal {
	return Literal{Name: name}
}

// Negate returns the complement of l: same name, opposite polarity.
func (l Literal) Negate() Literal {
	return Literal{Name: l.Name, Negated: !l.Negated}
}

// Equal reports whether l and o denote the same literal.
func (l Literal) Equal(o Literal) bool {
	return l.Name == o.Name && l.Negated == o.Negated
}

// Less orders literals by name, then by polarity (false < true, i.e.
// positive before negated).
func (l Literal) Less(o Literal) bool {
	if l.Name != o.Name {
		return l.Name < o.Name
	}
	return !l.Negated && o.Negated
}

// Hash returns an FNV-1a hash over (Name, Negated).
func (l Literal) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(l.Name))
	if l.Negated {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// String renders l in the textual syntax of §4.1: a bare identifier, or one
// prefixed with '-' if negated.
func (l Literal) String() string {
	if l.Negated {
		return "-" + l.Name
	}
	return l.Name
}

// SortLiterals returns a new, freshly-sorted copy of lits per Literal.Less.
// Used wherever the spec requires an antecedent or vulnerability set to be
// "stored sorted".
func SortLiterals(lits []Literal) []Literal {
	out := make([]Literal, len(lits))
	copy(out, lits)
	insertionSortLiterals(out)
	return out
}

// insertionSortLiterals sorts small literal slices in place. Antecedents and
// vulnerability lists are never large enough to warrant anything fancier.
func insertionSortLiterals(lits []Literal) {
	for i := 1; i < len(lits); i++ {
		for j := i; j > 0 && lits[j].Less(lits[j-1]); j-- {
			lits[j], lits[j-1] = lits[j-1], lits[j]
		}
	}
}

// EqualLiteralSlices reports whether a and b contain the same literals in the
// same order. Both must already be sorted the same way for this to mean
// "same set"; callers that hold sorted antecedents/vulnerabilities can use it
// directly for the set-equality the spec requires.
func EqualLiteralSlices(a, b []Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// joinLiterals renders a comma-separated literal list the way §4.1 syntax
// expects it to appear between a rule name and its arrow.
func joinLiterals(lits []Literal) string {
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, ", ")
}
