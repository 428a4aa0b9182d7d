package term

import (
	"fmt"
	"strings"
)

// Kind discriminates the three cases a Rule value can hold. Per the design
// notes this is a tagged variant rather than a type hierarchy: operations
// that apply to "any rule" switch on Kind, and operations that only make
// sense for one case (vulnerabilities, contraposition) are total only over
// that case.
type Kind int

const (
	KindStrict Kind = iota
	KindDefeasible
	KindOrdering
)

func (k Kind) String() string {
	switch k {
	case KindStrict:
		return "strict"
	case KindDefeasible:
		return "defeasible"
	case KindOrdering:
		return "ordering"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Ordering is the parsed form of an ordering rule: a sequence of rule-name
// groups, normalized so that Groups[i] is always strictly less preferred
// than Groups[i+1] (a '>' in the source text is reversed into this form at
// parse time).
type Ordering struct {
	Groups [][]string
}

// Pairs returns every (lower, higher) rule-name pair implied by o, i.e. one
// pair per name in Groups[i] crossed with every name in Groups[i+1], for
// every adjacent group pair. This is exactly the edge set that
// prefgraph.InsertOrdering needs to add.
func (o Ordering) Pairs() [][2]string {
	var pairs [][2]string
	for i := 0; i+1 < len(o.Groups); i++ {
		for _, lower := range o.Groups[i] {
			for _, higher := range o.Groups[i+1] {
				pairs = append(pairs, [2]string{lower, higher})
			}
		}
	}
	return pairs
}

func (o Ordering) String() string {
	groups := make([]string, len(o.Groups))
	for i, g := range o.Groups {
		groups[i] = strings.Join(g, ", ")
	}
	return strings.Join(groups, " < ")
}

// Rule is a strict rule, a defeasible rule, or an ordering, depending on
// Kind. Antecedent and Vulnerabilities are always kept sorted by
// Literal.Less; Name is metadata and never participates in Equal or Hash.
type Rule struct {
	Kind            Kind
	Name            string
	Antecedent      []Literal
	Consequent      Literal
	Vulnerabilities []Literal
	Ordering        Ordering
}

// NewStrictRule returns a strict rule. antecedent is sorted on construction.
func NewStrictRule(name string, antecedent []Literal, consequent Literal) Rule {
	return Rule{
		Kind:       KindStrict,
		Name:       name,
		Antecedent: SortLiterals(antecedent),
		Consequent: consequent,
	}
}

// NewDefeasibleRule returns a defeasible rule. antecedent and vulnerabilities
// are sorted on construction.
func NewDefeasibleRule(name string, antecedent, vulnerabilities []Literal, consequent Literal) Rule {
	return Rule{
		Kind:            KindDefeasible,
		Name:            name,
		Antecedent:      SortLiterals(antecedent),
		Vulnerabilities: SortLiterals(vulnerabilities),
		Consequent:      consequent,
	}
}

// NewOrderingRule returns an ordering rule from already-normalized groups
// (see Ordering).
func NewOrderingRule(groups [][]string) Rule {
	return Rule{Kind: KindOrdering, Ordering: Ordering{Groups: groups}}
}

// IsStrict reports whether r is a strict rule.
func (r Rule) IsStrict() bool { return r.Kind == KindStrict }

// IsDefeasible reports whether r is a defeasible rule.
func (r Rule) IsDefeasible() bool { return r.Kind == KindDefeasible }

// IsOrdering reports whether r is an ordering rule.
func (r Rule) IsOrdering() bool { return r.Kind == KindOrdering }

// Equal reports whether r and o are the same rule per §3: same kind, same
// sorted antecedent, same consequent, and (for defeasible rules) the same
// vulnerabilities. Name is metadata only and is ignored.
func (r Rule) Equal(o Rule) bool {
	if r.Kind != o.Kind {
		return false
	}
	switch r.Kind {
	case KindOrdering:
		return r.Ordering.String() == o.Ordering.String()
	case KindDefeasible:
		if !EqualLiteralSlices(r.Vulnerabilities, o.Vulnerabilities) {
			return false
		}
		fallthrough
	case KindStrict:
		return r.Consequent.Equal(o.Consequent) && EqualLiteralSlices(r.Antecedent, o.Antecedent)
	}
	return false
}

// Hash returns a hash derived from the consequent XORed with the hash of
// every antecedent literal (and, for defeasible rules, every vulnerability
// literal, since those participate in Equal).
func (r Rule) Hash() uint64 {
	h := r.Consequent.Hash()
	for _, a := range r.Antecedent {
		h ^= a.Hash()
	}
	if r.Kind == KindDefeasible {
		for _, v := range r.Vulnerabilities {
			h ^= v.Hash() ^ 0x9e3779b97f4a7c15
		}
	}
	return h
}

// Less orders rules for the round-robin pass of §4.3: first by antecedent
// count, then by textual form. A strict rule is always considered greater
// than any defeasible rule, regardless of antecedent count.
func (r Rule) Less(o Rule) bool {
	if r.IsStrict() != o.IsStrict() {
		// defeasible (false) sorts before strict (true)
		return !r.IsStrict() && o.IsStrict()
	}
	if len(r.Antecedent) != len(o.Antecedent) {
		return len(r.Antecedent) < len(o.Antecedent)
	}
	return r.String() < o.String()
}

// String renders r in the textual syntax of §4.1, suitable for
// parse(String()) round-tripping.
func (r Rule) String() string {
	var b strings.Builder
	if r.Name != "" {
		b.WriteString(r.Name)
		b.WriteString(": ")
	}

	switch r.Kind {
	case KindOrdering:
		return r.Ordering.String()
	case KindStrict:
		if len(r.Antecedent) > 0 {
			b.WriteString(joinLiterals(r.Antecedent))
			b.WriteString(" ")
		}
		b.WriteString("--> ")
		b.WriteString(r.Consequent.String())
	case KindDefeasible:
		if len(r.Antecedent) > 0 {
			b.WriteString(joinLiterals(r.Antecedent))
			b.WriteString(" ")
		}
		if len(r.Vulnerabilities) > 0 {
			b.WriteString("=(")
			b.WriteString(joinLiterals(r.Vulnerabilities))
			b.WriteString(")=> ")
		} else {
			b.WriteString("==> ")
		}
		b.WriteString(r.Consequent.String())
	}

	return b.String()
}

// SortRules returns a new, freshly-sorted copy of rules per Rule.Less. Used
// for the round-robin rule order of §4.3's forward-chaining pass.
func SortRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Less(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Contrapositions returns the n strict contrapositions of r, per §4.3: for a
// strict rule a1,...,an --> c, it returns, for each i, the rule
// a1,...,a(i-1),-c,a(i+1),...,an --> -ai. It returns nil for rules that are
// not strict, and for strict axioms (no antecedent), since there is no ai to
// replace.
//
// Each returned rule is given a derived name "<rule>-<i>" (1-indexed) when r
// is named, and is otherwise unnamed.
func (r Rule) Contrapositions() []Rule {
	if !r.IsStrict() || len(r.Antecedent) == 0 {
		return nil
	}

	out := make([]Rule, 0, len(r.Antecedent))
	for i, ai := range r.Antecedent {
		newAntecedent := make([]Literal, 0, len(r.Antecedent))
		for j, aj := range r.Antecedent {
			if j == i {
				continue
			}
			newAntecedent = append(newAntecedent, aj)
		}
		newAntecedent = append(newAntecedent, r.Consequent.Negate())

		name := ""
		if r.Name != "" {
			name = fmt.Sprintf("%s-%d", r.Name, i+1)
		}

		out = append(out, NewStrictRule(name, newAntecedent, ai.Negate()))
	}
	return out
}
