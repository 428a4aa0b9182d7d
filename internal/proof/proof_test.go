package proof

import (
	"testing"

	"github.com/arglab/defarg/internal/term"
	"github.com/stretchr/testify/assert"
)

func lit(name string) term.Literal { return term.NewLiteral(name) }

func Test_Proof_axiomHasEmptyAntecedentAndIsStrict(t *testing.T) {
	assert := assert.New(t)

	rule := term.NewStrictRule("S1", nil, lit("p"))
	p := New("P0", rule, nil)

	assert.True(p.HasEmptyAntecedent())
	assert.True(p.IsStrict())
	assert.Equal(lit("p"), p.Consequent())
	assert.Equal(1, p.Len())
}

func Test_Proof_IsStrict_falseIfAnySubProofDefeasible(t *testing.T) {
	assert := assert.New(t)

	axiomA := New("P0", term.NewStrictRule("", nil, lit("a")), nil)
	defeasibleB := New("P1", term.NewDefeasibleRule("", nil, nil, lit("b")), nil)

	rule := term.NewStrictRule("S1", []term.Literal{lit("a"), lit("b")}, lit("c"))
	p := New("P2", rule, map[term.Literal]*Proof{lit("a"): axiomA, lit("b"): defeasibleB})

	assert.False(p.IsStrict())
	assert.True(p.IsDefeasible())
}

func Test_Proof_Vulnerabilities_emptyForStrict(t *testing.T) {
	assert := assert.New(t)

	rule := term.NewStrictRule("S1", nil, lit("p"))
	p := New("P0", rule, nil)

	assert.Empty(p.Vulnerabilities())
}

func Test_Proof_Vulnerabilities_fromTopRuleOnly(t *testing.T) {
	assert := assert.New(t)

	rule := term.NewDefeasibleRule("D1", nil, []term.Literal{lit("x")}, lit("p"))
	p := New("P0", rule, nil)

	assert.Equal([]term.Literal{lit("x")}, p.Vulnerabilities())
}

func Test_Proof_Closure_includesSelfAndAllTransitiveSubProofs(t *testing.T) {
	assert := assert.New(t)

	axiomA := New("P0", term.NewStrictRule("", nil, lit("a")), nil)
	ruleAB := term.NewStrictRule("S1", []term.Literal{lit("a")}, lit("b"))
	proofB := New("P1", ruleAB, map[term.Literal]*Proof{lit("a"): axiomA})
	ruleBC := term.NewStrictRule("S2", []term.Literal{lit("b")}, lit("c"))
	proofC := New("P2", ruleBC, map[term.Literal]*Proof{lit("b"): proofB})

	closure := proofC.Closure()
	assert.Len(closure, 3)
}

func Test_Proof_UsesRule(t *testing.T) {
	assert := assert.New(t)

	ruleA := term.NewStrictRule("S1", nil, lit("a"))
	axiomA := New("P0", ruleA, nil)
	ruleAB := term.NewStrictRule("S2", []term.Literal{lit("a")}, lit("b"))
	proofB := New("P1", ruleAB, map[term.Literal]*Proof{lit("a"): axiomA})

	assert.True(proofB.UsesRule(ruleA))
	assert.True(proofB.UsesRule(ruleAB))
	assert.False(proofB.UsesRule(term.NewStrictRule("S3", nil, lit("z"))))
}

func Test_Proof_Equal_ignoresName(t *testing.T) {
	assert := assert.New(t)

	rule := term.NewStrictRule("S1", nil, lit("p"))
	p1 := New("P0", rule, nil)
	p2 := New("P99", rule, nil)

	assert.True(p1.Equal(p2))
}

func Test_Proof_Equal_differsOnDifferentSubProofs(t *testing.T) {
	assert := assert.New(t)

	axiomA := New("P0", term.NewStrictRule("", nil, lit("a")), nil)
	axiomA2 := New("P1", term.NewStrictRule("", nil, lit("a")), nil)
	other := New("P2", term.NewStrictRule("", nil, lit("q")), nil)

	ruleAB := term.NewStrictRule("S1", []term.Literal{lit("a")}, lit("b"))
	p1 := New("P3", ruleAB, map[term.Literal]*Proof{lit("a"): axiomA})
	p2 := New("P4", ruleAB, map[term.Literal]*Proof{lit("a"): axiomA2})
	p3 := New("P5", ruleAB, map[term.Literal]*Proof{lit("a"): other})

	assert.True(p1.Equal(p2))
	assert.False(p1.Equal(p3))
}

func Test_Proof_Hash_consistentWithEqual(t *testing.T) {
	assert := assert.New(t)

	rule := term.NewStrictRule("S1", nil, lit("p"))
	p1 := New("P0", rule, nil)
	p2 := New("P1", rule, nil)

	assert.Equal(p1.Hash(), p2.Hash())
}

func Test_Proof_Less_ordersByLengthThenName(t *testing.T) {
	assert := assert.New(t)

	short := New("P0", term.NewStrictRule("", nil, lit("a")), nil)
	ruleAB := term.NewStrictRule("", []term.Literal{lit("a")}, lit("b"))
	longer := New("P1", ruleAB, map[term.Literal]*Proof{lit("a"): short})

	assert.True(short.Less(longer))
	assert.False(longer.Less(short))
}

func Test_Proof_String_axiomIsJustTheRule(t *testing.T) {
	assert := assert.New(t)

	rule := term.NewStrictRule("S1", nil, lit("p"))
	p := New("P0", rule, nil)

	assert.Equal(rule.String(), p.String())
}
