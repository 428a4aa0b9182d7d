package proof

import (
	"fmt"
	"testing"

	"github.com/arglab/defarg/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// namer returns a NameFunc that hands out sequential "P<n>" names, mimicking
// the knowledge base's proof counter in isolation.
func namer() NameFunc {
	n := 0
	return func() string {
		name := fmt.Sprintf("P%d", n)
		n++
		return name
	}
}

func Test_Construct_axiomProducesExactlyOneProof(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	rule := term.NewStrictRule("S1", nil, lit("p"))
	proofs := Construct(map[term.Literal][]*Proof{}, []term.Rule{rule}, []term.Rule{rule}, namer())

	require.Len(proofs, 1)
	assert.True(proofs[0].HasEmptyAntecedent())
	assert.Equal(lit("p"), proofs[0].Consequent())
}

func Test_Construct_undercutScenario(t *testing.T) {
	// spec §8 scenario 1: "-->a", "=(-a)=>b" yields two proofs, one for a
	// and one for b.
	assert := assert.New(t)
	require := require.New(t)

	ruleA := term.NewStrictRule("", nil, lit("a"))
	ruleB := term.NewDefeasibleRule("", nil, []term.Literal{lit("a").Negate()}, lit("b"))

	proofs := Construct(map[term.Literal][]*Proof{}, []term.Rule{ruleA, ruleB}, []term.Rule{ruleA, ruleB}, namer())

	require.Len(proofs, 2)

	byConsequent := map[term.Literal]*Proof{}
	for _, p := range proofs {
		byConsequent[p.Consequent()] = p
	}
	require.Contains(byConsequent, lit("a"))
	require.Contains(byConsequent, lit("b"))
	assert.True(byConsequent[lit("a")].IsStrict())
	assert.True(byConsequent[lit("b")].IsDefeasible())
	assert.Equal([]term.Literal{lit("a").Negate()}, byConsequent[lit("b")].Vulnerabilities())
}

func Test_Construct_chainedDerivationSharesSubProof(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ruleA := term.NewStrictRule("", nil, lit("a"))
	ruleAB := term.NewStrictRule("", []term.Literal{lit("a")}, lit("b"))
	ruleBC := term.NewStrictRule("", []term.Literal{lit("b")}, lit("c"))

	all := []term.Rule{ruleA, ruleAB, ruleBC}
	proofs := Construct(map[term.Literal][]*Proof{}, all, all, namer())

	require.Len(proofs, 3)

	var proofC *Proof
	for _, p := range proofs {
		if p.Consequent().Equal(lit("c")) {
			proofC = p
		}
	}
	require.NotNil(proofC)
	assert.Len(proofC.Closure(), 3)
}

func Test_Construct_loopPreventionStopsAtOneSelfApplication(t *testing.T) {
	// "a ==> a" can justify one additional defeasible proof of a from the
	// strict axiom's proof, but cannot then reapply itself to that new
	// proof: doing so would make a proof recursively depend on its own top
	// rule, which I5 forbids.
	assert := assert.New(t)
	require := require.New(t)

	ruleA := term.NewStrictRule("", nil, lit("a"))
	selfRule := term.NewDefeasibleRule("", []term.Literal{lit("a")}, nil, lit("a"))

	all := []term.Rule{ruleA, selfRule}
	proofs := Construct(map[term.Literal][]*Proof{}, all, all, namer())

	require.Len(proofs, 2)
	for _, p := range proofs {
		assert.False(p.UsesRule(selfRule) && p.SubProofs()[lit("a")] != nil && p.SubProofs()[lit("a")].UsesRule(selfRule))
	}
}

func Test_Construct_noDuplicateProofsAcrossRounds(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ruleA := term.NewStrictRule("", nil, lit("a"))
	ruleB := term.NewStrictRule("", nil, lit("b"))
	ruleC := term.NewStrictRule("", []term.Literal{lit("a"), lit("b")}, lit("c"))

	all := []term.Rule{ruleA, ruleB, ruleC}
	proofs := Construct(map[term.Literal][]*Proof{}, all, all, namer())

	require.Len(proofs, 3)

	seen := make(map[string]bool)
	for _, p := range proofs {
		key := p.Consequent().String()
		assert.False(seen[key], "duplicate proof for %s", key)
		seen[key] = true
	}
}

func Test_Construct_contraposedRuleParticipatesLikeAnyOther(t *testing.T) {
	// "a, b --> c" contraposes to "-c, b --> -a" and "a, -c --> -b"; feeding
	// those alongside an axiomatic "-c" and "b" should derive "-a".
	assert := assert.New(t)
	require := require.New(t)

	main := term.NewStrictRule("S1", []term.Literal{lit("a"), lit("b")}, lit("c"))
	contras := main.Contrapositions()
	require.Len(contras, 2)

	axiomNotC := term.NewStrictRule("", nil, lit("c").Negate())
	axiomB := term.NewStrictRule("", nil, lit("b"))

	all := append([]term.Rule{axiomNotC, axiomB}, contras...)
	proofs := Construct(map[term.Literal][]*Proof{}, all, all, namer())

	foundNotA := false
	for _, p := range proofs {
		if p.Consequent().Equal(lit("a").Negate()) {
			foundNotA = true
		}
	}
	assert.True(foundNotA)
}

func Test_Construct_existingProofsAreReusedNotRebuilt(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ruleA := term.NewStrictRule("", nil, lit("a"))
	nameFn := namer()
	first := Construct(map[term.Literal][]*Proof{}, []term.Rule{ruleA}, []term.Rule{ruleA}, nameFn)
	require.Len(first, 1)

	existing := map[term.Literal][]*Proof{lit("a"): first}
	ruleAB := term.NewStrictRule("", []term.Literal{lit("a")}, lit("b"))
	second := Construct(existing, []term.Rule{ruleAB}, []term.Rule{ruleA, ruleAB}, nameFn)

	require.Len(second, 1)
	sub, ok := second[0].SubProof(lit("a"))
	require.True(ok)
	assert.Same(first[0], sub)
}

func Test_WeakestLink_strictProofIsItsOwnTopRule(t *testing.T) {
	assert := assert.New(t)

	rule := term.NewStrictRule("S1", nil, lit("p"))
	p := New("P0", rule, nil)

	wl := WeakestLink(p, func(a, b string) bool { return false })
	assert.True(wl.Equal(rule))
}

func Test_WeakestLink_defeasibleProofPicksLeastPreferred(t *testing.T) {
	assert := assert.New(t)

	weak := term.NewDefeasibleRule("D1", nil, nil, lit("a"))
	strong := term.NewDefeasibleRule("D2", []term.Literal{lit("a")}, nil, lit("b"))

	axiomWeak := New("P0", weak, nil)
	p := New("P1", strong, map[term.Literal]*Proof{lit("a"): axiomWeak})

	// D2 is more preferred than D1, so D1 (weak) is the weakest link.
	morePreferred := func(a, b string) bool { return a == "D2" && b == "D1" }

	wl := WeakestLink(p, morePreferred)
	assert.True(wl.Equal(weak))
}

func Test_WeakestLink_strictIsStrongerThanDefeasible(t *testing.T) {
	assert := assert.New(t)

	strictRule := term.NewStrictRule("S1", nil, lit("a"))
	defeasibleRule := term.NewDefeasibleRule("D1", []term.Literal{lit("a")}, nil, lit("b"))

	axiomA := New("P0", strictRule, nil)
	p := New("P1", defeasibleRule, map[term.Literal]*Proof{lit("a"): axiomA})

	wl := WeakestLink(p, func(a, b string) bool { return false })
	assert.True(wl.Equal(defeasibleRule))
}
