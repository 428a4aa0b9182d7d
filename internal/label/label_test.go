package label

import (
	"testing"

	"github.com/arglab/defarg/internal/argument"
	"github.com/arglab/defarg/internal/kb"
	"github.com/arglab/defarg/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lit(name string) term.Literal { return term.NewLiteral(name) }

func buildGraph(k *kb.KnowledgeBase) *argument.Graph {
	return argument.Build(k.Proofs(), k.MorePreferred)
}

func Test_Grounded_emptyKBHasEmptyLabelling(t *testing.T) {
	assert := assert.New(t)

	k := kb.New("")
	g := buildGraph(k)
	l := Grounded(g)

	assert.Empty(l.In())
	assert.Empty(l.Out())
	assert.Empty(l.Undec())
}

func Test_Grounded_axiomWithNoAttackersIsInAfterFirstRound(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))

	g := buildGraph(k)
	l := Grounded(g)

	require.Len(l.In(), 1)
	a := l.In()[0]
	step, ok := l.StepOf(a)
	require.True(ok)
	assert.Equal(1, step)
}

func Test_Grounded_undercutScenario(t *testing.T) {
	// spec §8 seed scenario 1.
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("", nil, []term.Literal{lit("a").Negate()}, lit("b"))))

	g := buildGraph(k)
	l := Grounded(g)

	aArg := g.ArgumentsWithConclusion(lit("a"))[0]
	bArg := g.ArgumentsWithConclusion(lit("b"))[0]

	assert.True(l.IsIn(aArg))
	assert.True(l.IsOut(bArg))
	assert.Empty(l.Undec())
}

func Test_Grounded_preferredRebutScenario(t *testing.T) {
	// spec §8 seed scenario 2.
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewDefeasibleRule("R1", nil, nil, lit("b").Negate())))
	require.NoError(k.AddRule(term.NewDefeasibleRule("R2", nil, nil, lit("b"))))
	require.NoError(k.AddRule(term.NewOrderingRule([][]string{{"R1"}, {"R2"}})))

	g := buildGraph(k)
	l := Grounded(g)

	bArg := g.ArgumentsWithConclusion(lit("b"))[0]
	notBArg := g.ArgumentsWithConclusion(lit("b").Negate())[0]

	assert.True(l.IsIn(bArg))
	assert.True(l.IsOut(notBArg))
}

func Test_Grounded_mutualRebutLeavesBothUndec(t *testing.T) {
	// spec §8 seed scenario 3.
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewDefeasibleRule("R1", nil, nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("R2", nil, nil, lit("a").Negate())))

	g := buildGraph(k)
	l := Grounded(g)

	aArg := g.ArgumentsWithConclusion(lit("a"))[0]
	notAArg := g.ArgumentsWithConclusion(lit("a").Negate())[0]

	assert.True(l.IsUndec(aArg))
	assert.True(l.IsUndec(notAArg))
}

func Test_Grounded_rebutThroughSubProofScenario(t *testing.T) {
	// spec §8 seed scenario 4.
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewDefeasibleRule("Ra", nil, nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("Rna", nil, nil, lit("a").Negate())))
	require.NoError(k.AddRule(term.NewDefeasibleRule("Rb", nil, nil, lit("b"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("Rc", []term.Literal{lit("a"), lit("b")}, nil, lit("c"))))

	g := buildGraph(k)
	l := Grounded(g)

	bArg := g.ArgumentsWithConclusion(lit("b"))[0]
	aArg := g.ArgumentsWithConclusion(lit("a"))[0]
	notAArg := g.ArgumentsWithConclusion(lit("a").Negate())[0]
	cArg := g.ArgumentsWithConclusion(lit("c"))[0]

	assert.True(l.IsIn(bArg))
	assert.True(l.IsUndec(aArg))
	assert.True(l.IsUndec(notAArg))
	assert.True(l.IsUndec(cArg))
}

func Test_Grounded_isLegalEverywhere(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewDefeasibleRule("R1", nil, nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("R2", nil, nil, lit("a").Negate())))
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("c"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("", nil, []term.Literal{lit("c").Negate()}, lit("d"))))

	g := buildGraph(k)
	l := Grounded(g)

	for _, a := range l.In() {
		assert.True(l.IsLegallyIN(a))
	}
	for _, a := range l.Out() {
		assert.True(l.IsLegallyOUT(a))
	}
	for _, a := range l.Undec() {
		assert.True(l.IsLegallyUNDEC(a))
	}
}

func Test_Grounded_partitionIsCompleteAndDisjoint(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewDefeasibleRule("R1", nil, nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("R2", nil, nil, lit("a").Negate())))

	g := buildGraph(k)
	l := Grounded(g)

	assert.Equal(len(g.Arguments()), l.Len())
	for _, a := range g.Arguments() {
		label := l.LabelFor(a)
		assert.NotEmpty(label)
	}
}

func Test_Grounded_calledTwiceYieldsEqualLabellings(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("", nil, []term.Literal{lit("a").Negate()}, lit("b"))))

	g := buildGraph(k)
	l1 := Grounded(g)
	l2 := Grounded(g)

	assert.True(l1.Equal(l2))
}

func Test_Union_keepsReceiverLabelOnDisagreement(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	g := buildGraph(k)
	require.Len(g.Arguments(), 1)
	a := g.Arguments()[0]

	inLab := FromArgument(a, "IN")
	outLab := FromArgument(a, "OUT")

	merged := inLab.Union(outLab)
	assert.True(merged.IsIn(a))
	assert.False(merged.IsOut(a))

	merged2 := outLab.Union(inLab)
	assert.True(merged2.IsOut(a))
}

func Test_Intersection_keepsOnlyAgreement(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	g := buildGraph(k)
	a := g.Arguments()[0]

	inLab := FromArgument(a, "IN")
	undecLab := FromArgument(a, "UNDEC")

	merged := inLab.Intersection(undecLab)
	assert.False(merged.IsIn(a))
	assert.False(merged.IsUndec(a))
	assert.Zero(merged.Len())
}

func Test_Difference_removesSharedMembers(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("b"))))
	g := buildGraph(k)
	require.Len(g.Arguments(), 2)

	both := Empty()
	for _, a := range g.Arguments() {
		both.in.Add(a)
	}
	one := FromArgument(g.Arguments()[0], "IN")

	diff := both.Difference(one)
	assert.Equal(1, diff.Len())
}

func Test_DiffArgs_findsMismatchedArguments(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	g := buildGraph(k)
	a := g.Arguments()[0]

	inLab := FromArgument(a, "IN")
	outLab := FromArgument(a, "OUT")

	assert.ElementsMatch([]*argument.Argument{a}, inLab.DiffArgs(outLab))
	assert.Empty(inLab.DiffArgs(inLab))
}

func Test_SubLabelling_emptyIsSubOfAnything(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	g := buildGraph(k)
	l := Grounded(g)

	assert.True(Empty().SubLabelling(l))
	require.Greater(l.Len(), 0)
	assert.False(l.SubLabelling(Empty()))
}

func Test_Split_producesOneLabellingPerArgument(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewDefeasibleRule("R1", nil, nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("R2", nil, nil, lit("a").Negate())))

	g := buildGraph(k)
	l := Grounded(g)

	split := l.Split()
	assert.Len(split, l.Len())
	for _, s := range split {
		assert.Equal(1, s.Len())
	}
}
