package player

import (
	"testing"

	"github.com/arglab/defarg/internal/argument"
	"github.com/arglab/defarg/internal/dialogue"
	"github.com/arglab/defarg/internal/kb"
	"github.com/arglab/defarg/internal/label"
	"github.com/arglab/defarg/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lit(name string) term.Literal { return term.NewLiteral(name) }

func buildGraph(k *kb.KnowledgeBase) *argument.Graph {
	return argument.Build(k.Proofs(), k.MorePreferred)
}

func Test_BasePlayer_answersWhyByCitingEarliestAttacker(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("", nil, []term.Literal{lit("a").Negate()}, lit("b"))))
	g := buildGraph(k)
	l := label.Grounded(g)
	aArg := g.ArgumentsWithConclusion(lit("a"))[0]
	bArg := g.ArgumentsWithConclusion(lit("b"))[0]

	prop := NewBasePlayer(dialogue.Proponent)
	opp := NewBasePlayer(dialogue.Opponent)
	d := dialogue.New(g, l, prop, opp, false)

	require.NoError(d.Move(prop, dialogue.Claim, label.FromArgument(bArg, "OUT")))
	require.NoError(d.Move(opp, dialogue.Why, label.FromArgument(bArg, "OUT")))

	mv, err := prop.MakeMove(d)
	require.NoError(err)
	require.NotNil(mv)
	assert.Equal(dialogue.Because, mv.Kind)
	a, lab, ok := mv.Arg.SingleArgument()
	require.True(ok)
	assert.Same(aArg, a)
	assert.Equal("IN", lab)
}

func Test_BasePlayer_concedesWhenChallengedLabelMatchesAssessment(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	g := buildGraph(k)
	l := label.Grounded(g)
	a := g.Arguments()[0]

	prop := NewBasePlayer(dialogue.Proponent)
	opp := NewBasePlayer(dialogue.Opponent)
	d := dialogue.New(g, l, prop, opp, false)

	require.NoError(d.Move(prop, dialogue.Claim, label.FromArgument(a, "IN")))

	mv, err := opp.MakeMove(d)
	require.NoError(err)
	require.NotNil(mv)
	assert.Equal(dialogue.Concede, mv.Kind)
	assert.True(opp.Commitment().IsIn(a))
}

func Test_ScepticalPlayer_keepsAskingWhyWithoutJustification(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("", nil, []term.Literal{lit("a").Negate()}, lit("b"))))
	g := buildGraph(k)
	l := label.Grounded(g)
	bArg := g.ArgumentsWithConclusion(lit("b"))[0]

	prop := NewBasePlayer(dialogue.Proponent)
	opp := NewScepticalPlayer(dialogue.Opponent)
	d := dialogue.New(g, l, prop, opp, false)

	// bArg is actually OUT in the grounded labelling; claiming it IN gives
	// the sceptical opponent, whose commitment store starts empty, nothing
	// to justify the claim with.
	require.NoError(d.Move(prop, dialogue.Claim, label.FromArgument(bArg, "IN")))

	mv, err := opp.MakeMove(d)
	require.NoError(err)
	require.NotNil(mv)
	assert.Equal(dialogue.Why, mv.Kind)
}

func Test_SmartPlayer_rejectsReasonThatDoesNotAttackTheIssue(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// a and b are each unconditional and unattacked, so neither one attacks
	// the other: citing a as a reason for conceding on b must be rejected.
	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("Rb", nil, nil, lit("b"))))
	g := buildGraph(k)
	aArg := g.ArgumentsWithConclusion(lit("a"))[0]
	bArg := g.ArgumentsWithConclusion(lit("b"))[0]

	smart := NewSmartPlayer(dialogue.Opponent)
	reason := label.FromArgument(aArg, "IN")
	issue := label.FromArgument(bArg, "IN")

	assert.False(smart.isReasonFor(reason, issue))
}

func Test_SmartPlayer_acceptsReasonThatAttacksTheIssue(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("", nil, []term.Literal{lit("a").Negate()}, lit("b"))))
	g := buildGraph(k)
	aArg := g.ArgumentsWithConclusion(lit("a"))[0]
	bArg := g.ArgumentsWithConclusion(lit("b"))[0]

	smart := NewSmartPlayer(dialogue.Opponent)
	reason := label.FromArgument(aArg, "IN")
	issue := label.FromArgument(bArg, "OUT")

	assert.True(smart.isReasonFor(reason, issue))
}

func Test_SmartPlayer_answersWhyWithEmptyLabellingWhenNoAttackers(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	require.NoError(k.AddRule(term.NewDefeasibleRule("", nil, []term.Literal{lit("a").Negate()}, lit("b"))))
	g := buildGraph(k)
	l := label.Grounded(g)
	bArg := g.ArgumentsWithConclusion(lit("b"))[0]

	prop := NewSmartPlayer(dialogue.Proponent)
	opp := NewSmartPlayer(dialogue.Opponent)
	d := dialogue.New(g, l, prop, opp, false)

	require.NoError(d.Move(prop, dialogue.Claim, label.FromArgument(bArg, "IN")))
	require.NoError(d.Move(opp, dialogue.Why, label.FromArgument(bArg, "IN")))

	mv, err := prop.MakeMove(d)
	require.NoError(err)
	require.NotNil(mv)
	assert.Equal(dialogue.Because, mv.Kind)
	assert.Zero(mv.Arg.Len())
}

func Test_IsCommittedTo_reflectsOwnCommitmentStore(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	g := buildGraph(k)
	a := g.Arguments()[0]

	p := NewBasePlayer(dialogue.Proponent)
	labArg := label.FromArgument(a, "IN")

	assert.False(p.IsCommittedTo(labArg))
	p.UpdateCommitment(labArg)
	assert.True(p.IsCommittedTo(labArg))
}

func Test_MakeMove_returnsNilWhenNoMovesYet(t *testing.T) {
	require := require.New(t)

	k := kb.New("")
	require.NoError(k.AddRule(term.NewStrictRule("", nil, lit("a"))))
	g := buildGraph(k)
	l := label.Grounded(g)

	prop := NewBasePlayer(dialogue.Proponent)
	opp := NewBasePlayer(dialogue.Opponent)
	d := dialogue.New(g, l, prop, opp, false)

	mv, err := prop.MakeMove(d)
	require.NoError(err)
	require.Nil(mv)
}
