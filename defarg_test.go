package defarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UndercutScenario_endToEnd(t *testing.T) {
	// spec §8 seed scenario 1, exercised through the public API only.
	assert := assert.New(t)
	require := require.New(t)

	k := NewKnowledgeBase("")
	require.NoError(k.AddRuleString("--> a"))
	require.NoError(k.AddRuleString("=(-a)=> b"))

	af := NewArgumentationFramework(k)
	aArg := af.ArgumentsWithConclusion(NewLiteral("a"))[0]
	bArg := af.ArgumentsWithConclusion(NewLiteral("b"))[0]

	lab := GroundedLabelling(af)
	assert.True(lab.IsIn(aArg))
	assert.True(lab.IsOut(bArg))
	assert.Empty(lab.Undec())
}

func Test_Dialogue_undercutScenarioEndsUnconvinced(t *testing.T) {
	// spec §8 seed scenario 5, exercised through the public API only.
	assert := assert.New(t)
	require := require.New(t)

	k := NewKnowledgeBase("")
	require.NoError(k.AddRuleString("--> a"))
	require.NoError(k.AddRuleString("=(-a)=> b"))

	af := NewArgumentationFramework(k)
	bArg := af.ArgumentsWithConclusion(NewLiteral("b"))[0]
	lab := GroundedLabelling(af)

	proponent := NewBasePlayer(Proponent)
	opponent := NewScepticalPlayer(Opponent)
	d := NewDialogue(af.Graph(), lab, proponent, opponent, false)

	bIn := FromArgument(bArg, "IN")
	require.NoError(d.Move(proponent, Claim, bIn))
	require.NoError(d.Move(opponent, Why, bIn))

	_, err := proponent.MakeMove(d)
	var illegal *IllegalArgument
	assert.ErrorAs(err, &illegal)
}

func Test_KnowledgeBase_snapshotRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	k := NewKnowledgeBase("kb1")
	require.NoError(k.AddRuleString("R1: a, b --> c"))
	data := k.SnapshotBinary()

	k2 := NewKnowledgeBase("")
	require.NoError(k2.RestoreBinary(data))

	assert.Equal("kb1", k2.kb.UserRules()[0].Name)
	assert.Len(k2.Proofs(), len(k.Proofs()))
}
