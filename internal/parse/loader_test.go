package parse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadRules_skipsCommentsAndBlankLines(t *testing.T) {
	assert := assert.New(t)

	src := strings.Join([]string{
		"# comments start at '#'",
		"",
		"S1: a, b --> c                 # strict rule",
		"D1: p, q =(x, y)=> r           # defeasible with vulnerabilities x, y",
		"    p ==> q                    # defeasible, no name",
		"R1 < R2, R3 < R4               # preference ordering",
		"",
	}, "\n")

	rules, issues := LoadRules(strings.NewReader(src))

	assert.Empty(issues)
	assert.Len(rules, 4)
	assert.True(rules[0].IsStrict())
	assert.True(rules[1].IsDefeasible())
	assert.True(rules[2].IsDefeasible())
	assert.True(rules[3].IsOrdering())
}

func Test_LoadRules_collectsPerLineIssuesAndContinues(t *testing.T) {
	assert := assert.New(t)

	src := strings.Join([]string{
		"--> a",
		"this is not valid !!!",
		"--> b",
	}, "\n")

	rules, issues := LoadRules(strings.NewReader(src))

	assert.Len(rules, 2)
	require := require.New(t)
	require.Len(issues, 1)
	assert.Equal(2, issues[0].Line)
}

func Test_SaveRules_thenLoadRules_roundTrips(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	original, issues := LoadRules(strings.NewReader(strings.Join([]string{
		"S1: a, b --> c",
		"D1: p, q =(x, y)=> r",
		"p ==> q",
		"R1 < R2, R3 < R4",
	}, "\n")))
	require.Empty(issues)

	var buf bytes.Buffer
	require.NoError(SaveRules(&buf, original))

	reloaded, issues := LoadRules(&buf)
	require.Empty(issues)
	require.Len(reloaded, len(original))

	for i := range original {
		assert.True(original[i].Equal(reloaded[i]), "rule %d did not round-trip: %q vs %q", i, original[i].String(), reloaded[i].String())
	}
}
