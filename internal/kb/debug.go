package kb

import (
	"sort"

	"github.com/dekarrin/rosed"
)

// DebugDump renders the knowledge base's rules and proofs as text tables,
// grounded on internal/game/debug.go's ListFlags/ListNPCs (rosed.Edit(...).
// InsertTableOpts(...)) — the same "build a [][]string with a header row,
// hand it to rosed" shape applied to rule/proof listings instead of game
// state.
func (kb *KnowledgeBase) DebugDump() string {
	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	rules := kb.WorkingRules()
	sort.Slice(rules, func(i, j int) bool { return rules[i].Less(rules[j]) })
	ruleData := [][]string{{"Rule", "Kind"}}
	for _, r := range rules {
		ruleData = append(ruleData, []string{r.String(), r.Kind.String()})
	}

	proofs := kb.Proofs()
	sort.Slice(proofs, func(i, j int) bool { return proofs[i].Less(proofs[j]) })
	proofData := [][]string{{"Name", "Conclusion", "Strict"}}
	for _, p := range proofs {
		strict := "no"
		if p.IsStrict() {
			strict = "yes"
		}
		proofData = append(proofData, []string{p.Name(), p.Consequent().String(), strict})
	}

	ruleTable := rosed.Edit("Rules:\n").
		InsertTableOpts(0, ruleData, 80, tableOpts).
		String()
	proofTable := rosed.Edit("Proofs:\n").
		InsertTableOpts(0, proofData, 80, tableOpts).
		String()

	return ruleTable + "\n\n" + proofTable
}
