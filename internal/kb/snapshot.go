package kb

import (
	"github.com/arglab/defarg/internal/prefgraph"
	"github.com/arglab/defarg/internal/proof"
	"github.com/arglab/defarg/internal/snapshot"
	"github.com/arglab/defarg/internal/term"
)

// SnapshotBinary encodes kb's name, user-declared rules, and preference
// edges into REZI's binary format. It carries exactly what Save writes as
// text, so RestoreBinary can rebuild the same derived proof and argument
// closure without persisting that closure directly.
func (kb *KnowledgeBase) SnapshotBinary() []byte {
	s := snapshot.Snapshot{
		Name:  kb.Name,
		Rules: kb.UserRules(),
		Edges: kb.prefs.Edges(),
	}
	return snapshot.Encode(s)
}

// RestoreBinary decodes data produced by SnapshotBinary and replaces kb's
// entire state with it: every existing rule, preference edge, and proof is
// discarded first, then the decoded rules and edges are replayed through
// AddRule in batch mode, exactly as LoadFile replays a parsed rule file.
func (kb *KnowledgeBase) RestoreBinary(data []byte) error {
	s, err := snapshot.Decode(data)
	if err != nil {
		return wrapKbError(err, "restoring snapshot")
	}

	kb.Name = s.Name
	kb.userRules = make(map[term.Literal][]term.Rule)
	kb.workingRules = make(map[term.Literal][]term.Rule)
	kb.proofs = make(map[term.Literal][]*proof.Proof)
	kb.prefs = prefgraph.New()
	kb.proofIdx = 0

	kb.SetBatch(true)
	for _, r := range s.Rules {
		if err := kb.AddRule(r); err != nil {
			kb.SetBatch(false)
			return wrapKbError(err, "restoring snapshot rule %q", r.String())
		}
	}
	for _, e := range s.Edges {
		ordering := term.NewOrderingRule([][]string{{e[0]}, {e[1]}})
		if err := kb.AddRule(ordering); err != nil {
			kb.SetBatch(false)
			return wrapKbError(err, "restoring snapshot preference edge %q > %q", e[1], e[0])
		}
	}
	kb.SetBatch(false)
	kb.Recalculate()

	return nil
}
