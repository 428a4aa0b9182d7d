// Package snapshot implements a binary codec for a knowledge base's
// generating state: its user-declared rules and preference edges. It
// intentionally does not persist the derived working-memory rules, proofs,
// or argument graph — forward chaining and argument construction are
// deterministic and cheap to rerun, so storing the generating set keeps the
// wire format stable even as those derived representations evolve, and
// keeps snapshots small.
//
// Grounded on internal/kb's Save/LoadFile (the same Name + UserRules +
// preference-edges content, here binary instead of the rule-file text
// format) and on server/dao/sqlite's use of github.com/dekarrin/rezi to
// wrap an encoding.BinaryMarshaler/BinaryUnmarshaler for storage.
package snapshot

import (
	"fmt"

	"github.com/arglab/defarg/internal/term"
	"github.com/dekarrin/rezi"
)

// Snapshot is everything needed to deterministically reconstruct a
// KnowledgeBase's derived proof and argument closure: its name, its
// user-declared rules (never contrapositions, which Rule.Contrapositions
// regenerates), and its preference graph's direct edges.
type Snapshot struct {
	Name  string
	Rules []term.Rule
	Edges [][2]string
}

// MarshalBinary encodes s as its name, then its rule count and rules, then
// its edge count and edges.
func (s Snapshot) MarshalBinary() ([]byte, error) {
	enc := encBinaryString(s.Name)

	enc = append(enc, encBinaryInt(len(s.Rules))...)
	for _, r := range s.Rules {
		rEnc, err := r.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("encoding rule %q: %w", r.String(), err)
		}
		enc = append(enc, encBinaryInt(len(rEnc))...)
		enc = append(enc, rEnc...)
	}

	enc = append(enc, encBinaryInt(len(s.Edges))...)
	for _, e := range s.Edges {
		enc = append(enc, encBinaryString(e[0])...)
		enc = append(enc, encBinaryString(e[1])...)
	}

	return enc, nil
}

// UnmarshalBinary decodes s from the format MarshalBinary produces.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	name, n, err := decBinaryString(data)
	if err != nil {
		return fmt.Errorf("snapshot name: %w", err)
	}
	data = data[n:]

	ruleCount, n, err := decBinaryInt(data)
	if err != nil {
		return fmt.Errorf("snapshot rule count: %w", err)
	}
	data = data[n:]
	if ruleCount < 0 {
		return fmt.Errorf("snapshot rule count < 0")
	}

	rules := make([]term.Rule, ruleCount)
	for i := 0; i < ruleCount; i++ {
		rLen, n, err := decBinaryInt(data)
		if err != nil {
			return fmt.Errorf("snapshot rule %d length: %w", i, err)
		}
		data = data[n:]
		if len(data) < rLen {
			return fmt.Errorf("unexpected end of data in snapshot rule %d", i)
		}
		if err := rules[i].UnmarshalBinary(data[:rLen]); err != nil {
			return fmt.Errorf("snapshot rule %d: %w", i, err)
		}
		data = data[rLen:]
	}

	edgeCount, n, err := decBinaryInt(data)
	if err != nil {
		return fmt.Errorf("snapshot edge count: %w", err)
	}
	data = data[n:]
	if edgeCount < 0 {
		return fmt.Errorf("snapshot edge count < 0")
	}

	edges := make([][2]string, edgeCount)
	for i := 0; i < edgeCount; i++ {
		lower, n, err := decBinaryString(data)
		if err != nil {
			return fmt.Errorf("snapshot edge %d lower: %w", i, err)
		}
		data = data[n:]
		higher, n, err := decBinaryString(data)
		if err != nil {
			return fmt.Errorf("snapshot edge %d higher: %w", i, err)
		}
		data = data[n:]
		edges[i] = [2]string{lower, higher}
	}

	s.Name = name
	s.Rules = rules
	s.Edges = edges
	return nil
}

// Encode wraps s.MarshalBinary with REZI's length-prefixed binary envelope,
// the same convention server/dao/sqlite uses to persist a *game.State.
func Encode(s Snapshot) []byte {
	return rezi.EncBinary(s)
}

// Decode is the inverse of Encode. It returns an error if data is not a
// valid REZI-wrapped Snapshot, or if it decodes but leaves unconsumed
// trailing bytes.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	n, err := rezi.DecBinary(data, &s)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: REZI decode: %w", err)
	}
	if n != len(data) {
		return Snapshot{}, fmt.Errorf("snapshot: decoded byte count mismatch; only consumed %d/%d bytes", n, len(data))
	}
	return s, nil
}
