package term

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// This file contains the binary encoding format for Literal, Ordering, and
// Rule, used by internal/snapshot to persist a knowledge base's rule set.
// Grounded on internal/tunascript/binary.go's hand-rolled encBinary*/
// decBinary* helpers (predating the later extraction of those helpers into
// the standalone github.com/dekarrin/rezi module).

func encBinaryBool(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

func decBinaryBool(data []byte) (bool, int, error) {
	if len(data) < 1 {
		return false, 0, fmt.Errorf("unexpected end of data")
	}
	switch data[0] {
	case 0:
		return false, 1, nil
	case 1:
		return true, 1, nil
	default:
		return false, 0, fmt.Errorf("unknown non-bool value")
	}
}

// encBinaryInt writes i as a varint into a fixed 8-byte slot (trailing bytes
// past the varint's own length are left zero-padded).
func encBinaryInt(i int) []byte {
	enc := make([]byte, 8)
	binary.PutVarint(enc, int64(i))
	return enc
}

// always reads 8 bytes.
func decBinaryInt(data []byte) (int, int, error) {
	if len(data) < 8 {
		return 0, 0, fmt.Errorf("data does not contain 8 bytes")
	}
	val, read := binary.Varint(data[:8])
	if read <= 0 {
		return 0, 0, fmt.Errorf("invalid varint-encoded int")
	}
	return int(val), 8, nil
}

func encBinaryString(s string) []byte {
	var enc []byte
	chCount := 0
	for _, ch := range s {
		buf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(buf, ch)
		enc = append(enc, buf[:n]...)
		chCount++
	}
	return append(encBinaryInt(chCount), enc...)
}

func decBinaryString(data []byte) (string, int, error) {
	runeCount, _, err := decBinaryInt(data)
	if err != nil {
		return "", 0, fmt.Errorf("decoding string rune count: %w", err)
	}
	data = data[8:]
	if runeCount < 0 {
		return "", 0, fmt.Errorf("string rune count < 0")
	}

	read := 8
	out := make([]rune, 0, runeCount)
	for i := 0; i < runeCount; i++ {
		ch, n := utf8.DecodeRune(data)
		if ch == utf8.RuneError && n <= 1 {
			return "", 0, fmt.Errorf("unexpected end of data in string")
		}
		out = append(out, ch)
		read += n
		data = data[n:]
	}
	return string(out), read, nil
}

func encBinaryStringSlice(ss []string) []byte {
	enc := encBinaryInt(len(ss))
	for _, s := range ss {
		enc = append(enc, encBinaryString(s)...)
	}
	return enc
}

func decBinaryStringSlice(data []byte) ([]string, int, error) {
	count, read, err := decBinaryInt(data)
	if err != nil {
		return nil, 0, err
	}
	data = data[read:]
	if count < 0 {
		return nil, 0, fmt.Errorf("string slice count < 0")
	}
	out := make([]string, count)
	for i := 0; i < count; i++ {
		s, n, err := decBinaryString(data)
		if err != nil {
			return nil, 0, err
		}
		out[i] = s
		data = data[n:]
		read += n
	}
	return out, read, nil
}

// MarshalBinary encodes l as its name followed by its negation flag.
func (l Literal) MarshalBinary() ([]byte, error) {
	enc := encBinaryString(l.Name)
	enc = append(enc, encBinaryBool(l.Negated)...)
	return enc, nil
}

// UnmarshalBinary decodes l from the format MarshalBinary produces.
func (l *Literal) UnmarshalBinary(data []byte) error {
	name, n, err := decBinaryString(data)
	if err != nil {
		return fmt.Errorf("literal name: %w", err)
	}
	data = data[n:]

	negated, _, err := decBinaryBool(data)
	if err != nil {
		return fmt.Errorf("literal negated flag: %w", err)
	}

	l.Name = name
	l.Negated = negated
	return nil
}

func encBinaryLiteralSlice(lits []Literal) []byte {
	enc := encBinaryInt(len(lits))
	for _, lit := range lits {
		litEnc, _ := lit.MarshalBinary()
		enc = append(enc, encBinaryInt(len(litEnc))...)
		enc = append(enc, litEnc...)
	}
	return enc
}

func decBinaryLiteralSlice(data []byte) ([]Literal, int, error) {
	count, read, err := decBinaryInt(data)
	if err != nil {
		return nil, 0, err
	}
	data = data[read:]
	if count < 0 {
		return nil, 0, fmt.Errorf("literal slice count < 0")
	}

	out := make([]Literal, count)
	for i := 0; i < count; i++ {
		litLen, n, err := decBinaryInt(data)
		if err != nil {
			return nil, 0, err
		}
		data = data[n:]
		read += n
		if len(data) < litLen {
			return nil, 0, fmt.Errorf("unexpected end of data in literal slice")
		}
		if err := out[i].UnmarshalBinary(data[:litLen]); err != nil {
			return nil, 0, err
		}
		data = data[litLen:]
		read += litLen
	}
	return out, read, nil
}

// MarshalBinary encodes o as its groups, each a string slice.
func (o Ordering) MarshalBinary() ([]byte, error) {
	enc := encBinaryInt(len(o.Groups))
	for _, g := range o.Groups {
		enc = append(enc, encBinaryStringSlice(g)...)
	}
	return enc, nil
}

// UnmarshalBinary decodes o from the format MarshalBinary produces.
func (o *Ordering) UnmarshalBinary(data []byte) error {
	groupCount, read, err := decBinaryInt(data)
	if err != nil {
		return fmt.Errorf("ordering group count: %w", err)
	}
	data = data[read:]
	if groupCount < 0 {
		return fmt.Errorf("ordering group count < 0")
	}

	groups := make([][]string, groupCount)
	for i := 0; i < groupCount; i++ {
		g, n, err := decBinaryStringSlice(data)
		if err != nil {
			return fmt.Errorf("ordering group %d: %w", i, err)
		}
		groups[i] = g
		data = data[n:]
	}
	o.Groups = groups
	return nil
}

// MarshalBinary encodes r as its kind tag followed by whichever fields that
// kind uses; an ordering rule carries only its Ordering, a strict rule
// carries name/antecedent/consequent, and a defeasible rule additionally
// carries vulnerabilities.
func (r Rule) MarshalBinary() ([]byte, error) {
	enc := encBinaryInt(int(r.Kind))

	if r.Kind == KindOrdering {
		ordEnc, _ := r.Ordering.MarshalBinary()
		return append(enc, ordEnc...), nil
	}

	enc = append(enc, encBinaryString(r.Name)...)
	enc = append(enc, encBinaryLiteralSlice(r.Antecedent)...)
	consEnc, _ := r.Consequent.MarshalBinary()
	enc = append(enc, encBinaryInt(len(consEnc))...)
	enc = append(enc, consEnc...)
	if r.Kind == KindDefeasible {
		enc = append(enc, encBinaryLiteralSlice(r.Vulnerabilities)...)
	}
	return enc, nil
}

// UnmarshalBinary decodes r from the format MarshalBinary produces.
func (r *Rule) UnmarshalBinary(data []byte) error {
	kind, read, err := decBinaryInt(data)
	if err != nil {
		return fmt.Errorf("rule kind: %w", err)
	}
	data = data[read:]
	r.Kind = Kind(kind)

	if r.Kind == KindOrdering {
		var o Ordering
		if err := o.UnmarshalBinary(data); err != nil {
			return fmt.Errorf("rule ordering: %w", err)
		}
		r.Ordering = o
		return nil
	}

	name, n, err := decBinaryString(data)
	if err != nil {
		return fmt.Errorf("rule name: %w", err)
	}
	data = data[n:]
	r.Name = name

	antecedent, n, err := decBinaryLiteralSlice(data)
	if err != nil {
		return fmt.Errorf("rule antecedent: %w", err)
	}
	data = data[n:]
	r.Antecedent = antecedent

	consLen, n, err := decBinaryInt(data)
	if err != nil {
		return fmt.Errorf("rule consequent length: %w", err)
	}
	data = data[n:]
	if len(data) < consLen {
		return fmt.Errorf("unexpected end of data in rule consequent")
	}
	var cons Literal
	if err := cons.UnmarshalBinary(data[:consLen]); err != nil {
		return fmt.Errorf("rule consequent: %w", err)
	}
	data = data[consLen:]
	r.Consequent = cons

	if r.Kind == KindDefeasible {
		vulns, _, err := decBinaryLiteralSlice(data)
		if err != nil {
			return fmt.Errorf("rule vulnerabilities: %w", err)
		}
		r.Vulnerabilities = vulns
	} else {
		r.Vulnerabilities = nil
	}
	return nil
}
