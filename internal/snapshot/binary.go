package snapshot

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Low-level primitives for Snapshot's own fields (name and edge strings).
// Grounded on internal/tunascript/binary.go's encBinary*/decBinary* helpers,
// duplicated here rather than exported from internal/term since Go gives
// package-private helpers no other way to cross a package boundary.

// encBinaryInt writes i as a varint into a fixed 8-byte slot (trailing bytes
// past the varint's own length are left zero-padded).
func encBinaryInt(i int) []byte {
	enc := make([]byte, 8)
	binary.PutVarint(enc, int64(i))
	return enc
}

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
