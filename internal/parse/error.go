package parse

import "fmt"

// ParseError reports malformed literal/rule/ordering text. It carries the
// offending source line and the 1-indexed column the problem was found at,
// the way tunascript.SyntaxError does.
type ParseError struct {
	line     int
	pos      int
	fullLine string
	message  string
}

func (e *ParseError) Error() string {
	if e.line == 0 {
		return fmt.Sprintf("parse error: %s", e.message)
	}
	return fmt.Sprintf("parse error: line %d, char %d: %s", e.line, e.pos, e.message)
}

// Line returns the 1-indexed line the error occurred on, or 0 if unset
// (single-rule parsing with no surrounding file context).
func (e *ParseError) Line() int { return e.line }

// Position returns the 1-indexed character position the error occurred at.
func (e *ParseError) Position() int { return e.pos }

// FullMessage renders the error along with the offending line and a cursor
// pointing at the problem column.
func (e *ParseError) FullMessage() string {
	msg := e.Error()
	if cursor := e.SourceLineWithCursor(); cursor != "" {
		msg = cursor + "\n" + msg
	}
	return msg
}

// SourceLineWithCursor returns the offending line with a cursor line placed
// directly beneath the problem column. Returns "" if no source line is
// available.
func (e *ParseError) SourceLineWithCursor() string {
	if e.fullLine == "" {
		return ""
	}
	cursor := ""
	for i := 0; i < e.pos-1; i++ {
		cursor += " "
	}
	cursor += "^"
	return e.fullLine + "\n" + cursor
}

func newParseError(t token, msg string) *ParseError {
	return &ParseError{line: t.line, pos: t.pos, fullLine: t.fullLine, message: msg}
}

func newParseErrorf(t token, format string, a ...interface{}) *ParseError {
	return newParseError(t, fmt.Sprintf(format, a...))
}

// RuleError reports a structurally invalid rule: one that lexes and parses
// as a rule-shaped sequence of tokens but violates a constraint the grammar
// itself cannot express (e.g. a negated name in a preference ordering).
type RuleError struct {
	message string
}

func (e *RuleError) Error() string { return "invalid rule: " + e.message }

func newRuleError(format string, a ...interface{}) *RuleError {
	return &RuleError{message: fmt.Sprintf(format, a...)}
}
