// Package parse implements the textual rule syntax of spec §4.1: a
// hand-written lexer and recursive-descent parser, deliberately avoiding
// the teacher's LR/LALR parser-generator machinery (internal/ictiobus) and
// combinator idioms, since the grammar here is small enough that a
// hand-rolled descent is shorter and clearer.
package parse

import (
	"fmt"

	"github.com/arglab/defarg/internal/term"
)

// Parse parses a single rule from its textual form (§4.1):
//
//	literal   := ['-'] IDENT
//	lits      := literal (',' literal)*
//	name      := IDENT ':'
//	strict    := [name] [lits] '-->' literal
//	defeas    := [name] [lits] '=' ['(' lits ')'] '=>' literal
//	ordering  := NAMES ('<' NAMES)+ | NAMES ('>' NAMES)+
//	rule      := strict | defeas | ordering | literal
//
// A bare literal (the last alternative) is accepted as shorthand for the
// strict axiom "--> literal".
func Parse(s string) (term.Rule, error) {
	return parseLine(s, 0)
}

// parseLine parses a single source line, stamping lineNo (0 if unknown)
// into any resulting error for file-context reporting.
func parseLine(s string, lineNo int) (term.Rule, error) {
	ts := lex(s, lineNo)
	return parseRule(ts)
}

func parseRule(ts *tokenStream) (term.Rule, error) {
	if ts.Peek().class == tInvalid {
		return term.Rule{}, newParseErrorf(ts.Peek(), "unrecognized character %q", ts.Peek().lexeme)
	}

	name := ""
	if ts.Peek().class == tIdent && ts.PeekAt(1).class == tColon {
		name = ts.Next().lexeme
		ts.Next() // consume ':'
	}

	firstItems, firstNegated, err := parseLiteralList(ts)
	if err != nil {
		return term.Rule{}, err
	}

	switch ts.Peek().class {
	case tMinus:
		return parseStrictTail(ts, name, firstItems)
	case tEq:
		return parseDefeasibleTail(ts, name, firstItems)
	case tLt, tGt:
		return parseOrderingTail(ts, firstItems, firstNegated)
	case tEOF:
		if name != "" {
			return term.Rule{}, newParseErrorf(ts.Peek(), "rule name %q given with nothing after it", name)
		}
		if len(firstItems) != 1 {
			return term.Rule{}, newParseErrorf(ts.Peek(), "expected '-->', '=', '<', or '>' after literal list")
		}
		// bare literal: shorthand for a strict axiom.
		return term.NewStrictRule("", nil, firstItems[0]), nil
	default:
		return term.Rule{}, newParseErrorf(ts.Peek(), "unexpected %s; expected '-->', '=', '<', or '>'", ts.Peek().class.human)
	}
}

// parseLiteralList parses `lits` (or the empty list, when the next token
// isn't the start of a literal): literal (',' literal)*. It also reports,
// per-item, whether each was negated, since ordering's NAMES production
// reuses this same scan but forbids negation.
func parseLiteralList(ts *tokenStream) ([]term.Literal, []bool, error) {
	var lits []term.Literal
	var negated []bool

	for {
		negate := false
		if ts.Peek().class == tMinus && ts.PeekAt(1).class == tMinus {
			break // start of '-->', not a negated literal
		}
		if ts.Peek().class == tMinus {
			ts.Next()
			negate = true
		}
		if ts.Peek().class != tIdent {
			if negate {
				return nil, nil, newParseErrorf(ts.Peek(), "expected identifier after '-'")
			}
			break
		}
		name := ts.Next().lexeme
		lit := term.NewLiteral(name)
		if negate {
			lit = lit.Negate()
		}
		lits = append(lits, lit)
		negated = append(negated, negate)

		if ts.Peek().class != tComma {
			break
		}
		ts.Next() // consume ','
	}

	return lits, negated, nil
}

func parseStrictTail(ts *tokenStream, name string, antecedent []term.Literal) (term.Rule, error) {
	if err := expectArrow(ts); err != nil {
		return term.Rule{}, err
	}
	consequent, err := parseSingleLiteral(ts)
	if err != nil {
		return term.Rule{}, err
	}
	if err := expectEOF(ts); err != nil {
		return term.Rule{}, err
	}
	return term.NewStrictRule(name, antecedent, consequent), nil
}

// expectArrow consumes '-' '-' '>' ("-->").
func expectArrow(ts *tokenStream) error {
	for _, want := range []tokenClass{tMinus, tMinus, tGt} {
		if ts.Peek().class != want {
			return newParseErrorf(ts.Peek(), "expected %s as part of '-->', got %s", want.human, ts.Peek().class.human)
		}
		ts.Next()
	}
	return nil
}

func parseDefeasibleTail(ts *tokenStream, name string, antecedent []term.Literal) (term.Rule, error) {
	ts.Next() // consume the leading '='

	var vulnerabilities []term.Literal
	if ts.Peek().class == tLParen {
		ts.Next()
		lits, _, err := parseLiteralList(ts)
		if err != nil {
			return term.Rule{}, err
		}
		vulnerabilities = lits
		if ts.Peek().class != tRParen {
			return term.Rule{}, newParseErrorf(ts.Peek(), "expected ')' to close vulnerability list")
		}
		ts.Next()
	}

	if ts.Peek().class != tEq {
		return term.Rule{}, newParseErrorf(ts.Peek(), "expected '=' as part of '=>', got %s", ts.Peek().class.human)
	}
	ts.Next()
	if ts.Peek().class != tGt {
		return term.Rule{}, newParseErrorf(ts.Peek(), "expected '>' as part of '=>', got %s", ts.Peek().class.human)
	}
	ts.Next()

	consequent, err := parseSingleLiteral(ts)
	if err != nil {
		return term.Rule{}, err
	}
	if err := expectEOF(ts); err != nil {
		return term.Rule{}, err
	}

	return term.NewDefeasibleRule(name, antecedent, vulnerabilities, consequent), nil
}

func parseOrderingTail(ts *tokenStream, firstGroup []term.Literal, firstNegated []bool) (term.Rule, error) {
	names, err := namesOf(ts, firstGroup, firstNegated)
	if err != nil {
		return term.Rule{}, err
	}

	groups := [][]string{names}

	opClass := ts.Peek().class // tLt or tGt, fixed for the whole ordering
	for ts.Peek().class == tLt || ts.Peek().class == tGt {
		if ts.Peek().class != opClass {
			return term.Rule{}, newParseErrorf(ts.Peek(), "cannot mix '<' and '>' within a single ordering")
		}
		ts.Next()
		items, negated, err := parseLiteralList(ts)
		if err != nil {
			return term.Rule{}, err
		}
		if len(items) == 0 {
			return term.Rule{}, newParseErrorf(ts.Peek(), "expected rule name list after %q", opClass.human)
		}
		groupNames, err := namesOf(ts, items, negated)
		if err != nil {
			return term.Rule{}, err
		}
		groups = append(groups, groupNames)
	}

	if err := expectEOF(ts); err != nil {
		return term.Rule{}, err
	}

	if opClass == tGt {
		// "A > B > C" means A is more preferred than B more preferred than
		// C; Ordering.Groups must hold least-preferred first, so reverse.
		for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
			groups[i], groups[j] = groups[j], groups[i]
		}
	}

	return term.NewOrderingRule(groups), nil
}

// namesOf converts a literal group parsed via parseLiteralList into a list
// of bare rule names, rejecting negation (rule names are never negatable).
func namesOf(ts *tokenStream, lits []term.Literal, negated []bool) ([]string, error) {
	names := make([]string, len(lits))
	for i, l := range lits {
		if negated[i] {
			return nil, newParseErrorf(ts.Peek(), "rule name %q cannot be negated in an ordering", l.Name)
		}
		names[i] = l.Name
	}
	return names, nil
}

func parseSingleLiteral(ts *tokenStream) (term.Literal, error) {
	negate := false
	if ts.Peek().class == tMinus {
		ts.Next()
		negate = true
	}
	if ts.Peek().class != tIdent {
		return term.Literal{}, newParseErrorf(ts.Peek(), "expected identifier, got %s", ts.Peek().class.human)
	}
	name := ts.Next().lexeme
	lit := term.NewLiteral(name)
	if negate {
		lit = lit.Negate()
	}
	return lit, nil
}

func expectEOF(ts *tokenStream) error {
	if ts.Peek().class != tEOF {
		return newParseErrorf(ts.Peek(), "unexpected trailing %s", ts.Peek().class.human)
	}
	return nil
}

// mustParse parses a rule from literal source text and panics (rather than
// returning an error) on failure.
func mustParse(s string) term.Rule {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("mustParse(%q): %v", s, err))
	}
	return r
}
