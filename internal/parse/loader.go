package parse

import (
	"bufio"
	"io"
	"strings"

	"github.com/arglab/defarg/internal/term"
)

// LoadIssue is one line's worth of batch-loading failure, per spec §6 and
// §7 ("Batch file loading catches and logs per-line errors and proceeds").
type LoadIssue struct {
	Line int
	Err  error
}

// LoadRules reads the rule-file format of §6: one rule per line, comments
// starting at '#', blank lines ignored. It never stops at the first error;
// instead every malformed line is recorded as a LoadIssue and loading
// continues, mirroring the original argulib loader's per-line exception
// catch-and-continue behavior.
func LoadRules(r io.Reader) ([]term.Rule, []LoadIssue) {
	var rules []term.Rule
	var issues []LoadIssue

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rule, err := parseLine(line, lineNo)
		if err != nil {
			issues = append(issues, LoadIssue{Line: lineNo, Err: err})
			continue
		}
		rules = append(rules, rule)
	}

	return rules, issues
}

// stripComment removes everything from the first '#' onward.
func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

// SaveRules writes rules in the textual rule-file format, one per line, in
// the order given. Per spec §6, only user-declared rules (never derived
// contrapositions) should be passed here; the round-trip
// LoadRules(SaveRules(rules)) must reproduce the rule set exactly (modulo
// proof names, which this package never touches).
func SaveRules(w io.Writer, rules []term.Rule) error {
	bw := bufio.NewWriter(w)
	for _, r := range rules {
		if _, err := bw.WriteString(r.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
