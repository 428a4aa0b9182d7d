package kb

import (
	"fmt"
	"io"

	"github.com/arglab/defarg/internal/parse"
	"github.com/arglab/defarg/internal/term"
)

// LoadFile reads the rule-file format of spec §6 and adds every well-formed
// rule to the knowledge base in batch mode (proof reconstruction is
// suppressed until every line has been read, then run once via
// Recalculate). It returns one LoadIssue per line that failed to parse,
// plus one per rule that parsed but could not be added (a duplicate
// defeasible-rule name or an ordering that would create a preference
// cycle; batch mode suppresses the strict-consistency check) — those carry
// Line -1, since the association with a source line
// was already lost by the time parse.LoadRules hands back a flat rule
// list. Grounded on original_source/argumentation/kb.py's parse_file,
// which does the same thing with self.batch.
func (kb *KnowledgeBase) LoadFile(r io.Reader) []parse.LoadIssue {
	rules, issues := parse.LoadRules(r)

	kb.SetBatch(true)
	for _, rule := range rules {
		if err := kb.AddRule(rule); err != nil {
			issues = append(issues, parse.LoadIssue{Line: -1, Err: err})
		}
	}
	kb.SetBatch(false)
	kb.Recalculate()

	return issues
}

// Save writes one line per user-declared rule (never a contraposition),
// followed by the preference graph's direct edges rendered as two-element
// orderings ("lower < higher"). Loading the result reproduces the same
// rule set and the same preference edges; proof names are not persisted,
// since Recalculate regenerates them.
func (kb *KnowledgeBase) Save(w io.Writer) error {
	if err := parse.SaveRules(w, kb.UserRules()); err != nil {
		return err
	}
	for _, e := range kb.prefs.Edges() {
		ordering := term.NewOrderingRule([][]string{{e[0]}, {e[1]}})
		if _, err := fmt.Fprintln(w, ordering.String()); err != nil {
			return err
		}
	}
	return nil
}
