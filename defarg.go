// Package defarg is the host-facing convenience API for structured
// argumentation over a defeasible knowledge base: build a KnowledgeBase,
// add or remove rules, derive an ArgumentationFramework over its proofs,
// compute a grounded Labelling, and run a Dialogue between a proponent and
// an opponent.
//
// Grounded on cmd/tqi's use of its own engine wrapper as the single
// host-facing entry point over internal/game: this file plays the same
// role, gluing together internal/kb, internal/argument, internal/label,
// internal/dialogue and internal/player behind one import path so a
// caller never needs to import internal/* directly.
package defarg

import (
	"io"

	"github.com/arglab/defarg/internal/argument"
	"github.com/arglab/defarg/internal/dialogue"
	"github.com/arglab/defarg/internal/kb"
	"github.com/arglab/defarg/internal/label"
	"github.com/arglab/defarg/internal/parse"
	"github.com/arglab/defarg/internal/player"
	"github.com/arglab/defarg/internal/proof"
	"github.com/arglab/defarg/internal/term"
	"github.com/google/uuid"
)

// Re-exported value and error types, so a caller never needs to import
// internal/term or internal/kb directly for the types that cross this
// package's API boundary.
type (
	Literal   = term.Literal
	Rule      = term.Rule
	Proof     = proof.Proof
	LoadIssue = parse.LoadIssue
	KbError   = kb.KbError

	IllegalMove     = dialogue.IllegalMove
	NotYourMove     = dialogue.NotYourMove
	IllegalArgument = dialogue.IllegalArgument
)

// NewLiteral builds a positive literal with the given name.
func NewLiteral(name string) Literal { return term.NewLiteral(name) }

// NewStrictRule builds a strict (indefeasible) rule.
func NewStrictRule(name string, antecedent []Literal, consequent Literal) Rule {
	return term.NewStrictRule(name, antecedent, consequent)
}

// NewDefeasibleRule builds a defeasible rule with the given vulnerabilities.
func NewDefeasibleRule(name string, vulnerabilities, antecedent []Literal, consequent Literal) Rule {
	return term.NewDefeasibleRule(name, antecedent, vulnerabilities, consequent)
}

// ParseRule parses a single rule from its textual form (§4.1's rule-file
// grammar), e.g. "p ==> q" or "R1: a, b =(x)=> c".
func ParseRule(s string) (Rule, error) { return parse.Parse(s) }

// KnowledgeBase owns the rule set, preference graph, and derived proof set
// for one argumentation problem. It is the entry point of this package:
// every other type here is built from one.
type KnowledgeBase struct {
	kb *kb.KnowledgeBase
}

// NewKnowledgeBase creates an empty, named knowledge base.
func NewKnowledgeBase(name string) *KnowledgeBase {
	return &KnowledgeBase{kb: kb.New(name)}
}

// AddRule inserts a rule value (see AddRuleString for the textual form). Batch mode,
// preference edits, and consistency checking are all handled internally;
// see internal/kb.KnowledgeBase.AddRule for the exact semantics.
func (k *KnowledgeBase) AddRule(r Rule) error { return k.kb.AddRule(r) }

// AddRuleString parses and inserts a single rule in one step.
func (k *KnowledgeBase) AddRuleString(s string) error {
	r, err := parse.Parse(s)
	if err != nil {
		return err
	}
	return k.kb.AddRule(r)
}

// DeleteRule removes a rule and every proof that depended on it.
func (k *KnowledgeBase) DeleteRule(r Rule) error { return k.kb.DeleteRule(r) }

// MorePreferred reports whether rule a is preferred over rule b by name.
func (k *KnowledgeBase) MorePreferred(a, b string) bool { return k.kb.MorePreferred(a, b) }

// Proofs returns every derived proof currently in the knowledge base.
func (k *KnowledgeBase) Proofs() []*proof.Proof { return k.kb.Proofs() }

// UserRules returns every rule the caller inserted, in no particular order.
func (k *KnowledgeBase) UserRules() []Rule { return k.kb.UserRules() }

// SetBatch suppresses proof reconstruction until the next Recalculate,
// for bulk rule loading.
func (k *KnowledgeBase) SetBatch(batch bool) { k.kb.SetBatch(batch) }

// Recalculate rebuilds the proof set from scratch. Call after a batch of
// AddRule calls made with batch mode on.
func (k *KnowledgeBase) Recalculate() { k.kb.Recalculate() }

// LoadFile parses and inserts every rule in r in batch mode, recalculating
// once at the end. Malformed or rejected lines are reported as issues
// rather than failing the whole load.
func (k *KnowledgeBase) LoadFile(r io.Reader) []LoadIssue { return k.kb.LoadFile(r) }

// Save writes every user rule and preference edge to w in the same
// textual rule-file format LoadFile reads.
func (k *KnowledgeBase) Save(w io.Writer) error { return k.kb.Save(w) }

// SnapshotBinary encodes the knowledge base's generating state (name,
// rules, preference edges) as a binary blob suitable for storage.
func (k *KnowledgeBase) SnapshotBinary() []byte { return k.kb.SnapshotBinary() }

// RestoreBinary replaces the knowledge base's entire state with a blob
// produced by SnapshotBinary.
func (k *KnowledgeBase) RestoreBinary(data []byte) error { return k.kb.RestoreBinary(data) }

// DebugDump renders the rule set and proof set as text tables, for
// interactive inspection.
func (k *KnowledgeBase) DebugDump() string { return k.kb.DebugDump() }

// Subscribe registers obs to be called on every rule/preference change.
// The returned handle can be passed to Unsubscribe.
func (k *KnowledgeBase) Subscribe(obs Observer) uuid.UUID { return k.kb.Subscribe(obs) }

// Unsubscribe cancels a prior Subscribe registration.
func (k *KnowledgeBase) Unsubscribe(id uuid.UUID) { k.kb.Unsubscribe(id) }

// Event is delivered to every Observer subscribed to a KnowledgeBase.
type Event = kb.Event

// EventKind discriminates the notifications a KnowledgeBase publishes.
type EventKind = kb.EventKind

const (
	EventRulesAdded      = kb.EventRulesAdded
	EventRulesDeleted    = kb.EventRulesDeleted
	EventOrderingChanged = kb.EventOrderingChanged
	EventUpdated         = kb.EventUpdated
)

// Observer receives KnowledgeBase events. See Event.
type Observer = kb.Observer

// ArgumentationFramework wraps a knowledge base's proof set as an argument
// graph: one Argument per proof, with undercut/rebut attack edges computed
// over the whole set per §4.5.
type ArgumentationFramework struct {
	graph *argument.Graph
	kb    *kb.KnowledgeBase
}

// NewArgumentationFramework builds the argument graph for k's current
// proof set. Call again (or Rebuild) after editing k to pick up changes.
func NewArgumentationFramework(k *KnowledgeBase) *ArgumentationFramework {
	return &ArgumentationFramework{
		graph: argument.Build(k.kb.Proofs(), k.kb.MorePreferred),
		kb:    k.kb,
	}
}

// Rebuild recomputes every attack edge against the framework's knowledge
// base's current proof set and preferences.
func (af *ArgumentationFramework) Rebuild() {
	af.graph = argument.Build(af.kb.Proofs(), af.kb.MorePreferred)
}

// Arguments returns every argument in the framework.
func (af *ArgumentationFramework) Arguments() []*argument.Argument { return af.graph.Arguments() }

// ArgumentsWithConclusion returns every argument concluding lit.
func (af *ArgumentationFramework) ArgumentsWithConclusion(lit Literal) []*argument.Argument {
	return af.graph.ArgumentsWithConclusion(lit)
}

// FindByName returns the argument with the given proof name, or nil.
func (af *ArgumentationFramework) FindByName(name string) *argument.Argument {
	return af.graph.FindByName(name)
}

// Graph returns the underlying argument graph, for callers that need to
// build a Dialogue directly.
func (af *ArgumentationFramework) Graph() *argument.Graph { return af.graph }

// Labelling is the grounded IN/OUT/UNDEC partition of an argumentation
// framework's arguments.
type Labelling = label.Labelling

// GroundedLabelling computes the grounded labelling of af, per §4.6's
// up-complete fixed-point construction.
func GroundedLabelling(af *ArgumentationFramework) *Labelling {
	return label.Grounded(af.graph)
}

// Dialogue drives a turn-based persuasion dialogue between a proponent and
// an opponent over a labelling.
type Dialogue = dialogue.Dialogue

// Player is anything that can make a move in a Dialogue; see
// NewBasePlayer, NewScepticalPlayer, and NewSmartPlayer for the three
// strategies defined in §4.7.
type Player = dialogue.Player

// NewBasePlayer returns a player that concedes a claim whose label matches
// the background labelling and asks WHY otherwise, and answers WHY by
// citing the earliest-decided attacker it is not yet committed to.
func NewBasePlayer(role dialogue.Role) *player.Player { return player.NewBasePlayer(role) }

// NewScepticalPlayer returns a player that concedes only what its own
// commitment store justifies and asks WHY otherwise.
func NewScepticalPlayer(role dialogue.Role) *player.Player { return player.NewScepticalPlayer(role) }

// NewSmartPlayer returns a player that only cites a reason when it
// genuinely attacks the issue at hand.
func NewSmartPlayer(role dialogue.Role) *player.Player { return player.NewSmartPlayer(role) }

// NewDialogue starts a dialogue over lab between proponent and opponent.
// relaxed skips the role and move-sequencing checks per §4.7's
// relaxed-protocol variant; content checks and bookkeeping still apply.
func NewDialogue(g *argument.Graph, lab *Labelling, proponent, opponent dialogue.Player, relaxed bool) *Dialogue {
	return dialogue.New(g, lab, proponent, opponent, relaxed)
}

// Role is which side of a dialogue a player occupies.
type Role = dialogue.Role

const (
	Proponent = dialogue.Proponent
	Opponent  = dialogue.Opponent
)

// MoveKind identifies the kind of move played in a dialogue.
type MoveKind = dialogue.MoveKind

const (
	Claim    = dialogue.Claim
	Why      = dialogue.Why
	Because  = dialogue.Because
	Concede  = dialogue.Concede
	Retract  = dialogue.Retract
	Question = dialogue.Question
	Disagree = dialogue.Disagree
)

// Move is one played move in a dialogue.
type Move = dialogue.Move

// FromArgument builds a single-argument labelling for arg under labelValue
// ("IN", "OUT", or "UNDEC"), the form Dialogue.Move and Player.MakeMove
// take for their Arg parameter.
func FromArgument(arg *argument.Argument, labelValue string) *Labelling {
	return label.FromArgument(arg, labelValue)
}
