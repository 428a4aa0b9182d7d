// Package dialogue implements the two-player argumentation game over a
// grounded labelling (spec §4.7). Grounded on
// original_source/argumentation/discussions.py's GroundedDiscussion2, the
// subclass dialog.py actually wires into the CLI (and so the canonical
// reference, not the unused base class's stricter _because/_why/_concede).
package dialogue

import (
	"fmt"

	"github.com/arglab/defarg/internal/argument"
	"github.com/arglab/defarg/internal/label"
)

// Role is which side of the dialogue a player occupies. Grounded on
// common.py's PlayerType enum.
type Role int

const (
	Proponent Role = iota
	Opponent
)

func (r Role) String() string {
	if r == Proponent {
		return "proponent"
	}
	return "opponent"
}

// MoveKind identifies the kind of move played. Grounded on common.py's Move
// enum, extended with RETRACT and DISAGREE and dropping ASSERT, per the
// move kinds spec §4.7 names.
type MoveKind int

const (
	Claim MoveKind = iota
	Why
	Because
	Concede
	Retract
	Question
	Disagree
)

func (k MoveKind) String() string {
	switch k {
	case Claim:
		return "CLAIM"
	case Why:
		return "WHY"
	case Because:
		return "BECAUSE"
	case Concede:
		return "CONCEDE"
	case Retract:
		return "RETRACT"
	case Question:
		return "QUESTION"
	case Disagree:
		return "DISAGREE"
	default:
		return "UNKNOWN"
	}
}

// Player is the engine's view of a participant: its role and its
// commitment store. internal/player implements this; dialogue depends only
// on the interface so internal/player can depend on internal/dialogue
// without a cycle.
type Player interface {
	Role() Role
	Commitment() *label.Labelling
	UpdateCommitment(update *label.Labelling)
}

// Move is one played move: who played it, what kind, and the
// single-argument labelling it concerns.
type Move struct {
	Player Player
	Kind   MoveKind
	Arg    *label.Labelling
}

func (m Move) String() string {
	return fmt.Sprintf("%s: %s", m.Player.Role(), m.Kind)
}

// Dialogue is a discussion in progress: a background grounded labelling,
// two players, the move history, and an open-issues stack (newest last).
// Grounded on discussions.py's GroundedDiscussion.
type Dialogue struct {
	graph      *argument.Graph
	labelling  *label.Labelling
	proponent  Player
	opponent   Player
	moves      []Move
	openIssues []*label.Labelling
	relaxed    bool
}

// New creates a dialogue over g's grounded labelling lab. When relaxed is
// true, role and move-sequencing checks are skipped (off-line replay);
// content-validity checks and all bookkeeping still apply.
func New(g *argument.Graph, lab *label.Labelling, proponent, opponent Player, relaxed bool) *Dialogue {
	return &Dialogue{graph: g, labelling: lab, proponent: proponent, opponent: opponent, relaxed: relaxed}
}

func (d *Dialogue) Graph() *argument.Graph      { return d.graph }
func (d *Dialogue) Labelling() *label.Labelling { return d.labelling }
func (d *Dialogue) Proponent() Player           { return d.proponent }
func (d *Dialogue) Opponent() Player            { return d.opponent }
func (d *Dialogue) Relaxed() bool               { return d.relaxed }

// Moves returns every move played so far, in order.
func (d *Dialogue) Moves() []Move { return d.moves }

// LastMove returns the most recently played move, if any.
func (d *Dialogue) LastMove() (Move, bool) {
	if len(d.moves) == 0 {
		return Move{}, false
	}
	return d.moves[len(d.moves)-1], true
}

// OpenIssues returns the open-issue stack, oldest first.
func (d *Dialogue) OpenIssues() []*label.Labelling { return d.openIssues }

// LastOpenIssue returns the top of the open-issue stack, if any.
func (d *Dialogue) LastOpenIssue() (*label.Labelling, bool) {
	if len(d.openIssues) == 0 {
		return nil, false
	}
	return d.openIssues[len(d.openIssues)-1], true
}

// LabelFor returns the background labelling's label for a.
func (d *Dialogue) LabelFor(a *argument.Argument) string { return d.labelling.LabelFor(a) }

// FindArgument looks up an argument by name in the underlying graph.
func (d *Dialogue) FindArgument(name string) *argument.Argument { return d.graph.FindByName(name) }

// LastWhy returns the most recently played WHY move. Grounded on
// discussions.py's _last_why.
func (d *Dialogue) LastWhy() (Move, error) {
	for i := len(d.moves) - 1; i >= 0; i-- {
		if d.moves[i].Kind == Why {
			return d.moves[i], nil
		}
	}
	return Move{}, newIllegalArgument("WHY has not yet been played")
}

// LastBecause returns the most recently played BECAUSE or CLAIM move.
// Grounded on discussions.py's _last_because.
func (d *Dialogue) LastBecause() (Move, error) {
	for i := len(d.moves) - 1; i >= 0; i-- {
		if d.moves[i].Kind == Because || d.moves[i].Kind == Claim {
			return d.moves[i], nil
		}
	}
	return Move{}, newIllegalArgument("BECAUSE has not yet been played")
}

// IsOI reports whether arg is currently an open issue.
func (d *Dialogue) IsOI(arg *label.Labelling) bool {
	for _, oi := range d.openIssues {
		if issueEqual(oi, arg) {
			return true
		}
	}
	return false
}

// IsLastOI reports whether arg is the top of the open-issue stack.
func (d *Dialogue) IsLastOI(arg *label.Labelling) bool {
	top, ok := d.LastOpenIssue()
	return ok && issueEqual(top, arg)
}

// IsContradicting reports whether arg's argument already appears as an open
// issue under a different label.
func (d *Dialogue) IsContradicting(arg *label.Labelling) bool {
	argArg, argLab, ok := arg.SingleArgument()
	if !ok {
		return false
	}
	for _, oi := range d.openIssues {
		oiArg, oiLab, ok := oi.SingleArgument()
		if !ok {
			continue
		}
		if oiArg == argArg && oiLab != argLab {
			return true
		}
	}
	return false
}

func issueEqual(a, b *label.Labelling) bool {
	aArg, aLab, aOK := a.SingleArgument()
	bArg, bLab, bOK := b.SingleArgument()
	return aOK && bOK && aArg == bArg && aLab == bLab
}

// Move dispatches a single move by player, validating its preconditions for
// the dialogue's variant and, if legal, updating the open-issue stack,
// commitment store, and move history. The dialogue is left unchanged when
// the move is rejected.
func (d *Dialogue) Move(player Player, kind MoveKind, arg *label.Labelling) error {
	switch kind {
	case Claim:
		return d.claim(player, arg)
	case Why:
		return d.why(player, arg)
	case Because:
		return d.because(player, arg)
	case Concede:
		return d.concede(player, arg)
	case Retract:
		return d.retract(player, arg)
	case Question, Disagree:
		d.moves = append(d.moves, Move{Player: player, Kind: kind, Arg: arg})
		return nil
	default:
		return newIllegalMove("unknown move kind %v", kind)
	}
}

func (d *Dialogue) claim(player Player, arg *label.Labelling) error {
	if !d.relaxed && player.Role() != Proponent {
		return newNotYourMove("only the proponent can play CLAIM")
	}
	if !d.relaxed && len(d.moves) != 0 {
		return newIllegalMove("CLAIM can only be used at the beginning of the discussion")
	}
	player.UpdateCommitment(arg)
	d.openIssues = append(d.openIssues, arg)
	d.moves = append(d.moves, Move{Player: player, Kind: Claim, Arg: arg})
	return nil
}

func (d *Dialogue) why(player Player, arg *label.Labelling) error {
	if !d.relaxed && player.Role() != Opponent {
		return newNotYourMove("only the opponent can play WHY")
	}
	if d.IsContradicting(arg) {
		return newIllegalMove("this argument was already used but with a different label; use RETRACT to change it")
	}
	if !d.IsOI(arg) {
		d.openIssues = append(d.openIssues, arg)
	}
	d.moves = append(d.moves, Move{Player: player, Kind: Why, Arg: arg})
	return nil
}

func (d *Dialogue) because(player Player, arg *label.Labelling) error {
	if !d.relaxed && player.Role() != Proponent {
		return newNotYourMove("only the proponent can play BECAUSE")
	}
	if len(d.openIssues) == 0 {
		return newIllegalMove("there are no open issues, play CLAIM first")
	}
	if !d.relaxed {
		if last, ok := d.LastMove(); ok && last.Kind == Because {
			return newIllegalMove("cannot play BECAUSE twice in a row")
		}
	}
	if d.IsOI(arg) {
		return newIllegalMove("this argument is already an open issue")
	}
	if d.IsContradicting(arg) {
		return newIllegalMove("this argument was already used but with a different label; use RETRACT to change it")
	}
	d.openIssues = append(d.openIssues, arg)
	d.moves = append(d.moves, Move{Player: player, Kind: Because, Arg: arg})
	return nil
}

func (d *Dialogue) concede(player Player, arg *label.Labelling) error {
	if !d.relaxed && player.Role() != Opponent {
		return newNotYourMove("only the opponent can play CONCEDE")
	}
	if len(d.openIssues) == 0 {
		return newIllegalMove("there are no open issues")
	}
	idx, found := d.findOI(arg)
	if !found {
		return newIllegalMove("%s is not an open issue", describeLabelling(arg))
	}
	d.moves = append(d.moves, Move{Player: player, Kind: Concede, Arg: arg})
	d.openIssues = d.openIssues[:idx]
	return nil
}

func (d *Dialogue) retract(player Player, arg *label.Labelling) error {
	if !d.relaxed && player.Role() != Proponent {
		return newNotYourMove("only the proponent can play RETRACT")
	}
	idx, found := d.findOI(arg)
	if !found {
		return newIllegalMove("%s is not an open issue", describeLabelling(arg))
	}
	d.openIssues = append(d.openIssues[:idx], d.openIssues[idx+1:]...)
	d.moves = append(d.moves, Move{Player: player, Kind: Retract, Arg: arg})
	return nil
}

func describeLabelling(l *label.Labelling) string {
	if a, lab, ok := l.SingleArgument(); ok {
		return fmt.Sprintf("%s(%s)", lab, a.Name())
	}
	return "(empty)"
}

func (d *Dialogue) findOI(arg *label.Labelling) (int, bool) {
	for i, oi := range d.openIssues {
		if issueEqual(oi, arg) {
			return i, true
		}
	}
	return 0, false
}
