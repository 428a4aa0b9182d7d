// Package player implements the automated dialogue strategies of spec
// §4.8: a base player, a sceptical player, and a smart player, all sharing
// one commitment store and one set of reasoning helpers.
//
// Grounded on original_source/argumentation/players.py's Player,
// ScepticalPlayer, and SmartPlayer classes. Python relies on subclassing to
// override a handful of methods (_answer_because, _answer_why,
// _ask_why_or_concede) while inheriting the rest; Go has no virtual method
// dispatch, so the same override shape is built with function-valued
// fields instead (the same function-valued idiom internal/kb's Observer
// uses), letting a shared Player.MakeMove call through whichever hook
// the constructor installed.
package player

import (
	"github.com/arglab/defarg/internal/argument"
	"github.com/arglab/defarg/internal/dialogue"
	"github.com/arglab/defarg/internal/label"
)

type answerHook func(p *Player, d *dialogue.Dialogue, labArg *label.Labelling) (dialogue.MoveKind, *label.Labelling, error)
type askHook func(p *Player, d *dialogue.Dialogue) (dialogue.MoveKind, *label.Labelling, error)

// Player is a dialogue participant: a role, a commitment store, and the
// strategy hooks that decide how it answers each kind of move. It
// implements dialogue.Player.
type Player struct {
	role       dialogue.Role
	commitment *label.Labelling

	answerBecause   answerHook
	answerWhy       answerHook
	answerConcede   answerHook
	askWhyOrConcede askHook
}

func newBase(role dialogue.Role) *Player {
	return &Player{
		role:            role,
		commitment:      label.Empty(),
		answerBecause:   baseAnswerBecause,
		answerWhy:       baseAnswerWhy,
		answerConcede:   baseAnswerConcede,
		askWhyOrConcede: baseAskWhyOrConcede,
	}
}

// NewBasePlayer returns a player using the base strategy: concede when its
// own assessment of the challenged label agrees with the challenge,
// otherwise ask WHY; when challenged, cite the earliest-decided attacker
// not already committed to.
func NewBasePlayer(role dialogue.Role) *Player { return newBase(role) }

// NewScepticalPlayer returns a player that only concedes when the move is
// justified against its own commitment store, and keeps asking WHY
// otherwise.
func NewScepticalPlayer(role dialogue.Role) *Player {
	p := newBase(role)
	p.askWhyOrConcede = scepticalAskWhyOrConcede
	return p
}

// NewSmartPlayer returns a player that verifies a cited reason actually
// attacks the open issue and is justified by its own commitments before
// committing to it.
func NewSmartPlayer(role dialogue.Role) *Player {
	p := newBase(role)
	p.answerBecause = smartAnswerBecause
	p.answerWhy = smartAnswerWhy
	p.askWhyOrConcede = smartAskWhyOrConcede
	return p
}

func (p *Player) Role() dialogue.Role                 { return p.role }
func (p *Player) Commitment() *label.Labelling        { return p.commitment }
func (p *Player) UpdateCommitment(u *label.Labelling) { p.commitment.ApplyCommitment(u) }

// IsCommittedTo reports whether labArg is already implied by p's
// commitment store. Grounded on players.py's is_commited_to.
func (p *Player) IsCommittedTo(labArg *label.Labelling) bool {
	return labArg.SubLabelling(p.commitment)
}

func (p *Player) isCommittedToArgument(a *argument.Argument) bool {
	return p.commitment.IsIn(a) || p.commitment.IsOut(a) || p.commitment.IsUndec(a)
}

// MakeMove decides the player's response to the dialogue's last move, or
// (nil, nil) when there is no move to make (no moves played yet, the
// engine recorded a bookkeeping-only QUESTION/DISAGREE, or the discussion
// has nothing left to discuss). Grounded on players.py's Player.make_move.
func (p *Player) MakeMove(d *dialogue.Dialogue) (*dialogue.Move, error) {
	last, ok := d.LastMove()
	if !ok {
		return nil, nil
	}

	var kind dialogue.MoveKind
	var arg *label.Labelling
	var err error

	switch last.Kind {
	case dialogue.Claim, dialogue.Because:
		kind, arg, err = p.answerBecause(p, d, last.Arg)
	case dialogue.Why:
		kind, arg, err = p.answerWhy(p, d, last.Arg)
	case dialogue.Concede:
		kind, arg, err = p.answerConcede(p, d, last.Arg)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if arg == nil {
		return nil, nil
	}
	return &dialogue.Move{Player: p, Kind: kind, Arg: arg}, nil
}

// possibleAttackers returns the background-labelled attackers of labArg's
// argument, excluding ones UNDEC or sharing labArg's label. Grounded on
// players.py's _possible_attackers, dropping its already-an-open-issue
// exclusion: that filter was built on common.py's oi_to_args, which always
// returns the empty set (it intersects into a set that starts empty), so
// it never actually excluded anything in the original either.
func (p *Player) possibleAttackers(d *dialogue.Dialogue, labArg *label.Labelling) []*label.Labelling {
	a, lab, ok := labArg.SingleArgument()
	if !ok {
		return nil
	}
	var out []*label.Labelling
	for _, att := range a.AttackedBy() {
		attLab := d.LabelFor(att)
		if attLab == "UNDEC" || attLab == lab {
			continue
		}
		out = append(out, label.FromArgument(att, attLab))
	}
	return out
}

// giveReasonFor picks the earliest-decided possible attacker of labArg not
// already part of p's commitment. Grounded on players.py's
// _give_reason_for.
func (p *Player) giveReasonFor(d *dialogue.Dialogue, labArg *label.Labelling) (*label.Labelling, error) {
	candidates := p.possibleAttackers(d, labArg)
	filtered := filterCommitted(p, candidates)
	best, ok := label.FindLowestStep(d.Labelling(), filtered)
	if !ok {
		return nil, &dialogue.IllegalArgument{Message: "no attacker available to cite"}
	}
	return best, nil
}

func filterCommitted(p *Player, candidates []*label.Labelling) []*label.Labelling {
	var out []*label.Labelling
	for _, c := range candidates {
		a, _, ok := c.SingleArgument()
		if ok && p.isCommittedToArgument(a) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// isReasonFor reports whether reason is both justified by p's commitment
// and an actual attacker of issue's argument. Grounded on players.py's
// _is_reason_for.
func (p *Player) isReasonFor(reason, issue *label.Labelling) bool {
	if !label.IsJustified(reason, p.commitment) {
		return false
	}
	reasonArg, _, ok1 := reason.SingleArgument()
	issueArg, _, ok2 := issue.SingleArgument()
	if !ok1 || !ok2 {
		return false
	}
	for _, att := range issueArg.AttackedBy() {
		if att == reasonArg {
			return true
		}
	}
	return false
}
