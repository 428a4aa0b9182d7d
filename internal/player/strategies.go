package player

import (
	"github.com/arglab/defarg/internal/dialogue"
	"github.com/arglab/defarg/internal/label"
)

// baseAnswerBecause reacts to CLAIM or BECAUSE by asking whether to
// concede or challenge the open issue. Grounded on players.py's
// Player._answer_because.
func baseAnswerBecause(p *Player, d *dialogue.Dialogue, _ *label.Labelling) (dialogue.MoveKind, *label.Labelling, error) {
	return p.askWhyOrConcede(p, d)
}

// baseAnswerWhy replies to a challenge by citing the earliest-decided
// attacker of the open issue. Grounded on players.py's Player._answer_why.
func baseAnswerWhy(p *Player, d *dialogue.Dialogue, _ *label.Labelling) (dialogue.MoveKind, *label.Labelling, error) {
	loi, ok := d.LastOpenIssue()
	if !ok {
		return 0, nil, nil
	}
	attacker, err := p.giveReasonFor(d, loi)
	if err != nil {
		return 0, nil, err
	}
	p.UpdateCommitment(loi)
	return dialogue.Because, attacker, nil
}

// baseAnswerConcede reacts to a CONCEDE: if the discussion has more open
// issues, it resumes arguing over them, otherwise there is no further
// move. Grounded on players.py's Player._answer_concede.
func baseAnswerConcede(p *Player, d *dialogue.Dialogue, _ *label.Labelling) (dialogue.MoveKind, *label.Labelling, error) {
	if last, ok := d.LastMove(); ok && last.Player == p {
		return 0, nil, nil
	}
	if len(d.OpenIssues()) == 0 {
		return 0, nil, nil
	}
	return p.askWhyOrConcede(p, d)
}

// baseAskWhyOrConcede concedes the last open issue when its claimed label
// matches the background labelling's assessment, otherwise challenges it.
// Grounded on players.py's Player._ask_why_or_concede.
func baseAskWhyOrConcede(p *Player, d *dialogue.Dialogue) (dialogue.MoveKind, *label.Labelling, error) {
	loi, ok := d.LastOpenIssue()
	if !ok {
		return 0, nil, nil
	}
	a, lab, ok := loi.SingleArgument()
	if ok && lab == d.LabelFor(a) {
		p.UpdateCommitment(loi)
		return dialogue.Concede, loi, nil
	}
	return dialogue.Why, loi, nil
}

// scepticalAskWhyOrConcede concedes only when the last open issue is
// already justified by p's own commitment store, never by comparing to the
// background labelling. Grounded on players.py's
// ScepticalPlayer._ask_why_or_concede.
func scepticalAskWhyOrConcede(p *Player, d *dialogue.Dialogue) (dialogue.MoveKind, *label.Labelling, error) {
	loi, ok := d.LastOpenIssue()
	if !ok {
		return 0, nil, nil
	}
	if label.IsJustified(loi, p.commitment) {
		p.UpdateCommitment(loi)
		return dialogue.Concede, loi, nil
	}
	return dialogue.Why, loi, nil
}

// smartAnswerBecause accepts a cited reason only after verifying it is a
// valid attacker of the issue it was cited to defend, then resumes the
// usual ask/concede decision over the newly opened issue (the reason
// itself). An UNDEC defended issue is always conceded outright. Grounded
// on players.py's SmartPlayer._answer_because, with one correction: by the
// time make_move calls this, BECAUSE has already pushed labArg onto the
// open-issues stack, so open_issues[-1] in the original is labArg itself —
// checking "is labArg a reason for open_issues[-1]" degenerates to asking
// whether labArg attacks itself, which is never true. The issue labArg was
// actually cited to defend is one level down the stack, and that is what
// is checked here.
func smartAnswerBecause(p *Player, d *dialogue.Dialogue, labArg *label.Labelling) (dialogue.MoveKind, *label.Labelling, error) {
	issues := d.OpenIssues()
	if len(issues) == 0 {
		return 0, nil, nil
	}
	if len(issues) >= 2 {
		defended := issues[len(issues)-2]
		if _, lab, ok := defended.SingleArgument(); ok && lab == "UNDEC" {
			return dialogue.Concede, defended, nil
		}
		if p.isReasonFor(labArg, defended) {
			p.UpdateCommitment(labArg)
		}
	}
	return p.askWhyOrConcede(p, d)
}

// smartAnswerWhy cites the earliest-decided possible attacker, or an empty
// labelling when none exists. Grounded on players.py's
// SmartPlayer._answer_why.
func smartAnswerWhy(p *Player, d *dialogue.Dialogue, _ *label.Labelling) (dialogue.MoveKind, *label.Labelling, error) {
	loi, ok := d.LastOpenIssue()
	if !ok {
		return 0, nil, nil
	}
	attackers := p.possibleAttackers(d, loi)
	if len(attackers) == 0 {
		return dialogue.Because, label.Empty(), nil
	}
	best, _ := label.FindLowestStep(d.Labelling(), attackers)
	p.UpdateCommitment(best)
	return dialogue.Because, best, nil
}

// smartAskWhyOrConcede concedes when the open issue is justified by p's
// commitment; otherwise it picks the earliest-decided uncommitted possible
// attacker and challenges it, unless that attacker has no attackers of its
// own (already settled), in which case it concedes the open issue instead.
// Grounded on players.py's SmartPlayer._ask_why_or_concede, adapted to
// concede (rather than propagate an unhandled exception, as the original
// does) when no candidate attacker remains to challenge.
func smartAskWhyOrConcede(p *Player, d *dialogue.Dialogue) (dialogue.MoveKind, *label.Labelling, error) {
	loi, ok := d.LastOpenIssue()
	if !ok {
		return 0, nil, nil
	}
	if label.IsJustified(loi, p.commitment) {
		p.UpdateCommitment(loi)
		return dialogue.Concede, loi, nil
	}
	candidates := p.possibleAttackers(d, loi)
	filtered := filterCommitted(p, candidates)
	attacker, ok := label.FindLowestStep(d.Labelling(), filtered)
	if !ok {
		p.UpdateCommitment(loi)
		return dialogue.Concede, loi, nil
	}
	attArg, _, _ := attacker.SingleArgument()
	if len(attArg.AttackedBy()) == 0 {
		p.UpdateCommitment(loi)
		return dialogue.Concede, loi, nil
	}
	return dialogue.Why, attacker, nil
}
