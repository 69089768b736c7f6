package game

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/arbitro/internal/actor"
)

// Wire literals for Prisoner's Dilemma decisions.
const (
	tokenCooperate = "COOPERATE"
	tokenDefect    = "DEFECT"
)

// Decision is one player's choice in a Prisoner's Dilemma iteration.
type Decision int

const (
	Cooperate Decision = iota
	Defect
)

// ParseDecision parses a wire literal into a Decision. Anything other than
// the two recognized literals is a protocol violation.
func ParseDecision(s string) (Decision, error) {
	switch s {
	case tokenCooperate:
		return Cooperate, nil
	case tokenDefect:
		return Defect, nil
	default:
		return 0, fmt.Errorf("%w: unknown decision %q, expected one of [%s, %s]",
			ErrProtocolViolation, s, tokenCooperate, tokenDefect)
	}
}

// String returns the wire literal for the decision.
func (d Decision) String() string {
	if d == Defect {
		return tokenDefect
	}
	return tokenCooperate
}

// Dilemma is the iterated Prisoner's Dilemma.
//
// Each iteration both players simultaneously choose to cooperate or defect,
// then each is told the opponent's choice. Payoffs per iteration: both
// cooperate earns each BothCooperate, both defect earns each BothDefect, and
// a one-sided betrayal earns the defector BetrayerReward while the
// cooperator gets nothing. Telling each player the opponent's previous
// choice is what makes retaliatory strategies like tit-for-tat possible;
// the referee itself carries no memory between iterations.
type Dilemma struct {
	BothDefect     Score
	BetrayerReward Score
	BothCooperate  Score
}

// NewDilemma creates a Prisoner's Dilemma with the given payoffs.
func NewDilemma(bothDefect, betrayerReward, bothCooperate Score) *Dilemma {
	return &Dilemma{
		BothDefect:     bothDefect,
		BetrayerReward: betrayerReward,
		BothCooperate:  bothCooperate,
	}
}

// Name returns the game identifier.
func (g *Dilemma) Name() string { return "dilemma" }

// NewRound binds the payoff matrix to a pair of actors.
func (g *Dilemma) NewRound(left, right actor.Actor) Round {
	return &dilemmaRound{game: g, left: left, right: right}
}

type dilemmaRound struct {
	game        *Dilemma
	left, right actor.Actor
}

// Setup announces the iteration count to both players.
func (r *dilemmaRound) Setup(iters int) error {
	if err := r.left.Say(strconv.Itoa(iters)); err != nil {
		return fail(SideLeft, err)
	}
	if err := r.right.Say(strconv.Itoa(iters)); err != nil {
		return fail(SideRight, err)
	}
	return nil
}

// Iterate collects both decisions, cross-notifies them, and scores by the
// payoff matrix. Each player learns only the opponent's choice, never its
// own echoed back.
func (r *dilemmaRound) Iterate() (Score, Score, error) {
	lDecision, err := r.decision(SideLeft, r.left)
	if err != nil {
		return 0, 0, err
	}
	rDecision, err := r.decision(SideRight, r.right)
	if err != nil {
		return 0, 0, err
	}

	if err := r.left.Say(rDecision.String()); err != nil {
		return 0, 0, fail(SideLeft, err)
	}
	if err := r.right.Say(lDecision.String()); err != nil {
		return 0, 0, fail(SideRight, err)
	}

	switch {
	case lDecision == Cooperate && rDecision == Cooperate:
		return r.game.BothCooperate, r.game.BothCooperate, nil
	case lDecision == Defect && rDecision == Defect:
		return r.game.BothDefect, r.game.BothDefect, nil
	case lDecision == Defect:
		return r.game.BetrayerReward, 0, nil
	default:
		return 0, r.game.BetrayerReward, nil
	}
}

func (r *dilemmaRound) decision(side Side, a actor.Actor) (Decision, error) {
	line, err := a.Ask()
	if err != nil {
		return 0, fail(side, err)
	}
	d, err := ParseDecision(line)
	if err != nil {
		return 0, fail(side, err)
	}
	return d, nil
}
