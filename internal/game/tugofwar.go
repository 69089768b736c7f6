package game

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/arbitro/internal/actor"
)

// Energy is a player's remaining resource budget in Tug of War. It only ever
// decreases and is never allowed below zero.
type Energy uint

// TugOfWar is a repeated bidding game over a fixed energy budget.
//
// Both players start with the same energy. Each iteration both choose how
// much to spend; the strictly larger spend earns 1 point, a tie earns
// nothing. A player may never spend more than it has left, and energy is
// never replenished, so the whole game is a budgeting problem across the
// announced number of iterations.
type TugOfWar struct {
	Energy Energy
}

// NewTugOfWar creates a Tug of War with the given starting energy per side.
func NewTugOfWar(energy Energy) *TugOfWar {
	return &TugOfWar{Energy: energy}
}

// Name returns the game identifier.
func (g *TugOfWar) Name() string { return "tug_of_war" }

// NewRound binds the ruleset to a pair of actors, giving each side its own
// energy pool.
func (g *TugOfWar) NewRound(left, right actor.Actor) Round {
	return &tugRound{
		left:  puller{side: SideLeft, actor: left, energy: g.Energy},
		right: puller{side: SideRight, actor: right, energy: g.Energy},
	}
}

type tugRound struct {
	left, right puller
}

// Setup announces the starting energy and the iteration count to both
// players, two separate lines each.
func (r *tugRound) Setup(iters int) error {
	if err := r.left.setup(iters); err != nil {
		return err
	}
	return r.right.setup(iters)
}

// Iterate collects both spends, cross-notifies them, and awards 1 point to
// the strictly larger spend.
func (r *tugRound) Iterate() (Score, Score, error) {
	lSpent, err := r.left.pull()
	if err != nil {
		return 0, 0, err
	}
	rSpent, err := r.right.pull()
	if err != nil {
		return 0, 0, err
	}

	if err := r.left.notify(rSpent); err != nil {
		return 0, 0, err
	}
	if err := r.right.notify(lSpent); err != nil {
		return 0, 0, err
	}

	switch {
	case lSpent > rSpent:
		return 1, 0, nil
	case lSpent < rSpent:
		return 0, 1, nil
	default:
		return 0, 0, nil
	}
}

// puller tracks one side's remaining energy and wraps every failure with
// that side.
type puller struct {
	side   Side
	actor  actor.Actor
	energy Energy
}

func (p *puller) setup(iters int) error {
	if err := p.actor.Say(strconv.FormatUint(uint64(p.energy), 10)); err != nil {
		return fail(p.side, err)
	}
	if err := p.actor.Say(strconv.Itoa(iters)); err != nil {
		return fail(p.side, err)
	}
	return nil
}

// pull asks the player for its spend this iteration, validates it against
// the remaining energy, and deducts it.
func (p *puller) pull() (Energy, error) {
	line, err := p.actor.Ask()
	if err != nil {
		return 0, fail(p.side, err)
	}
	spent, err := strconv.ParseUint(line, 10, 32)
	if err != nil {
		return 0, fail(p.side, fmt.Errorf("%w: invalid energy spend %q: %v", ErrProtocolViolation, line, err))
	}
	if Energy(spent) > p.energy {
		return 0, fail(p.side, fmt.Errorf("%w: expected spend <= energy, got %d > %d",
			ErrProtocolViolation, spent, p.energy))
	}
	p.energy -= Energy(spent)
	return Energy(spent), nil
}

func (p *puller) notify(opponentSpent Energy) error {
	if err := p.actor.Say(strconv.FormatUint(uint64(opponentSpent), 10)); err != nil {
		return fail(p.side, err)
	}
	return nil
}
