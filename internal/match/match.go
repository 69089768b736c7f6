// Package match drives one round of a game between two actors: setup, the
// requested number of iterations, score accumulation, and first-failure
// propagation. The driver is generic over both the game and the actors; it
// knows nothing about any particular ruleset or transport.
package match

import (
	"github.com/Iron-Ham/arbitro/internal/actor"
	"github.com/Iron-Ham/arbitro/internal/game"
	"github.com/Iron-Ham/arbitro/internal/logging"
)

// Result holds both players' final scores for a completed round.
type Result struct {
	Left  game.Score
	Right game.Score
}

// Driver runs rounds and traces their progress.
type Driver struct {
	log *logging.Logger
}

// New creates a Driver that traces onto log.
func New(log *logging.Logger) *Driver {
	return &Driver{log: log}
}

// Play runs one round of g between left and right: setup once, then exactly
// iters iterations, summing the per-iteration scores.
//
// Any failure from the game is terminal: the round stops immediately, no
// partial score is returned, and the error reaches the caller as a
// *game.SideError naming the player that caused it. The driver never
// retries and never interacts with the actors after a failure.
func (d *Driver) Play(g game.Game, left, right actor.Actor, iters int) (Result, error) {
	log := d.log.WithGame(g.Name())

	round := g.NewRound(left, right)

	log.Debug("round setup", "iterations", iters)
	if err := round.Setup(iters); err != nil {
		return Result{}, err
	}

	var total Result
	for i := 0; i < iters; i++ {
		l, r, err := round.Iterate()
		if err != nil {
			return Result{}, err
		}
		total.Left += l
		total.Right += r
		log.Debug("iteration scored",
			"iteration", i,
			"left", l, "right", r,
			"total_left", total.Left, "total_right", total.Right)
	}

	log.Debug("round finished", "left", total.Left, "right", total.Right)
	return total, nil
}
