package game

import (
	"errors"
	"fmt"

	"github.com/Iron-Ham/arbitro/internal/actor"
)

// Score is a per-player point accumulator, summed across iterations.
type Score int

// ErrProtocolViolation is returned when a player sends a line the game
// cannot accept: an unknown token, an unparsable number, or a move the
// rules forbid.
var ErrProtocolViolation = errors.New("protocol violation")

// Side identifies which of the two players an error is attributed to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// SideError attributes a failure to the player that caused it. It wraps the
// underlying cause, so errors.Is still matches actor sentinels and
// ErrProtocolViolation through it.
type SideError struct {
	Side Side
	Err  error
}

// Error returns the formatted error message.
func (e *SideError) Error() string {
	return fmt.Sprintf("%s player: %v", e.Side, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SideError) Unwrap() error {
	return e.Err
}

// fail wraps err with the side it is attributed to.
func fail(side Side, err error) error {
	return &SideError{Side: side, Err: err}
}

// Round is one playthrough of a game between two fixed actors. Setup runs
// once and announces the round parameters; Iterate runs one exchange of
// moves and returns both players' scores for it.
type Round interface {
	Setup(iters int) error
	Iterate() (Score, Score, error)
}

// Game is a playable ruleset. Implementations hold configuration only;
// per-round state lives in the Round returned by NewRound.
type Game interface {
	// Name is the identifier the CLI selects the game by.
	Name() string

	// NewRound binds the ruleset to a pair of actors. The round borrows the
	// actors for its duration and never owns them.
	NewRound(left, right actor.Actor) Round
}
