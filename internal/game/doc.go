// Package game defines the rules engines for the built-in two-player games.
//
// A [Game] is a stateless ruleset; calling [Game.NewRound] binds it to a
// pair of actors and yields a [Round], which owns whatever running state the
// game carries (remaining energy in Tug of War, nothing in the Prisoner's
// Dilemma). Rounds are independent: one Game value can referee any number of
// rounds without cross-talk, which is what makes the games testable in
// isolation.
//
// Every failure coming out of a Round is a [*SideError] naming the player
// that caused it, whether the underlying cause is an I/O error from the
// actor or a [ErrProtocolViolation] from the game rules. Within every step
// the left player is always exchanged with before the right one; the
// ordering is deterministic and part of the wire contract.
package game
