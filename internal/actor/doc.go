// Package actor turns an external program into a line-oriented
// conversational partner with bounded read latency.
//
// An actor is anything that can answer [Actor.Ask] and accept [Actor.Say].
// The only production implementation is [Subprocess], which spawns a child
// process and talks to it over its stdin/stdout pipes. Game logic depends
// only on the [Actor] interface, so tests substitute in-memory fakes.
//
// # Read timeout
//
// A misbehaving or hung child must not stall the referee forever, so every
// Ask is bounded by a fixed timeout (default 200ms). The timeout is scoped
// to a single call: a line that arrives after an Ask has timed out is
// delivered intact to the next Ask. In practice a child that stops
// responding keeps timing out, and callers treat the first timeout as fatal
// to the current game.
//
// # Lifecycle
//
//	player, err := actor.New("./bot")
//	if err != nil {
//	    return err
//	}
//	defer player.Close()
//
//	if err := player.Say("10"); err != nil { ... }
//	move, err := player.Ask()
//
// Close releases the referee-owned pipe handles. The child is never signaled
// or killed; losing its stdin is how it learns the game is over.
package actor
