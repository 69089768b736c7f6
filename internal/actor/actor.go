package actor

import "errors"

// Common errors returned by Actor implementations.
var (
	// ErrSpawn is returned when the child process cannot be started.
	ErrSpawn = errors.New("failed to spawn program")

	// ErrScriptNotFound is returned by NewScript when the script path does
	// not exist. It is detected before any process is spawned.
	ErrScriptNotFound = errors.New("script not found")

	// ErrReadTimeout is returned by Ask when no full line arrives within the
	// configured timeout.
	ErrReadTimeout = errors.New("read timed out")

	// ErrUnexpectedEOF is returned by Ask when the child closes its output
	// before sending a line.
	ErrUnexpectedEOF = errors.New("unexpected end of output")

	// ErrWrite is returned by Say when the child's input pipe is no longer
	// writable.
	ErrWrite = errors.New("write to program failed")
)

// Actor is a conversational participant in a game.
//
// Ask blocks until the actor produces a full line (returned without its
// trailing newline) or fails. Say delivers one line to the actor. Both games
// and the round driver program against this interface only; whether the
// other end is a real child process or an in-memory fake is irrelevant to
// them.
type Actor interface {
	Ask() (string, error)
	Say(line string) error
}
