package actor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// DefaultReadTimeout bounds a single Ask on a Subprocess actor.
const DefaultReadTimeout = 200 * time.Millisecond

// readResult carries one line (or the terminal error) from the reader
// goroutine to Ask.
type readResult struct {
	line string
	err  error
}

// Subprocess is an Actor backed by a spawned child process. The referee owns
// the child's stdin and stdout pipes; stderr is discarded. Ask and Say must
// not be called concurrently — the protocol is strictly alternating, so
// nothing in the referee ever does.
type Subprocess struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	lines   chan readResult
	done    chan struct{}
	timeout time.Duration
	closed  bool
}

// New spawns the program at path as a game actor with the default read
// timeout. Extra arguments are passed through to the program.
func New(path string, args ...string) (*Subprocess, error) {
	return NewWithTimeout(DefaultReadTimeout, path, args...)
}

// NewScript spawns an interpreter with a script path as its first argument,
// e.g. NewScript("python3", "bots/titfortat.py"). Unlike a missing
// executable, a missing script would only surface as garbage on the
// interpreter's stdout, so the script path is checked before spawning.
func NewScript(interpreter, script string, args ...string) (*Subprocess, error) {
	if _, err := os.Stat(script); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, script)
	}
	return NewWithTimeout(DefaultReadTimeout, interpreter, append([]string{script}, args...)...)
}

// NewWithTimeout spawns the program with an explicit per-Ask read timeout.
func NewWithTimeout(timeout time.Duration, path string, args ...string) (*Subprocess, error) {
	cmd := exec.Command(path, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpawn, path, err)
	}

	s := &Subprocess{
		cmd:     cmd,
		stdin:   stdin,
		lines:   make(chan readResult),
		done:    make(chan struct{}),
		timeout: timeout,
	}
	go s.readLoop(stdout)
	return s, nil
}

// readLoop is the only reader of the child's stdout. Lines are handed to Ask
// through an unbuffered channel, so a line that arrives after an Ask timed
// out stays queued for the next Ask instead of being lost. After EOF the
// loop reaps the child. Waiting also releases the pipe handles owned by
// exec.Cmd.
func (s *Subprocess) readLoop(stdout io.Reader) {
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		select {
		case s.lines <- readResult{line: scanner.Text()}:
		case <-s.done:
			_ = s.cmd.Wait()
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case s.lines <- readResult{err: fmt.Errorf("%w: %v", ErrUnexpectedEOF, err)}:
		case <-s.done:
		}
	}
	close(s.lines)
	_ = s.cmd.Wait()
}

// Ask waits for the next full line from the child, with the trailing newline
// stripped. It fails with ErrReadTimeout if the child does not produce a
// line in time and ErrUnexpectedEOF if the child closed its output.
func (s *Subprocess) Ask() (string, error) {
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case res, ok := <-s.lines:
		if !ok {
			return "", ErrUnexpectedEOF
		}
		if res.err != nil {
			return "", res.err
		}
		return res.line, nil
	case <-timer.C:
		return "", fmt.Errorf("%w after %s", ErrReadTimeout, s.timeout)
	}
}

// Say writes the line plus a newline to the child's stdin. The pipe is
// written directly, so nothing can sit unflushed while the child blocks on
// its own read.
func (s *Subprocess) Say(line string) error {
	if _, err := io.WriteString(s.stdin, line+"\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Close releases the referee's side of the child's stdin. The child is not
// signaled; once its input is gone it is expected to exit on its own, at
// which point the reader goroutine reaps it. Close is safe to call more
// than once.
func (s *Subprocess) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	return s.stdin.Close()
}
