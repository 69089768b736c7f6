package match_test

import (
	"errors"
	"testing"

	"github.com/Iron-Ham/arbitro/internal/actor"
	"github.com/Iron-Ham/arbitro/internal/game"
	"github.com/Iron-Ham/arbitro/internal/logging"
	"github.com/Iron-Ham/arbitro/internal/match"
)

// titForTat answers with whatever it was last told, starting from a fixed
// first choice. The first Say it hears is the setup line and is ignored.
type titForTat struct {
	started    bool
	nextChoice string
}

func newTitForTat(firstChoice string) *titForTat {
	return &titForTat{nextChoice: firstChoice}
}

func (p *titForTat) Ask() (string, error) {
	return p.nextChoice, nil
}

func (p *titForTat) Say(line string) error {
	if !p.started {
		p.started = true
		return nil
	}
	p.nextChoice = line
	return nil
}

// failingActor fails every interaction with a fixed error.
type failingActor struct {
	err error
}

func (a *failingActor) Ask() (string, error) { return "", a.err }
func (a *failingActor) Say(string) error     { return a.err }

func TestPlayAccumulatesScores(t *testing.T) {
	// Two tit-for-tat players starting on opposite choices trade betrayals:
	//   LEFT | RIGHT |
	// -------+-------|
	//    C   |   D   |   +10    0
	//    D   |   C   |     0  +10
	// ----------------------------
	//                    +10  +10
	left := newTitForTat("COOPERATE")
	right := newTitForTat("DEFECT")
	g := game.NewDilemma(1, 10, 5)

	res, err := match.New(logging.Nop()).Play(g, left, right, 2)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if res.Left != 10 || res.Right != 10 {
		t.Errorf("Play = (%d, %d), want (10, 10)", res.Left, res.Right)
	}
}

func TestPlayZeroIterations(t *testing.T) {
	left := newTitForTat("COOPERATE")
	right := newTitForTat("COOPERATE")
	g := game.NewDilemma(1, 10, 5)

	res, err := match.New(logging.Nop()).Play(g, left, right, 0)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if res.Left != 0 || res.Right != 0 {
		t.Errorf("Play = (%d, %d), want (0, 0)", res.Left, res.Right)
	}
}

func TestPlayPropagatesLeftFailure(t *testing.T) {
	left := &failingActor{err: actor.ErrReadTimeout}
	right := newTitForTat("DEFECT")
	g := game.NewDilemma(1, 10, 5)

	_, err := match.New(logging.Nop()).Play(g, left, right, 2)
	var side *game.SideError
	if !errors.As(err, &side) {
		t.Fatalf("Play error = %v, want *game.SideError", err)
	}
	if side.Side != game.SideLeft {
		t.Errorf("attributed side = %v, want left", side.Side)
	}
	if !errors.Is(err, actor.ErrReadTimeout) {
		t.Errorf("error = %v, want wrapped ErrReadTimeout", err)
	}
}

func TestPlayPropagatesRightFailure(t *testing.T) {
	left := newTitForTat("COOPERATE")
	right := newTitForTat("Sth")
	g := game.NewDilemma(1, 10, 5)

	_, err := match.New(logging.Nop()).Play(g, left, right, 2)
	var side *game.SideError
	if !errors.As(err, &side) {
		t.Fatalf("Play error = %v, want *game.SideError", err)
	}
	if side.Side != game.SideRight {
		t.Errorf("attributed side = %v, want right", side.Side)
	}
}

// midGameFailer plays valid moves, then breaks the protocol on a chosen
// iteration.
type midGameFailer struct {
	moves []string
	next  int
}

func (a *midGameFailer) Ask() (string, error) {
	move := a.moves[a.next]
	a.next++
	return move, nil
}

func (a *midGameFailer) Say(string) error { return nil }

func TestPlayReturnsNoPartialScore(t *testing.T) {
	// Left scores in the first iteration, then breaks the protocol. The
	// accumulated score from iteration one must not leak out.
	left := &midGameFailer{moves: []string{"DEFECT", "garbage"}}
	right := &midGameFailer{moves: []string{"COOPERATE", "COOPERATE"}}
	g := game.NewDilemma(1, 10, 5)

	res, err := match.New(logging.Nop()).Play(g, left, right, 2)
	if err == nil {
		t.Fatal("Play succeeded, want error")
	}
	if res.Left != 0 || res.Right != 0 {
		t.Errorf("failed Play returned partial scores (%d, %d), want (0, 0)", res.Left, res.Right)
	}
}

func TestPlayTugOfWar(t *testing.T) {
	// Constant pullers: left always spends 2, right always 1.
	left := &midGameFailer{moves: []string{"2", "2", "2"}}
	right := &midGameFailer{moves: []string{"1", "1", "1"}}
	g := game.NewTugOfWar(10)

	res, err := match.New(logging.Nop()).Play(g, left, right, 3)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if res.Left != 3 || res.Right != 0 {
		t.Errorf("Play = (%d, %d), want (3, 0)", res.Left, res.Right)
	}
}
