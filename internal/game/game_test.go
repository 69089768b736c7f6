package game

import (
	"errors"
	"testing"

	"github.com/Iron-Ham/arbitro/internal/actor"
)

func TestSideString(t *testing.T) {
	if got := SideLeft.String(); got != "left" {
		t.Errorf("SideLeft.String() = %q, want %q", got, "left")
	}
	if got := SideRight.String(); got != "right" {
		t.Errorf("SideRight.String() = %q, want %q", got, "right")
	}
}

func TestSideErrorWrapsCause(t *testing.T) {
	err := fail(SideRight, actor.ErrReadTimeout)

	if !errors.Is(err, actor.ErrReadTimeout) {
		t.Errorf("errors.Is(err, ErrReadTimeout) = false, want true")
	}

	var side *SideError
	if !errors.As(err, &side) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if side.Side != SideRight {
		t.Errorf("side = %v, want right", side.Side)
	}
	want := "right player: read timed out"
	if side.Error() != want {
		t.Errorf("Error() = %q, want %q", side.Error(), want)
	}
}
