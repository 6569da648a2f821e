package robot

import (
	"testing"

	"github.com/haigo/gongo/internal/engine"
	"github.com/haigo/gongo/internal/gologger"
)

func TestPlayGameReachesDoublePassOrCap(t *testing.T) {
	r, err := New(Config{BoardSize: 5, Depth: 0, MaxMoves: 40, Log: gologger.Discard()})
	if err != nil {
		t.Fatal(err)
	}
	moves, err := r.PlayGame()
	if err != nil {
		t.Fatal(err)
	}
	if moves == 0 {
		t.Error("expected at least one move to be played")
	}
	if moves > 40 {
		t.Errorf("expected PlayGame to respect MaxMoves, got %d moves", moves)
	}
}

func TestPlayGameWithoutBookNeverCallsLookup(t *testing.T) {
	r, err := New(Config{BoardSize: 5, Depth: 0, MaxMoves: 4, Log: gologger.Discard()})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.bookMove(engine.Black); ok {
		t.Error("expected bookMove to report no move when no book is configured")
	}
	if _, err := r.PlayGame(); err != nil {
		t.Fatal(err)
	}
}
