package engine

import "testing"

func TestNewEngineDefaults(t *testing.T) {
	e, err := NewEngine(9)
	if err != nil {
		t.Fatal(err)
	}
	if e.BoardSize() != 9 {
		t.Errorf("expected board size 9, got %d", e.BoardSize())
	}
	if e.SearchDepth() != 2 {
		t.Errorf("expected default search depth 2, got %d", e.SearchDepth())
	}
	if e.Komi() != 0 {
		t.Errorf("expected default komi 0, got %v", e.Komi())
	}
}

func TestEngineSetBoardSizeResetsHistory(t *testing.T) {
	e, _ := NewEngine(9)
	if err := e.Play(Black, Point{I: 4, J: 4}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetBoardSize(13); err != nil {
		t.Fatal(err)
	}
	if e.BoardSize() != 13 {
		t.Errorf("expected board size 13, got %d", e.BoardSize())
	}
	if e.Moves().History().Len() != 0 {
		t.Error("expected boardsize to reset move history")
	}
}

func TestEngineSetSearchDepthBounds(t *testing.T) {
	e, _ := NewEngine(9)
	if err := e.SetSearchDepth(-1); err == nil {
		t.Error("expected an error for a negative depth")
	}
	if err := e.SetSearchDepth(MaxSearchDepth + 1); err == nil {
		t.Error("expected an error for a depth above MaxSearchDepth")
	}
	if err := e.SetSearchDepth(MaxSearchDepth); err != nil {
		t.Errorf("expected MaxSearchDepth to be accepted, got %v", err)
	}
}

func TestFixedHandicapRejectsSmallBoards(t *testing.T) {
	e, _ := NewEngine(6)
	if _, err := e.FixedHandicap(2); err == nil {
		t.Error("expected an error for handicap on a 6x6 board")
	}
}

func TestFixedHandicapRejectsNonEmptyBoard(t *testing.T) {
	e, _ := NewEngine(19)
	if err := e.Play(Black, Point{I: 4, J: 4}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.FixedHandicap(2); err == nil {
		t.Error("expected an error for handicap on a non-empty board")
	}
}

func TestFixedHandicapTwoStones(t *testing.T) {
	e, _ := NewEngine(19)
	points, err := e.FixedHandicap(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 handicap stones, got %d", len(points))
	}
	want := []Point{{I: 15, J: 15}, {I: 3, J: 3}}
	for i, p := range want {
		if points[i] != p {
			t.Errorf("stone %d: expected %v, got %v", i, p, points[i])
		}
		if got := e.Board().GetStone(p.I, p.J); got != Black {
			t.Errorf("expected a black stone at %v, got %v", p, got)
		}
	}
}

func TestFixedHandicapEvenBoardCapsAtFour(t *testing.T) {
	e, _ := NewEngine(8)
	if _, err := e.FixedHandicap(5); err == nil {
		t.Error("expected handicap 5 to be rejected on an 8x8 (even) board")
	}
	if _, err := e.FixedHandicap(4); err != nil {
		t.Errorf("expected handicap 4 to be accepted on an 8x8 board, got %v", err)
	}
}

func TestFixedHandicapSizeSevenCapsAtFour(t *testing.T) {
	e, _ := NewEngine(7)
	if _, err := e.FixedHandicap(5); err == nil {
		t.Error("expected handicap 5 to be rejected on a 7x7 board")
	}
}

func TestFixedHandicapNineStones(t *testing.T) {
	e, _ := NewEngine(19)
	points, err := e.FixedHandicap(9)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 9 {
		t.Fatalf("expected 9 handicap stones, got %d", len(points))
	}
	if points[4] != (Point{I: 9, J: 9}) {
		t.Errorf("expected the 5th handicap stone at tengen, got %v", points[4])
	}
}

func TestEngineGenMoveCommitsChosenMove(t *testing.T) {
	e, _ := NewEngine(5)
	if err := e.SetSearchDepth(0); err != nil {
		t.Fatal(err)
	}
	point, _, err := e.GenMove(Black)
	if err != nil {
		t.Fatal(err)
	}
	if point.IsPass() {
		t.Fatal("expected a real move on an empty 5x5 board")
	}
	if got := e.Board().GetStone(point.I, point.J); got != Black {
		t.Errorf("expected genmove to commit the stone, got %v at %v", got, point)
	}
	if e.Moves().History().Len() != 1 {
		t.Errorf("expected one move committed, got history length %d", e.Moves().History().Len())
	}
}
