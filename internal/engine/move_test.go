package engine

import "testing"

func newTestMoveEngine(t *testing.T, size int) *MoveEngine {
	t.Helper()
	b, err := NewBoardState(size)
	if err != nil {
		t.Fatal(err)
	}
	return NewMoveEngine(b)
}

func mustPlay(t *testing.T, e *MoveEngine, color Color, i, j int) {
	t.Helper()
	if err := e.Play(color, i, j); err != nil {
		t.Fatalf("Play(%v, %d, %d) failed: %v", color, i, j, err)
	}
}

// S1 — Corner atari and capture.
func TestCornerAtariAndCapture(t *testing.T) {
	e := newTestMoveEngine(t, 19)
	mustPlay(t, e, Black, 0, 0) // A1
	mustPlay(t, e, White, 0, 1) // A2
	mustPlay(t, e, Black, 1, 0) // B1
	mustPlay(t, e, White, 1, 1) // B2

	if err := e.Play(White, 2, 0); err != nil { // C1
		t.Fatalf("White C1 should capture, got error: %v", err)
	}

	if got := e.Board().GetStone(0, 0); got != Empty {
		t.Errorf("expected A1 empty after capture, got %v", got)
	}
	if got := e.Board().GetStone(1, 0); got != Empty {
		t.Errorf("expected B1 empty after capture, got %v", got)
	}
	if got := e.Board().WhiteCaptured(); got != 2 {
		t.Errorf("expected white_captured == 2, got %d", got)
	}

	last, ok := e.History().Last()
	if !ok || last.HasKo {
		t.Error("a 2-stone capture must not create a ko")
	}
}

// S2 — Simple ko. Three black stones pin a lone white stone to one
// liberty; three white stones pin the capturing black stone, once
// placed, to the single liberty its capture opens, so the position is a textbook
// ko diamond centered on (4,4)/(4,3).
func TestSimpleKo(t *testing.T) {
	e := newTestMoveEngine(t, 9)
	b := e.Board()
	b.SetStone(Black, 3, 4)
	b.SetStone(Black, 5, 4)
	b.SetStone(Black, 4, 5)
	b.SetStone(White, 4, 4)
	b.SetStone(White, 3, 3)
	b.SetStone(White, 5, 3)
	b.SetStone(White, 4, 2)

	if err := e.Play(Black, 4, 3); err != nil {
		t.Fatalf("expected the capturing move to succeed, got %v", err)
	}
	if got := b.GetStone(4, 4); got != Empty {
		t.Errorf("expected the captured point empty, got %v", got)
	}
	last, ok := e.History().Last()
	if !ok || !last.HasKo || last.Ko != (Point{I: 4, J: 4}) {
		t.Fatalf("expected a ko at (4,4), got %+v ok=%v", last, ok)
	}

	if err := e.Play(White, 4, 4); err != ErrKoRecapture {
		t.Fatalf("expected ErrKoRecapture, got %v", err)
	}

	mustPlay(t, e, White, 0, 0) // White plays elsewhere.
	mustPlay(t, e, Black, 1, 1) // Black plays elsewhere.

	if err := e.Play(White, 4, 4); err != nil {
		t.Fatalf("expected White's recapture to succeed once the ko point is stale, got %v", err)
	}
	if got := b.GetStone(4, 3); got != Empty {
		t.Errorf("expected White's recapture to remove Black's single stone at (4,3), got %v", got)
	}
}

// S3 — Suicide rejection.
func TestSuicideRejected(t *testing.T) {
	e := newTestMoveEngine(t, 9)
	mustPlay(t, e, White, 0, 1) // A2
	mustPlay(t, e, White, 1, 0) // B1

	if err := e.Play(Black, 0, 0); err != ErrSuicide {
		t.Fatalf("expected ErrSuicide, got %v", err)
	}
	if got := e.Board().GetStone(0, 0); got != Empty {
		t.Errorf("expected A1 to remain empty after rejected suicide, got %v", got)
	}
}

// A placement that would be suicide in isolation is legal when it
// captures: Black at A1 has no empty neighbor, but both White
// neighbors are in atari on A1 and are removed.
func TestSuicideWithCaptureIsLegal(t *testing.T) {
	e := newTestMoveEngine(t, 9)
	mustPlay(t, e, White, 1, 0)
	mustPlay(t, e, White, 0, 1)
	mustPlay(t, e, Black, 2, 0)
	mustPlay(t, e, Black, 1, 1)
	mustPlay(t, e, Black, 0, 2)
	if err := e.Play(Black, 0, 0); err != nil {
		t.Fatalf("expected capturing placement to succeed, got %v", err)
	}
	if got := e.Board().GetStone(1, 0); got != Empty {
		t.Errorf("expected white stone captured, got %v", got)
	}
}

// S4 — Undo restores.
func TestUndoRestoresCapture(t *testing.T) {
	e := newTestMoveEngine(t, 19)
	mustPlay(t, e, Black, 0, 0)
	mustPlay(t, e, White, 0, 1)
	mustPlay(t, e, Black, 1, 0)
	mustPlay(t, e, White, 1, 1)
	mustPlay(t, e, White, 2, 0)

	if err := e.Undo(); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if got := e.Board().GetStone(0, 0); got != Black {
		t.Errorf("expected A1 restored to Black, got %v", got)
	}
	if got := e.Board().GetStone(1, 0); got != Black {
		t.Errorf("expected B1 restored to Black, got %v", got)
	}
	if got := e.Board().WhiteCaptured(); got != 0 {
		t.Errorf("expected white_captured reset to 0, got %d", got)
	}
	if got := e.Board().GetStone(2, 0); got != Empty {
		t.Errorf("expected C1 empty after undo, got %v", got)
	}
}

func TestUndoNoMove(t *testing.T) {
	e := newTestMoveEngine(t, 9)
	if err := e.Undo(); err != ErrNoMove {
		t.Errorf("expected ErrNoMove, got %v", err)
	}
}

func TestPlayOccupiedOrOff(t *testing.T) {
	e := newTestMoveEngine(t, 9)
	mustPlay(t, e, Black, 4, 4)
	if err := e.Play(White, 4, 4); err != ErrOccupiedOrOff {
		t.Errorf("expected ErrOccupiedOrOff for occupied point, got %v", err)
	}
	if err := e.Play(White, -1, 0); err != ErrOccupiedOrOff {
		t.Errorf("expected ErrOccupiedOrOff for off-board point, got %v", err)
	}
}

func TestPassRecordsHistory(t *testing.T) {
	e := newTestMoveEngine(t, 9)
	if err := e.Pass(Black); err != nil {
		t.Fatal(err)
	}
	last, ok := e.History().Last()
	if !ok || !last.Pass || last.Color != Black {
		t.Errorf("expected a recorded black pass, got %+v ok=%v", last, ok)
	}
}
