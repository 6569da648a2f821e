package engine

import "testing"

func fastEval(e *MoveEngine, weights Weights) Evaluator {
	return func(e *MoveEngine, full bool) int {
		v, _ := Evaluate(e, weights, full)
		return v
	}
}

func TestPseudoLegalMovesExcludesOccupiedAndKo(t *testing.T) {
	e := newTestMoveEngine(t, 9)
	mustPlay(t, e, Black, 4, 4)
	moves := PseudoLegalMoves(e, Black)
	for _, p := range moves {
		if p == (Point{I: 4, J: 4}) {
			t.Error("occupied point should not be pseudo-legal")
		}
	}
	if len(moves) != 9*9-1 {
		t.Errorf("expected %d pseudo-legal moves, got %d", 9*9-1, len(moves))
	}

	// The ko diamond from TestSimpleKo: after Black captures at (4,3),
	// (4,4) is forbidden to White.
	ko := newTestMoveEngine(t, 9)
	kb := ko.Board()
	kb.SetStone(Black, 3, 4)
	kb.SetStone(Black, 5, 4)
	kb.SetStone(Black, 4, 5)
	kb.SetStone(White, 4, 4)
	kb.SetStone(White, 3, 3)
	kb.SetStone(White, 5, 3)
	kb.SetStone(White, 4, 2)
	mustPlay(t, ko, Black, 4, 3)
	for _, p := range PseudoLegalMoves(ko, White) {
		if p == (Point{I: 4, J: 4}) {
			t.Error("ko point should not be pseudo-legal for White")
		}
	}
}

func TestLegalMovesDropsSuicide(t *testing.T) {
	e := newTestMoveEngine(t, 9)
	mustPlay(t, e, White, 0, 1)
	mustPlay(t, e, White, 1, 0)
	weights := DefaultWeights()
	moves := LegalMoves(e, Black, fastEval(e, weights))
	for _, m := range moves {
		if m.Point == (Point{I: 0, J: 0}) {
			t.Error("suicide point (0,0) should have been dropped")
		}
	}
}

func TestLegalMovesTagsCaptures(t *testing.T) {
	e := newTestMoveEngine(t, 9)
	mustPlay(t, e, White, 0, 0)
	mustPlay(t, e, Black, 0, 1)
	weights := DefaultWeights()
	moves := LegalMoves(e, Black, fastEval(e, weights))
	var found bool
	for _, m := range moves {
		if m.Point == (Point{I: 1, J: 0}) {
			found = true
			if m.Captures != 1 {
				t.Errorf("expected capture count 1 at (1,0), got %d", m.Captures)
			}
		}
	}
	if !found {
		t.Fatal("expected (1,0) among Black's legal moves")
	}
}

func TestLegalMovesLeavesBoardUnchanged(t *testing.T) {
	e := newTestMoveEngine(t, 9)
	mustPlay(t, e, Black, 4, 4)
	before := e.Board().GetStone(4, 4)
	weights := DefaultWeights()
	LegalMoves(e, White, fastEval(e, weights))
	after := e.Board().GetStone(4, 4)
	if before != after {
		t.Error("generating legal moves must leave the live board unchanged")
	}
	if e.History().Len() != 1 {
		t.Errorf("expected history length 1 after move generation, got %d", e.History().Len())
	}
}

func TestSortGeneratedMovesOrderingByColor(t *testing.T) {
	moves := []GeneratedMove{
		{Point: Point{I: 0, J: 0}, Value: 5},
		{Point: Point{I: 1, J: 0}, Value: 10},
		{Point: Point{I: 2, J: 0}, Value: 1},
	}
	sortGeneratedMoves(moves, Black)
	if moves[0].Value != 10 || moves[2].Value != 1 {
		t.Errorf("expected descending order for Black, got %+v", moves)
	}

	moves2 := []GeneratedMove{
		{Point: Point{I: 0, J: 0}, Value: 5},
		{Point: Point{I: 1, J: 0}, Value: 10},
		{Point: Point{I: 2, J: 0}, Value: 1},
	}
	sortGeneratedMoves(moves2, White)
	if moves2[0].Value != 1 || moves2[2].Value != 10 {
		t.Errorf("expected ascending order for White, got %+v", moves2)
	}
}

func TestSortGeneratedMovesStableOnTies(t *testing.T) {
	moves := []GeneratedMove{
		{Point: Point{I: 0, J: 0}, Value: 3},
		{Point: Point{I: 1, J: 0}, Value: 3},
		{Point: Point{I: 2, J: 0}, Value: 3},
	}
	sortGeneratedMoves(moves, Black)
	if moves[0].Point.I != 0 || moves[1].Point.I != 1 || moves[2].Point.I != 2 {
		t.Errorf("expected generator order preserved on ties, got %+v", moves)
	}
}
