package engine

import "sort"

// GeneratedMove is a legal candidate move annotated with the feature
// tags and heuristic value used for move ordering.
type GeneratedMove struct {
	Point          Point
	Value          int
	Captures       int
	GivesAtari     bool // opponent's count of stones in atari increases
	EscapesAtari   bool // own count of stones in atari decreases
	ReducesEnemyLiberties bool
}

// PseudoLegalMoves returns every empty on-board point that is not the
// simple-ko point forbidden to color.
func PseudoLegalMoves(e *MoveEngine, color Color) []Point {
	board := e.Board()
	n := board.Size()
	koPoint, koColor, hasKo := e.LastKo()

	moves := make([]Point, 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if board.GetStone(i, j) != Empty {
				continue
			}
			if hasKo && koColor == color && koPoint == (Point{I: i, J: j}) {
				continue
			}
			moves = append(moves, Point{I: i, J: j})
		}
	}
	return moves
}

// Evaluator evaluates the position currently on e's board. Callers
// usually wrap Evaluate with a fixed Weights and keep only its total.
type Evaluator func(e *MoveEngine, full bool) int

// LegalMoves plays and undoes every pseudo-legal move against e's live
// board to discover which are not suicide, tagging survivors with
// capture/atari features and a fast heuristic value. Moves are sorted
// by that value: descending for Black, ascending for White, which is
// the ordering search.go relies on.
func LegalMoves(e *MoveEngine, color Color, evaluate Evaluator) []GeneratedMove {
	wi := Scan(e.Board())
	preAtariOpponent := wi.CountAtari(color.Opponent())
	preAtariOwn := wi.CountAtari(color)
	preLibertiesOpponent := wi.CountGroupLiberties(color.Opponent())

	candidates := PseudoLegalMoves(e, color)
	result := make([]GeneratedMove, 0, len(candidates))

	for _, p := range candidates {
		if err := e.Play(color, p.I, p.J); err != nil {
			continue
		}

		postWi := Scan(e.Board())
		captures := 0
		if last, ok := e.History().Last(); ok {
			captures = len(last.Captured)
		}
		gm := GeneratedMove{
			Point:                 p,
			Captures:              captures,
			GivesAtari:            postWi.CountAtari(color.Opponent()) > preAtariOpponent,
			EscapesAtari:          postWi.CountAtari(color) < preAtariOwn,
			ReducesEnemyLiberties: postWi.CountGroupLiberties(color.Opponent()) < preLibertiesOpponent,
		}
		gm.Value = evaluate(e, false)

		if err := e.Undo(); err != nil {
			panic("legal move generation: undo failed: " + err.Error())
		}
		result = append(result, gm)
	}

	sortGeneratedMoves(result, color)
	return result
}

// sortGeneratedMoves orders moves by value, descending for Black and
// ascending for White. It is stable so that ties keep the generator's
// (row-major) order, which search.go's root selection relies on for
// deterministic tie-breaking.
func sortGeneratedMoves(moves []GeneratedMove, color Color) {
	less := func(i, j int) bool { return moves[i].Value > moves[j].Value }
	if color == White {
		less = func(i, j int) bool { return moves[i].Value < moves[j].Value }
	}
	sort.SliceStable(moves, less)
}
