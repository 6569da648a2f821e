package engine

// MoveHistoryMax bounds the number of moves retained in a MoveHistory.
const MoveHistoryMax = 1024

// Move records one committed action: either a stone placement or a
// pass. Captured holds the vertices removed by this move (empty for a
// pass or a non-capturing placement). Ko is valid only immediately
// after a move that captured exactly one stone into a size-1,
// one-liberty worm.
type Move struct {
	Color    Color
	Point    Point
	Pass     bool
	Captured []Point
	Ko       Point
	HasKo    bool
	Number   int
	Value    int
}

// MoveHistory is an ordered, bounded sequence of committed moves. Push
// appends; Pop discards the tail. The move on top is the "last move"
// consulted for simple-ko detection.
type MoveHistory struct {
	moves []Move
	max   int
}

// NewMoveHistory creates an empty history bounded at max entries.
func NewMoveHistory(max int) *MoveHistory {
	return &MoveHistory{max: max}
}

// Push appends m to the history. It fails with ErrHistoryOverflow once
// the bound is reached; the caller's operation should be aborted.
func (h *MoveHistory) Push(m Move) error {
	if len(h.moves) >= h.max {
		return ErrHistoryOverflow
	}
	h.moves = append(h.moves, m)
	return nil
}

// Pop discards and returns the last move, or ErrNoMove if the history
// is empty.
func (h *MoveHistory) Pop() (Move, error) {
	if len(h.moves) == 0 {
		return Move{}, ErrNoMove
	}
	last := h.moves[len(h.moves)-1]
	h.moves = h.moves[:len(h.moves)-1]
	return last, nil
}

// Last returns the most recently pushed move, if any.
func (h *MoveHistory) Last() (Move, bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	return h.moves[len(h.moves)-1], true
}

// Len returns the number of moves currently recorded.
func (h *MoveHistory) Len() int { return len(h.moves) }

// Moves returns the full move sequence in play order, for callers
// (SGF serialization, game review) that need more than the top of the
// history. The returned slice is a copy; mutating it has no effect on
// the history.
func (h *MoveHistory) Moves() []Move {
	out := make([]Move, len(h.moves))
	copy(out, h.moves)
	return out
}

// MoveEngine plays and undoes moves against a BoardState, maintaining
// capture bookkeeping, simple-ko detection, and a reversible move
// history. It rebuilds the worm index from scratch on every committed
// mutation; no incremental maintenance is attempted.
type MoveEngine struct {
	board   *BoardState
	history *MoveHistory
}

// NewMoveEngine wires a move engine to board, with a history bounded at
// MoveHistoryMax.
func NewMoveEngine(board *BoardState) *MoveEngine {
	return &MoveEngine{board: board, history: NewMoveHistory(MoveHistoryMax)}
}

// Board returns the underlying board state.
func (e *MoveEngine) Board() *BoardState { return e.board }

// History returns the move history.
func (e *MoveEngine) History() *MoveHistory { return e.history }

// LastKo returns the forbidden recapture point and the color that must
// not play there, if the last move created a ko.
func (e *MoveEngine) LastKo() (Point, Color, bool) {
	last, ok := e.history.Last()
	if !ok || !last.HasKo {
		return Point{}, Empty, false
	}
	return last.Ko, last.Color.Opponent(), true
}

// Play attempts to place a stone of color at (i,j), resolving captures
// and updating the move history on success.
func (e *MoveEngine) Play(color Color, i, j int) error {
	if !e.board.Initialized() {
		return ErrUninitialized
	}
	if !e.board.OnBoard(i, j) || e.board.GetStone(i, j) != Empty {
		return ErrOccupiedOrOff
	}
	if koPoint, koColor, ok := e.LastKo(); ok && koColor == color && koPoint == (Point{I: i, J: j}) {
		return ErrKoRecapture
	}

	e.board.SetStone(color, i, j)

	opponent := color.Opponent()
	wi := Scan(e.board)
	captured := wi.ZeroLibertyWorms(opponent)
	for _, p := range captured {
		e.board.SetStone(Empty, p.I, p.J)
	}
	if len(captured) > 0 {
		e.board.AddCaptured(color, len(captured))
		wi = Scan(e.board)
	}

	ownID := wi.WormOf(color, i, j)
	if wi.WormLiberties(color, ownID) == 0 {
		e.board.SetStone(Empty, i, j)
		return ErrSuicide
	}

	move := Move{
		Color:    color,
		Point:    Point{I: i, J: j},
		Captured: captured,
		Number:   e.history.Len() + 1,
	}
	if len(captured) == 1 && wi.WormSize(color, ownID) == 1 && wi.WormLiberties(color, ownID) == 1 {
		move.HasKo = true
		move.Ko = captured[0]
	}
	return e.history.Push(move)
}

// Pass records a pass by color.
func (e *MoveEngine) Pass(color Color) error {
	if !e.board.Initialized() {
		return ErrUninitialized
	}
	move := Move{
		Color:  color,
		Point:  PassPoint,
		Pass:   true,
		Number: e.history.Len() + 1,
	}
	return e.history.Push(move)
}

// Undo reverts the last move: a pass is simply discarded, a placement
// restores the empty vertex and any captured stones and decrements the
// capturing color's counter.
func (e *MoveEngine) Undo() error {
	last, err := e.history.Pop()
	if err != nil {
		return err
	}
	if last.Pass {
		return nil
	}
	e.board.SetStone(Empty, last.Point.I, last.Point.J)
	opponent := last.Color.Opponent()
	for _, p := range last.Captured {
		e.board.SetStone(opponent, p.I, p.J)
	}
	if len(last.Captured) > 0 {
		e.board.AddCaptured(last.Color, -len(last.Captured))
	}
	return nil
}
