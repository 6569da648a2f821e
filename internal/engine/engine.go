package engine

import "fmt"

// Engine is the single owner of a game in progress: the board, its
// move history, the heuristic weights used for search, komi, and the
// statistics from the most recent search. Every GTP-visible operation
// is a method on Engine; there is no global state, so the
// "uninitialized board" bug class is closed by construction once
// NewEngine has run.
type Engine struct {
	board   *BoardState
	moves   *MoveEngine
	weights Weights
	komi    float64
	depth   int

	lastStats SearchStats
}

// NewEngine builds an Engine with the given board size and default
// heuristic weights, ready to play.
func NewEngine(size int) (*Engine, error) {
	board, err := NewBoardState(size)
	if err != nil {
		return nil, err
	}
	return &Engine{
		board:   board,
		moves:   NewMoveEngine(board),
		weights: DefaultWeights(),
		depth:   2,
	}, nil
}

// BoardSize returns the current board size.
func (e *Engine) BoardSize() int { return e.board.Size() }

// SetBoardSize reinitializes the board (and move history, captures,
// komi) at the given size, per the boardsize GTP command.
func (e *Engine) SetBoardSize(size int) error {
	if err := e.board.Reinit(size); err != nil {
		return err
	}
	e.moves = NewMoveEngine(e.board)
	e.komi = 0
	return nil
}

// ClearBoard resets the position to empty at the current size,
// keeping komi and weights, per the clear_board GTP command.
func (e *Engine) ClearBoard() error {
	if err := e.board.Reinit(e.board.Size()); err != nil {
		return err
	}
	e.moves = NewMoveEngine(e.board)
	return nil
}

// Komi returns the current komi value.
func (e *Engine) Komi() float64 { return e.komi }

// SetKomi sets the komi value; GTP places no bound on it.
func (e *Engine) SetKomi(k float64) { e.komi = k }

// Weights returns the brain weights currently used for evaluation and
// search.
func (e *Engine) Weights() Weights { return e.weights }

// SetWeights replaces the brain weights wholesale, e.g. from config.
func (e *Engine) SetWeights(w Weights) { e.weights = w }

// SearchDepth returns the fixed minimax depth genmove will use.
func (e *Engine) SearchDepth() int { return e.depth }

// SetSearchDepth bounds the depth to [0, MaxSearchDepth].
func (e *Engine) SetSearchDepth(depth int) error {
	if depth < 0 || depth > MaxSearchDepth {
		return fmt.Errorf("search depth %d out of range [0, %d]", depth, MaxSearchDepth)
	}
	e.depth = depth
	return nil
}

// Board exposes the underlying board state for rendering and
// inspection.
func (e *Engine) Board() *BoardState { return e.board }

// Moves exposes the underlying move engine for callers (sgf replay,
// tests) that need direct Play/Pass/Undo access.
func (e *Engine) Moves() *MoveEngine { return e.moves }

// Play places a stone of color at the given vertex; p.IsPass() plays a
// pass instead.
func (e *Engine) Play(color Color, p Point) error {
	if p.IsPass() {
		return e.moves.Pass(color)
	}
	return e.moves.Play(color, p.I, p.J)
}

// Undo reverts the most recent move.
func (e *Engine) Undo() error {
	return e.moves.Undo()
}

// GenMove searches at the engine's configured depth and color, commits
// the chosen move, and returns it along with the search statistics.
func (e *Engine) GenMove(color Color) (Point, SearchStats, error) {
	searcher := NewSearcher(e.moves, e.weights)
	point, stats := searcher.SearchTree(color, e.depth)
	if err := e.Play(color, point); err != nil {
		return PassPoint, stats, err
	}
	e.lastStats = stats
	return point, stats, nil
}

// LastSearchStats returns the statistics of the most recent GenMove
// call.
func (e *Engine) LastSearchStats() SearchStats { return e.lastStats }

// Render draws the current board exactly as the reference renderer
// does.
func (e *Engine) Render() string {
	return Render(e.board)
}

// FixedHandicap places handicap stones for Black on an empty board and
// returns the vertices used, in placement order. It reproduces the
// reference engine's table: corners first (top-right, then
// bottom-left, then bottom-right, then top-left, with (0,0) the
// lower-left corner), the center point for
// odd handicaps of 5, 7 or 9, then the two side points at (edge,
// center) and finally the two at (center, edge).
//
// edge_distance is 4 for board sizes above 12, otherwise 3. Handicap
// is disallowed on boards of size 6 or smaller; max_handicap is 9 for
// odd sizes, 4 for even sizes and for size 7.
func (e *Engine) FixedHandicap(handicap int) ([]Point, error) {
	size := e.board.Size()
	if e.moves.History().Len() > 0 {
		return nil, fmt.Errorf("fixed_handicap: board not empty")
	}
	if size <= 6 {
		return nil, fmt.Errorf("fixed_handicap: invalid handicap")
	}

	edgeDistance := 3
	if size > 12 {
		edgeDistance = 4
	}
	maxHandicap := 9
	if size%2 == 0 || size == 7 {
		maxHandicap = 4
	}
	if handicap < 2 || handicap > maxHandicap {
		return nil, fmt.Errorf("fixed_handicap: invalid handicap")
	}

	lo := edgeDistance - 1
	hi := size - edgeDistance
	mid := size / 2

	all := []Point{
		{I: hi, J: hi},
		{I: lo, J: lo},
		{I: hi, J: lo},
		{I: lo, J: hi},
		{I: mid, J: mid},
		{I: lo, J: mid},
		{I: hi, J: mid},
		{I: mid, J: lo},
		{I: mid, J: hi},
	}

	var chosen []Point
	switch handicap {
	case 2:
		chosen = all[0:2]
	case 3:
		chosen = all[0:3]
	case 4:
		chosen = all[0:4]
	case 5:
		chosen = append(append([]Point{}, all[0:4]...), all[4])
	case 6:
		chosen = append(append([]Point{}, all[0:4]...), all[5], all[6])
	case 7:
		chosen = append(append([]Point{}, all[0:4]...), all[4], all[5], all[6])
	case 8:
		chosen = append(append([]Point{}, all[0:4]...), all[5], all[6], all[7], all[8])
	case 9:
		chosen = append(append([]Point{}, all[0:4]...), all[4], all[5], all[6], all[7], all[8])
	}

	for _, p := range chosen {
		e.board.SetStone(Black, p.I, p.J)
	}
	return chosen, nil
}
