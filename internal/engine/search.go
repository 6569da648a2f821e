package engine

import "time"

// MaxSearchDepth bounds the minimax search depth the engine will
// accept from genmove.
const MaxSearchDepth = 9

// SearchStats summarizes one searchTree invocation for human
// reporting. AlphaCut and BetaCut are always 0 in this baseline: the
// search is plain fixed-depth minimax without alpha-beta pruning.
type SearchStats struct {
	Color        Color
	Move         string
	Depth        int
	Duration     time.Duration
	NodeCount    uint64
	NodesPerSec  float64
	QSearchCount uint64
	AlphaCut     uint64
	BetaCut      uint64
	Value        int
}

// Searcher runs a fixed-depth minimax search over e's legal moves,
// ordering children by a shallow evaluation and propagating the best
// value (max for Black, min for White) back to the root.
type Searcher struct {
	engine  *MoveEngine
	weights Weights
}

// NewSearcher wires a searcher to an engine and the brain weights used
// for both move ordering and leaf evaluation.
func NewSearcher(e *MoveEngine, weights Weights) *Searcher {
	return &Searcher{engine: e, weights: weights}
}

func (s *Searcher) evaluate(full bool) int {
	value, _ := Evaluate(s.engine, s.weights, full)
	return value
}

func (s *Searcher) legalMoves(color Color) []GeneratedMove {
	fastEval := func(e *MoveEngine, full bool) int {
		value, _ := Evaluate(e, s.weights, full)
		return value
	}
	return LegalMoves(s.engine, color, fastEval)
}

// SearchTree searches toMove's position to the given depth and returns
// the chosen move (PassPoint to pass) with search statistics.
//
// An empty legal-move list returns pass, with value the leaf
// evaluation of the current position. At depth 0, the root returns the
// highest-ranked move of the ordered legal-move list with no
// recursion.
func (s *Searcher) SearchTree(toMove Color, depth int) (Point, SearchStats) {
	start := time.Now()
	var nodeCount uint64

	moves := s.legalMoves(toMove)
	stats := SearchStats{Color: toMove, Depth: depth}

	if len(moves) == 0 {
		stats.Move = "pass"
		stats.Value = s.evaluate(true)
		stats.Duration = time.Since(start)
		return PassPoint, stats
	}

	if depth == 0 {
		best := moves[0]
		stats.Move = formatVertex(best.Point)
		stats.Value = best.Value
		stats.Duration = time.Since(start)
		return best.Point, stats
	}

	bestValue := worstValue(toMove)
	bestIdx := 0
	for idx, m := range moves {
		nodeCount++
		if err := s.engine.Play(toMove, m.Point.I, m.Point.J); err != nil {
			// A move already filtered as legal by legalMoves should
			// always succeed here; surfacing it would be a bug.
			panic("search: legal move rejected by Play: " + err.Error())
		}
		value := s.searchNode(toMove.Opponent(), depth-1, &nodeCount)
		if err := s.engine.Undo(); err != nil {
			panic("search: undo failed: " + err.Error())
		}

		if idx == 0 || better(toMove, value, bestValue) {
			bestValue = value
			bestIdx = idx
		}
	}

	elapsed := time.Since(start)
	stats.Move = formatVertex(moves[bestIdx].Point)
	stats.Value = bestValue
	stats.NodeCount = nodeCount
	stats.Duration = elapsed
	if elapsed > 0 {
		stats.NodesPerSec = float64(nodeCount) / elapsed.Seconds()
	}
	return moves[bestIdx].Point, stats
}

func (s *Searcher) searchNode(toMove Color, depth int, nodeCount *uint64) int {
	if depth == 0 {
		return s.evaluate(true)
	}

	moves := s.legalMoves(toMove)
	if len(moves) == 0 {
		return s.evaluate(true)
	}

	value := worstValue(toMove)
	for idx, m := range moves {
		*nodeCount++
		if err := s.engine.Play(toMove, m.Point.I, m.Point.J); err != nil {
			panic("search: legal move rejected by Play: " + err.Error())
		}
		child := s.searchNode(toMove.Opponent(), depth-1, nodeCount)
		if err := s.engine.Undo(); err != nil {
			panic("search: undo failed: " + err.Error())
		}
		if idx == 0 || better(toMove, child, value) {
			value = child
		}
	}
	return value
}

func worstValue(color Color) int {
	if color == Black {
		return minInt
	}
	return maxInt
}

func better(color Color, candidate, current int) bool {
	if color == Black {
		return candidate > current
	}
	return candidate < current
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

func formatVertex(p Point) string {
	if p.IsPass() {
		return "pass"
	}
	return labelColumn(p.I) + labelRowPlain(p.J)
}
