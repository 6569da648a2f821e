package engine

// BrainKind names one of the fixed heuristic evaluators ("brains").
// Adding a brain means adding a variant here and a case in brainValue,
// not mutating a runtime-built function table.
type BrainKind int

const (
	BrainCapture BrainKind = iota
	BrainAtari
	BrainAvgLiberties
	BrainEdgeStones
	BrainHoshiStones
	BrainKosumi
	BrainChains
	BrainInfluence

	brainCount
)

func (k BrainKind) String() string {
	switch k {
	case BrainCapture:
		return "Capture"
	case BrainAtari:
		return "Atari"
	case BrainAvgLiberties:
		return "AvgLiberties"
	case BrainEdgeStones:
		return "EdgeStones"
	case BrainHoshiStones:
		return "HoshiStones"
	case BrainKosumi:
		return "Kosumi"
	case BrainChains:
		return "Chains"
	case BrainInfluence:
		return "Influence"
	default:
		return "Unknown"
	}
}

// Weights maps each brain to its integer multiplier; a weight of 0
// disables that brain entirely. DefaultWeights reproduces the
// reference engine's tuning.
type Weights [int(brainCount)]int

// DefaultWeights is the engine's out-of-the-box heuristic tuning.
func DefaultWeights() Weights {
	var w Weights
	w[BrainCapture] = 82
	w[BrainAtari] = 15
	w[BrainAvgLiberties] = 1
	w[BrainEdgeStones] = 1
	w[BrainHoshiStones] = 0
	w[BrainKosumi] = 4
	w[BrainChains] = 1
	w[BrainInfluence] = 0
	return w
}

// BrainValue is one term of a full evaluation breakdown.
type BrainValue struct {
	Kind   BrainKind
	Raw    int
	Weighted int
}

// Evaluate computes the weighted sum of every non-zero-weighted brain
// over the position currently on e's board. full enables the more
// expensive brains (chain analysis, influence); move ordering should
// pass full=false, leaf evaluation full=true.
func Evaluate(e *MoveEngine, weights Weights, full bool) (int, []BrainValue) {
	wi := Scan(e.Board())
	total := 0
	var breakdown []BrainValue

	for k := BrainKind(0); k < brainCount; k++ {
		weight := weights[k]
		if weight == 0 {
			continue
		}
		if !full && (k == BrainChains || k == BrainInfluence) {
			continue
		}
		raw := brainValue(e, wi, k)
		weighted := raw * weight
		total += weighted
		breakdown = append(breakdown, BrainValue{Kind: k, Raw: raw, Weighted: weighted})
	}
	return total, breakdown
}

func brainValue(e *MoveEngine, wi *WormIndex, kind BrainKind) int {
	board := e.Board()
	switch kind {
	case BrainCapture:
		return board.BlackCaptured() - board.WhiteCaptured()
	case BrainAtari:
		return wi.CountAtari(White) - wi.CountAtari(Black)
	case BrainAvgLiberties:
		return brainAvgLiberties(wi)
	case BrainEdgeStones:
		return brainEdgeStones(board)
	case BrainHoshiStones:
		return brainHoshiStones(board)
	case BrainKosumi:
		return brainKosumi(board)
	case BrainChains, BrainInfluence:
		// Stubbed: the reference engine's chain/influence analysis is
		// incomplete, so both always contribute 0 whatever their weight
		// (DefaultWeights gives Chains 1 and Influence 0); never invented.
		return 0
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func brainAvgLiberties(wi *WormIndex) int {
	avg := func(color Color) int {
		worms := wi.Worms(color)
		divisor := len(worms)
		if divisor < 1 {
			divisor = 1
		}
		return wi.CountGroupLiberties(color) / divisor
	}
	return clamp(avg(Black), 0, 4) - clamp(avg(White), 0, 4)
}

func brainEdgeStones(board *BoardState) int {
	n := board.Size()
	value := 0
	for i := 0; i < n; i++ {
		value += signedStone(board.GetStone(i, 0))
		value += signedStone(board.GetStone(i, n-1))
	}
	for j := 0; j < n; j++ {
		value += signedStone(board.GetStone(0, j))
		value += signedStone(board.GetStone(n-1, j))
	}
	return -value
}

func brainHoshiStones(board *BoardState) int {
	n := board.Size()
	value := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if board.IsHoshi(i, j) {
				value += signedStone(board.GetStone(i, j))
			}
		}
	}
	return value
}

func signedStone(c Color) int {
	switch c {
	case Black:
		return 1
	case White:
		return -1
	default:
		return 0
	}
}

// brainKosumi counts diagonal ("kosumi") shapes: two same-color stones
// one step diagonally apart whose two shared orthogonal neighbors are
// both not that color, restricted to interior points so the diagonal
// neighbor itself is always on-board.
func brainKosumi(board *BoardState) int {
	n := board.Size()
	black, white := 0, 0
	// Bounds per diagonal direction mirror the reference implementation,
	// which is asymmetric: only the direction actually walked towards
	// the far edge is checked against n-1.
	dirs := [4]struct{ di, dj int }{
		{1, 1},   // NE
		{1, -1},  // SE
		{-1, -1}, // SW
		{-1, 1},  // NW
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			color := board.GetStone(i, j)
			if color != Black && color != White {
				continue
			}
			for _, d := range dirs {
				if d.di > 0 && i+d.di >= n-1 {
					continue
				}
				if d.di < 0 && i+d.di < 0 {
					continue
				}
				if d.dj > 0 && j+d.dj >= n-1 {
					continue
				}
				if d.dj < 0 && j+d.dj < 0 {
					continue
				}
				ni, nj := i+d.di, j+d.dj
				if board.GetStone(ni, nj) != color {
					continue
				}
				if board.GetStone(i, nj) == color || board.GetStone(ni, j) == color {
					continue
				}
				if color == Black {
					black++
				} else {
					white++
				}
			}
		}
	}
	return black/2 - white/2
}
