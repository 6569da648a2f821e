package engine

// MinBoardSize and MaxBoardSize bound the supported board size, as does
// the Go Text Protocol (which tops out at 25).
const (
	MinBoardSize = 2
	MaxBoardSize = 25
)

// rowMask packs one board row into the low bits of a machine word; bit
// i is set iff column i holds the property the mask represents.
type rowMask uint32

// BoardState is the mechanical board: a pair of bitboards (one per
// color) plus the on-board and hoshi masks. It performs no legality
// checking; the move engine builds on top of it.
//
// Rows are stored with a one-row guard above and below (index j+1, with
// indices 0 and size+1 permanently zero) so that vertical neighbor
// lookups never need a bounds check.
type BoardState struct {
	size int

	black   []rowMask
	white   []rowMask
	onBoard []rowMask
	hoshi   []rowMask

	blackCaptured int
	whiteCaptured int
}

// NewBoardState allocates a board of the given size. Size must be in
// [MinBoardSize, MaxBoardSize].
func NewBoardState(size int) (*BoardState, error) {
	b := &BoardState{}
	if err := b.init(size); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *BoardState) init(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return ErrInvalidSize
	}
	b.size = size
	b.black = make([]rowMask, size+2)
	b.white = make([]rowMask, size+2)
	b.onBoard = make([]rowMask, size+2)
	b.hoshi = make([]rowMask, size+2)
	b.blackCaptured = 0
	b.whiteCaptured = 0

	rowOn := rowMask(1)<<uint(size) - 1
	for j := 1; j <= size; j++ {
		b.onBoard[j] = rowOn
	}
	for _, p := range hoshiPoints(size) {
		b.hoshi[p.J+1] |= rowMask(1) << uint(p.I)
	}
	return nil
}

// Clear releases the board's resources, returning it to an
// uninitialized state. Afterwards Size reports 0, OnBoard and IsHoshi
// report false and GetStone reports Empty; these queries return no
// error. MoveEngine.Play and Pass fail with ErrUninitialized.
func (b *BoardState) Clear() {
	b.size = 0
	b.black = nil
	b.white = nil
	b.onBoard = nil
	b.hoshi = nil
	b.blackCaptured = 0
	b.whiteCaptured = 0
}

// Reinit clears and reinitializes the board at the given size in one
// step, e.g. for the clear_board command.
func (b *BoardState) Reinit(size int) error {
	return b.init(size)
}

func (b *BoardState) initialized() bool { return b.size > 0 }

// Initialized reports whether the board currently holds an allocated
// position (i.e. Clear has not been called since the last init).
func (b *BoardState) Initialized() bool { return b.initialized() }

// Size returns the current board size, or 0 if uninitialized.
func (b *BoardState) Size() int { return b.size }

func hoshiPoints(size int) []Point {
	switch size {
	case 19:
		return starGrid([]int{3, 9, 15})
	case 13:
		return append(starGrid([]int{3, 9}), Point{6, 6})
	case 9:
		return append(starGrid([]int{2, 6}), Point{4, 4})
	default:
		return nil
	}
}

func starGrid(coords []int) []Point {
	pts := make([]Point, 0, len(coords)*len(coords))
	for _, i := range coords {
		for _, j := range coords {
			pts = append(pts, Point{I: i, J: j})
		}
	}
	return pts
}

// SetStone mechanically sets the stone at (i,j) to color, clearing
// whichever color previously occupied it. It performs no legality
// checks. Color Empty removes any stone present.
func (b *BoardState) SetStone(color Color, i, j int) {
	row := j + 1
	bit := rowMask(1) << uint(i)
	b.black[row] &^= bit
	b.white[row] &^= bit
	switch color {
	case Black:
		b.black[row] |= bit
	case White:
		b.white[row] |= bit
	}
}

// GetStone returns the color occupying (i,j), or Empty if off-board or
// unoccupied.
func (b *BoardState) GetStone(i, j int) Color {
	if !b.OnBoard(i, j) {
		return Empty
	}
	row := j + 1
	bit := rowMask(1) << uint(i)
	switch {
	case b.black[row]&bit != 0:
		return Black
	case b.white[row]&bit != 0:
		return White
	default:
		return Empty
	}
}

// OnBoard reports whether (i,j) is a valid vertex for the current
// board size.
func (b *BoardState) OnBoard(i, j int) bool {
	if j+1 < 0 || j+1 >= len(b.onBoard) || i < 0 {
		return false
	}
	return b.onBoard[j+1]&(rowMask(1)<<uint(i)) != 0
}

// IsHoshi reports whether (i,j) is a star point for the current board
// size.
func (b *BoardState) IsHoshi(i, j int) bool {
	if !b.OnBoard(i, j) {
		return false
	}
	return b.hoshi[j+1]&(rowMask(1)<<uint(i)) != 0
}

// BlackCaptured returns the number of white stones black has captured.
func (b *BoardState) BlackCaptured() int { return b.blackCaptured }

// WhiteCaptured returns the number of black stones white has captured.
func (b *BoardState) WhiteCaptured() int { return b.whiteCaptured }

// AddCaptured credits capturer with n captures of the opponent's
// stones. n may be negative, as used by undo.
func (b *BoardState) AddCaptured(capturer Color, n int) {
	switch capturer {
	case Black:
		b.blackCaptured += n
	case White:
		b.whiteCaptured += n
	}
}
