package engine

// colorSlot maps a Color to its index in the three worm spaces (Empty,
// Black, White).
func colorSlot(c Color) int {
	switch c {
	case Black:
		return 1
	case White:
		return 2
	default:
		return 0
	}
}

// Worm is a maximal 4-connected region of same-colored points.
type Worm struct {
	ID        int
	Color     Color
	Size      int
	Liberties int
}

// WormIndex is the derived, fully-rebuilt labeling of the board into
// worms, one label space per color. It has no incremental update path:
// Scan recomputes it from scratch from the board's bitboards.
type WormIndex struct {
	size int

	wormOf [3][][]int  // [colorSlot][i][j] -> id, 0 means "no worm" (only possible for mismatched color)
	worms  [3][]Worm   // [colorSlot][id], index 0 unused
	maxID  [3]int
}

// Scan rebuilds the worm index from the current contents of b. It is a
// total function of the board's bits; it has no failure mode.
func Scan(b *BoardState) *WormIndex {
	n := b.Size()
	wi := &WormIndex{size: n}
	for slot := range wi.wormOf {
		wi.wormOf[slot] = make2D(n)
		wi.worms[slot] = []Worm{{}} // id 0 placeholder, so worms[id] is direct
	}

	type queueItem struct{ i, j int }
	visited := make2DBool(n)

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if visited[i][j] {
				continue
			}
			color := b.GetStone(i, j)
			slot := colorSlot(color)
			wi.maxID[slot]++
			id := wi.maxID[slot]

			size := 0
			libertySet := make(map[Point]struct{})
			queue := []queueItem{{i, j}}
			visited[i][j] = true
			wi.wormOf[slot][i][j] = id

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				size++

				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					ni, nj := cur.i+d[0], cur.j+d[1]
					if !b.OnBoard(ni, nj) {
						continue
					}
					nc := b.GetStone(ni, nj)
					if nc == color {
						if !visited[ni][nj] {
							visited[ni][nj] = true
							wi.wormOf[slot][ni][nj] = id
							queue = append(queue, queueItem{ni, nj})
						}
						continue
					}
					if color != Empty && nc == Empty {
						libertySet[Point{I: ni, J: nj}] = struct{}{}
					}
				}
			}

			wi.worms[slot] = append(wi.worms[slot], Worm{
				ID:        id,
				Color:     color,
				Size:      size,
				Liberties: len(libertySet),
			})
		}
	}

	return wi
}

func make2D(n int) [][]int {
	grid := make([][]int, n)
	for i := range grid {
		grid[i] = make([]int, n)
	}
	return grid
}

func make2DBool(n int) [][]bool {
	grid := make([][]bool, n)
	for i := range grid {
		grid[i] = make([]bool, n)
	}
	return grid
}

// WormOf returns the id of the worm of the given color occupying
// (i,j), or 0 if the point is not of that color.
func (wi *WormIndex) WormOf(color Color, i, j int) int {
	if i < 0 || i >= wi.size || j < 0 || j >= wi.size {
		return 0
	}
	return wi.wormOf[colorSlot(color)][i][j]
}

// WormSize returns the stone count of the given worm.
func (wi *WormIndex) WormSize(color Color, id int) int {
	worms := wi.worms[colorSlot(color)]
	if id <= 0 || id >= len(worms) {
		return 0
	}
	return worms[id].Size
}

// WormLiberties returns the liberty count of the given worm.
func (wi *WormIndex) WormLiberties(color Color, id int) int {
	worms := wi.worms[colorSlot(color)]
	if id <= 0 || id >= len(worms) {
		return 0
	}
	return worms[id].Liberties
}

// FreeWormID returns the next unused worm id for color.
func (wi *WormIndex) FreeWormID(color Color) int {
	return wi.maxID[colorSlot(color)] + 1
}

// CountAtari returns the number of stones of color belonging to worms
// with exactly one liberty.
func (wi *WormIndex) CountAtari(color Color) int {
	count := 0
	for _, w := range wi.worms[colorSlot(color)][1:] {
		if w.Liberties == 1 {
			count += w.Size
		}
	}
	return count
}

// CountGroupLiberties returns the sum of liberties over all of color's
// worms.
func (wi *WormIndex) CountGroupLiberties(color Color) int {
	total := 0
	for _, w := range wi.worms[colorSlot(color)][1:] {
		total += w.Liberties
	}
	return total
}

// Worms returns the worm list for a color, excluding the id-0
// placeholder.
func (wi *WormIndex) Worms(color Color) []Worm {
	worms := wi.worms[colorSlot(color)]
	if len(worms) <= 1 {
		return nil
	}
	return worms[1:]
}

// ZeroLibertyWorms returns the points belonging to worms of color that
// currently have zero liberties.
func (wi *WormIndex) ZeroLibertyWorms(color Color) []Point {
	var pts []Point
	slot := colorSlot(color)
	for i := 0; i < wi.size; i++ {
		for j := 0; j < wi.size; j++ {
			id := wi.wormOf[slot][i][j]
			if id > 0 && wi.worms[slot][id].Liberties == 0 {
				pts = append(pts, Point{I: i, J: j})
			}
		}
	}
	return pts
}
