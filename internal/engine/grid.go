package engine

import "github.com/vovakirdan/shooter-arcade/internal/core"

// spatialGrid is a uniform bucket grid over the playfield used as the broad
// phase for shot/opponent tests. Rects outside the playfield are clamped
// into the border cells so off-screen entities are still found.
type spatialGrid struct {
	origin   core.Rect
	cellSize float64
	cols     int
	rows     int
	cells    [][]int
	seen     []int // per-candidate stamp for de-duplication
	stamp    int
}

func newSpatialGrid(bounds core.Rect, cellSize float64) *spatialGrid {
	if cellSize <= 0 {
		cellSize = 64
	}
	cols := int(bounds.W/cellSize) + 1
	rows := int(bounds.H/cellSize) + 1
	return &spatialGrid{
		origin:   bounds,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]int, cols*rows),
	}
}

func (g *spatialGrid) reset(n int) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	if cap(g.seen) < n {
		g.seen = make([]int, n)
	}
	g.seen = g.seen[:n]
	for i := range g.seen {
		g.seen[i] = 0
	}
	g.stamp = 0
}

func (g *spatialGrid) span(r core.Rect) (minCX, minCY, maxCX, maxCY int) {
	clampCol := func(v float64) int {
		return core.Clamp(int((v-g.origin.X)/g.cellSize), 0, g.cols-1)
	}
	clampRow := func(v float64) int {
		return core.Clamp(int((v-g.origin.Y)/g.cellSize), 0, g.rows-1)
	}
	return clampCol(r.X), clampRow(r.Y), clampCol(r.Right()), clampRow(r.Bottom())
}

// insert adds the slot index to every cell the rect overlaps.
func (g *spatialGrid) insert(r core.Rect, idx int) {
	minCX, minCY, maxCX, maxCY := g.span(r)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			cell := cy*g.cols + cx
			g.cells[cell] = append(g.cells[cell], idx)
		}
	}
}

// query calls fn once for every slot index sharing a cell with r.
func (g *spatialGrid) query(r core.Rect, fn func(idx int)) {
	g.stamp++
	minCX, minCY, maxCX, maxCY := g.span(r)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			for _, idx := range g.cells[cy*g.cols+cx] {
				if g.seen[idx] == g.stamp {
					continue
				}
				g.seen[idx] = g.stamp
				fn(idx)
			}
		}
	}
}
