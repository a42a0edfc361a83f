package engine

import (
	"math"

	"github.com/lixenwraith/strands/parameter"
	"github.com/lixenwraith/strands/physics"
)

// SpatialGrid is a uniform bucket grid over surface space for pointer radius queries
// Buckets keep their capacity across Clear so a steady scene indexes without allocation
type SpatialGrid struct {
	Width    float64
	Height   float64
	cellSize float64
	cols     int
	rows     int
	cells    [][]*physics.Point // 1D array: index = row*cols + col
	count    int
}

// NewSpatialGrid creates a grid covering width x height with square cells
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = parameter.PointerRadius
	}
	g := &SpatialGrid{cellSize: cellSize}
	g.Resize(width, height)
	return g
}

// Resize reallocates buckets for new dimensions, dropping all indexed points
func (g *SpatialGrid) Resize(width, height float64) {
	g.Width = max(width, 0)
	g.Height = max(height, 0)
	g.cols = int(math.Ceil(g.Width / g.cellSize))
	g.rows = int(math.Ceil(g.Height / g.cellSize))
	g.cells = make([][]*physics.Point, g.cols*g.rows)
	g.count = 0
}

// Clear empties all buckets, retaining backing storage
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		clear(g.cells[i])
		g.cells[i] = g.cells[i][:0]
	}
	g.count = 0
}

// cellIndex returns bucket index for a position, -1 if outside the grid
func (g *SpatialGrid) cellIndex(x, y float64) int {
	// Surface edges are inclusive since bounds clamping parks points exactly on them
	// Negated comparison also rejects NaN
	if g.cols == 0 || g.rows == 0 || !(x >= 0 && y >= 0 && x <= g.Width && y <= g.Height) {
		return -1
	}
	col := min(int(x/g.cellSize), g.cols-1)
	row := min(int(y/g.cellSize), g.rows-1)
	return row*g.cols + col
}

// Insert indexes a point by its current position, out-of-bounds points are dropped
func (g *SpatialGrid) Insert(p *physics.Point) {
	idx := g.cellIndex(p.Pos.X, p.Pos.Y)
	if idx < 0 {
		return
	}
	g.cells[idx] = append(g.cells[idx], p)
	g.count++
}

// QueryRadius appends to dst every point in cells overlapping the square [x-r, x+r] x [y-r, y+r]
// The result is a superset of the circle; callers re-check exact distance
func (g *SpatialGrid) QueryRadius(x, y, r float64, dst []*physics.Point) []*physics.Point {
	if g.cols == 0 || g.rows == 0 || !(r >= 0) {
		return dst
	}
	cols, rows := float64(g.cols), float64(g.rows)
	c0 := math.Floor((x - r) / g.cellSize)
	c1 := math.Floor((x + r) / g.cellSize)
	r0 := math.Floor((y - r) / g.cellSize)
	r1 := math.Floor((y + r) / g.cellSize)
	// Negated comparison also rejects NaN input
	if !(c1 >= 0 && r1 >= 0 && c0 < cols && r0 < rows && c0 <= c1 && r0 <= r1) {
		return dst
	}
	startCol, endCol := int(max(c0, 0)), int(min(c1, cols-1))
	startRow, endRow := int(max(r0, 0)), int(min(r1, rows-1))

	for row := startRow; row <= endRow; row++ {
		base := row * g.cols
		for col := startCol; col <= endCol; col++ {
			dst = append(dst, g.cells[base+col]...)
		}
	}
	return dst
}

// Len returns the number of points indexed since the last Clear
func (g *SpatialGrid) Len() int {
	return g.count
}

// Dims returns grid dimensions in cells
func (g *SpatialGrid) Dims() (cols, rows int) {
	return g.cols, g.rows
}

// CellSize returns the cell edge length in surface pixels
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}
