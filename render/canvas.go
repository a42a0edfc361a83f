package render

import (
	"math"
)

// Braille dot bits indexed [row][col] within a 2x4 cell
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleBase is U+2800, the empty braille pattern
const brailleBase = 0x2800

// CellView is the presentable state of one canvas cell
type CellView struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	HasBg bool
}

type canvasCell struct {
	dots      uint8
	fg        RGB
	bg        RGB
	hasBg     bool
	fgBase    RGB
	fgStamp   uint32
	tintStamp uint32
}

// Canvas is a Surface rasterized onto terminal cells, each cell a 2x4 braille dot matrix
// Surface pixels map to cells by pixelsPerColumn x pixelsPerRow
type Canvas struct {
	cols, rows   int
	pxCol, pxRow float64
	dotW, dotH   float64
	cells        []canvasCell
	background   RGB
	stroke       uint32
}

// NewCanvas creates a canvas of cols x rows cells
func NewCanvas(cols, rows int, pixelsPerColumn, pixelsPerRow float64) *Canvas {
	c := &Canvas{
		pxCol:      pixelsPerColumn,
		pxRow:      pixelsPerRow,
		dotW:       pixelsPerColumn / 2,
		dotH:       pixelsPerRow / 4,
		background: RgbBackground,
	}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts cell dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	size := cols * rows
	if cap(c.cells) < size {
		c.cells = make([]canvasCell, size)
	} else {
		c.cells = c.cells[:size]
	}
	c.cols = cols
	c.rows = rows
	c.Clear()
}

// Dims returns canvas dimensions in cells
func (c *Canvas) Dims() (cols, rows int) {
	return c.cols, c.rows
}

// Size returns surface dimensions in pixels
func (c *Canvas) Size() (width, height float64) {
	return float64(c.cols) * c.pxCol, float64(c.rows) * c.pxRow
}

// Background returns the color of untouched cells
func (c *Canvas) Background() RGB {
	return c.background
}

// Clear resets all cells to empty
func (c *Canvas) Clear() {
	clear(c.cells)
	c.stroke = 0
}

// Cell returns the presentable view of a cell, empty for out-of-range coordinates
func (c *Canvas) Cell(col, row int) CellView {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return CellView{Rune: ' ', Fg: c.background, Bg: c.background}
	}
	cell := &c.cells[row*c.cols+col]
	v := CellView{Rune: ' ', Fg: cell.fg, Bg: c.background, HasBg: cell.hasBg}
	if cell.dots != 0 {
		v.Rune = rune(brailleBase + int(cell.dots))
	}
	if cell.hasBg {
		v.Bg = cell.bg
	}
	return v
}

// dotAt maps a pixel position to dot coordinates; ok is false outside the canvas
func (c *Canvas) dotAt(px, py float64) (dx, dy int, ok bool) {
	fx := math.Floor(px / c.dotW)
	fy := math.Floor(py / c.dotH)
	// Negated comparison also rejects NaN
	if !(fx >= 0 && fy >= 0 && fx < float64(c.cols*2) && fy < float64(c.rows*4)) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// setDot lights one dot and blends its cell foreground toward col
// Blending starts from the cell's color before the current stroke so overlapping samples do not compound
func (c *Canvas) setDot(dx, dy int, col RGB, alpha float64) {
	cell := &c.cells[(dy/4)*c.cols+dx/2]
	if cell.fgStamp != c.stroke {
		cell.fgStamp = c.stroke
		cell.fgBase = cell.fg
		if cell.dots == 0 {
			cell.fgBase = c.background
			if cell.hasBg {
				cell.fgBase = cell.bg
			}
		}
	}
	cell.dots |= brailleBits[dy%4][dx%2]
	cell.fg = Blend(cell.fgBase, col, alpha)
}

// tint blends a cell background toward col at most once per stroke
func (c *Canvas) tint(col, row int, color RGB, alpha float64) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	cell := &c.cells[row*c.cols+col]
	if cell.tintStamp == c.stroke {
		return
	}
	cell.tintStamp = c.stroke
	base := c.background
	if cell.hasBg {
		base = cell.bg
	}
	cell.bg = Blend(base, color, alpha)
	cell.hasBg = true
}

// stamp lights every dot whose center lies within half of (px, py), always including the containing dot
func (c *Canvas) stamp(px, py, half float64, paint Paint) {
	if math.IsNaN(px) || math.IsNaN(py) {
		return
	}
	color := paint.ColorAt(px, py)
	if dx, dy, ok := c.dotAt(px, py); ok {
		c.setDot(dx, dy, color, paint.Alpha)
	}
	if half > math.Min(c.dotW, c.dotH)/2 {
		x0 := int(math.Floor((px - half) / c.dotW))
		x1 := int(math.Floor((px + half) / c.dotW))
		y0 := int(math.Floor((py - half) / c.dotH))
		y1 := int(math.Floor((py + half) / c.dotH))
		halfSq := half * half
		for dy := max(y0, 0); dy <= min(y1, c.rows*4-1); dy++ {
			cy := (float64(dy) + 0.5) * c.dotH
			for dx := max(x0, 0); dx <= min(x1, c.cols*2-1); dx++ {
				cx := (float64(dx) + 0.5) * c.dotW
				if (cx-px)*(cx-px)+(cy-py)*(cy-py) <= halfSq {
					c.setDot(dx, dy, color, paint.Alpha)
				}
			}
		}
	}
	if paint.Blur > 0 {
		c.halo(px, py, paint.Blur, color, paint.Alpha)
	}
}

// halo tints backgrounds of cells whose area intersects the blur square around (px, py)
func (c *Canvas) halo(px, py, blur float64, color RGB, alpha float64) {
	col0 := int(math.Floor((px - blur) / c.pxCol))
	col1 := int(math.Floor((px + blur) / c.pxCol))
	row0 := int(math.Floor((py - blur) / c.pxRow))
	row1 := int(math.Floor((py + blur) / c.pxRow))
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			c.tint(col, row, color, alpha)
		}
	}
}

// sampleStep is the path sampling interval, half a dot so no dot is skipped
func (c *Canvas) sampleStep() float64 {
	return math.Min(c.dotW, c.dotH) / 2
}

// StrokeLine draws a segment of the given width
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, paint Paint) {
	if c.cols == 0 || c.rows == 0 || paint.Alpha <= 0 {
		return
	}
	c.stroke++
	length := math.Hypot(x1-x0, y1-y0)
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return
	}
	steps := int(math.Ceil(length/c.sampleStep())) + 1
	half := width / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.stamp(x0+(x1-x0)*t, y0+(y1-y0)*t, half, paint)
	}
}

// StrokeCircle draws a circle outline of the given width
func (c *Canvas) StrokeCircle(cx, cy, radius, width float64, paint Paint) {
	if c.cols == 0 || c.rows == 0 || paint.Alpha <= 0 || !(radius > 0) {
		return
	}
	c.stroke++
	steps := max(8, int(math.Ceil(2*math.Pi*radius/c.sampleStep())))
	half := width / 2
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.stamp(cx+radius*math.Cos(a), cy+radius*math.Sin(a), half, paint)
	}
}

// FillCircle draws a filled disc
func (c *Canvas) FillCircle(cx, cy, radius float64, paint Paint) {
	if c.cols == 0 || c.rows == 0 || paint.Alpha <= 0 || !(radius >= 0) {
		return
	}
	c.stroke++
	c.stamp(cx, cy, radius, paint)
}
