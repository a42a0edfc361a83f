package render

import (
	"math"
	"testing"
)

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(10, 5, 8, 16)
	w, h := c.Size()
	if w != 80 || h != 80 {
		t.Errorf("Size() = %vx%v, want 80x80", w, h)
	}
	cols, rows := c.Dims()
	if cols != 10 || rows != 5 {
		t.Errorf("Dims() = %dx%d, want 10x5", cols, rows)
	}
}

func TestCanvasHorizontalLine(t *testing.T) {
	c := NewCanvas(10, 5, 8, 16)
	c.StrokeLine(0, 2, 79, 2, 1, Solid(RGBWhite))

	for col := 0; col < 10; col++ {
		cell := c.Cell(col, 0)
		if cell.Rune != '⠉' {
			t.Errorf("cell (%d, 0) rune = %q, want '⠉'", col, cell.Rune)
		}
		if cell.Fg != RGBWhite {
			t.Errorf("cell (%d, 0) fg = %v, want white", col, cell.Fg)
		}
	}
	for row := 1; row < 5; row++ {
		for col := 0; col < 10; col++ {
			if r := c.Cell(col, row).Rune; r != ' ' {
				t.Errorf("cell (%d, %d) rune = %q, want blank", col, row, r)
			}
		}
	}
}

func TestCanvasVerticalLine(t *testing.T) {
	c := NewCanvas(2, 2, 8, 16)
	// Left dot column of cell column 0, full height
	c.StrokeLine(1, 0, 1, 31, 1, Solid(RGBWhite))

	for row := 0; row < 2; row++ {
		if r := c.Cell(0, row).Rune; r != '⡇' {
			t.Errorf("cell (0, %d) rune = %q, want '⡇'", row, r)
		}
		if r := c.Cell(1, row).Rune; r != ' ' {
			t.Errorf("cell (1, %d) rune = %q, want blank", row, r)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4, 8, 16)
	c.FillCircle(16, 32, 10, Paint{Color: RGBWhite, Alpha: 1, Blur: 4})
	c.Clear()

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cell := c.Cell(col, row)
			if cell.Rune != ' ' || cell.HasBg || cell.Bg != c.Background() {
				t.Errorf("cell (%d, %d) not cleared: %+v", col, row, cell)
			}
		}
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(4, 4, 8, 16)
	c.StrokeLine(-100, -100, -50, -10, 2, Solid(RGBWhite))
	c.StrokeLine(200, 10, 300, 10, 2, Solid(RGBWhite))
	c.StrokeLine(math.NaN(), 0, 10, 10, 2, Solid(RGBWhite))
	c.StrokeLine(0, 0, math.Inf(1), 10, 2, Solid(RGBWhite))
	c.FillCircle(math.NaN(), math.NaN(), 5, Solid(RGBWhite))
	c.StrokeCircle(-500, -500, 10, 1, Solid(RGBWhite))

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if r := c.Cell(col, row).Rune; r != ' ' {
				t.Errorf("cell (%d, %d) drawn by out-of-range shape: %q", col, row, r)
			}
		}
	}

	if cell := c.Cell(-1, 99); cell.Rune != ' ' || cell.Bg != c.Background() {
		t.Errorf("Cell out of range = %+v, want blank background", cell)
	}
}

func TestCanvasTransparentPaintDrawsNothing(t *testing.T) {
	c := NewCanvas(4, 4, 8, 16)
	c.StrokeLine(0, 0, 31, 63, 2, Paint{Color: RGBWhite})
	if r := c.Cell(0, 0).Rune; r != ' ' {
		t.Errorf("zero-alpha stroke drew %q", r)
	}
}

func TestCanvasFillCircleCoversDisc(t *testing.T) {
	c := NewCanvas(8, 4, 8, 16)
	c.FillCircle(32, 32, 12, Solid(RGBWhite))

	if c.Cell(3, 1).Rune == ' ' || c.Cell(4, 1).Rune == ' ' || c.Cell(3, 2).Rune == ' ' || c.Cell(4, 2).Rune == ' ' {
		t.Error("disc did not reach the four cells around its center")
	}
	if r := c.Cell(0, 0).Rune; r != ' ' {
		t.Errorf("distant cell drawn: %q", r)
	}
}

func TestCanvasAlphaBlendsForeground(t *testing.T) {
	c := NewCanvas(2, 1, 8, 16)
	c.StrokeLine(0, 1, 15, 1, 1, Paint{Color: RGBWhite, Alpha: 0.5})

	want := Blend(c.Background(), RGBWhite, 0.5)
	if fg := c.Cell(0, 0).Fg; fg != want {
		t.Errorf("fg = %v, want %v", fg, want)
	}
}

func TestCanvasBlurTintsOncePerStroke(t *testing.T) {
	c := NewCanvas(6, 3, 8, 16)
	red := RGB{255, 0, 0}
	// Many samples inside one cell must not compound the halo
	c.StrokeLine(20, 24, 22, 24, 1, Paint{Color: red, Alpha: 0.2, Blur: 3})

	want := Blend(c.Background(), red, 0.2)
	cell := c.Cell(2, 1)
	if !cell.HasBg || cell.Bg != want {
		t.Errorf("halo bg = %+v, want %v", cell, want)
	}
	// Beyond the blur radius
	if c.Cell(0, 0).HasBg {
		t.Error("halo reached a distant cell")
	}

	// A second stroke compounds once more
	c.StrokeLine(20, 24, 22, 24, 1, Paint{Color: red, Alpha: 0.2, Blur: 3})
	if got := c.Cell(2, 1).Bg; got != Blend(want, red, 0.2) {
		t.Errorf("second stroke bg = %v, want %v", got, Blend(want, red, 0.2))
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(4, 4, 8, 16)
	c.FillCircle(16, 32, 10, Solid(RGBWhite))

	c.Resize(2, 1)
	cols, rows := c.Dims()
	if cols != 2 || rows != 1 {
		t.Fatalf("Dims() = %dx%d, want 2x1", cols, rows)
	}
	if r := c.Cell(0, 0).Rune; r != ' ' {
		t.Errorf("resized canvas kept content %q", r)
	}

	c.Resize(-1, 3)
	if w, h := c.Size(); w != 0 || h != 48 {
		t.Errorf("Size() after negative resize = %vx%v, want 0x48", w, h)
	}
	c.StrokeLine(0, 0, 10, 10, 1, Solid(RGBWhite))
}
