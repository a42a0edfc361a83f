package render

import (
	"errors"
	"strconv"
	"testing"
)

func TestBlend(t *testing.T) {
	tests := []struct {
		name  string
		c     RGB
		src   RGB
		alpha float64
		want  RGB
	}{
		{"opaque", RGBBlack, RGBWhite, 1, RGBWhite},
		{"transparent", RGBBlack, RGBWhite, 0, RGBBlack},
		{"half rounds", RGBBlack, RGBWhite, 0.5, RGB{128, 128, 128}},
		{"over one", RGBBlack, RGBWhite, 2, RGBWhite},
		{"negative", RGBWhite, RGBBlack, -1, RGBWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.c, tt.src, tt.alpha); got != tt.want {
				t.Errorf("Blend(%v, %v, %v) = %v, want %v", tt.c, tt.src, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestAddAndScaleClamp(t *testing.T) {
	if got := Add(RGB{200, 100, 0}, RGB{100, 100, 10}); got != (RGB{255, 200, 10}) {
		t.Errorf("Add = %v, want {255 200 10}", got)
	}
	if got := Scale(RGB{100, 200, 50}, 2); got != (RGB{200, 255, 100}) {
		t.Errorf("Scale = %v, want {200 255 100}", got)
	}
	if got := Scale(RGB{100, 200, 50}, -1); got != RGBBlack {
		t.Errorf("Scale negative = %v, want black", got)
	}
}

func TestLerp(t *testing.T) {
	a, b := RGB{0, 100, 200}, RGB{200, 100, 0}
	if got := Lerp(a, b, -1); got != a {
		t.Errorf("Lerp below range = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Lerp above range = %v, want %v", got, b)
	}
	if got := Lerp(a, b, 0.25); got != (RGB{50, 100, 150}) {
		t.Errorf("Lerp(0.25) = %v, want {50 100 150}", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#64B5F6", RGB{0x64, 0xB5, 0xF6}, false},
		{"1976d2", RGB{0x19, 0x76, 0xD2}, false},
		{"#000000", RGBBlack, false},
		{"#FFF", RGB{}, true},
		{"#GGGGGG", RGB{}, true},
		{"", RGB{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	_, err := ParseHex("#12345Z")
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("expected wrapped *strconv.NumError, got %v", err)
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex did not panic on invalid input")
		}
	}()
	MustHex("nope")
}

func TestPaletteFor(t *testing.T) {
	if PaletteFor(0) != Palettes[0] || PaletteFor(5) != Palettes[0] || PaletteFor(7) != Palettes[2] {
		t.Error("PaletteFor does not cycle by index")
	}
	if PaletteFor(-1) != Palettes[len(Palettes)-1] {
		t.Error("PaletteFor(-1) should wrap to the last palette")
	}
}
