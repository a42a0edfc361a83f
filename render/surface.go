package render

// Surface is a 2D drawing target in the simulation's coordinate system
type Surface interface {
	// Size returns surface dimensions in surface pixels
	Size() (width, height float64)
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, paint Paint)
	StrokeCircle(cx, cy, radius, width float64, paint Paint)
	FillCircle(cx, cy, radius float64, paint Paint)
}

// Paint describes how a shape is colored
// Gradient takes precedence over Color; Blur > 0 requests a soft halo of that radius
type Paint struct {
	Color    RGB
	Gradient *LinearGradient
	Alpha    float64
	Blur     float64
}

// Solid returns an opaque single-color paint
func Solid(c RGB) Paint {
	return Paint{Color: c, Alpha: 1}
}

// ColorAt resolves the paint color at a surface position
func (p Paint) ColorAt(x, y float64) RGB {
	if p.Gradient != nil {
		return p.Gradient.At(x, y)
	}
	return p.Color
}
