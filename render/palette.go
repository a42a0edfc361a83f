package render

// Palette is the color set of one strand
type Palette struct {
	Top    RGB
	Middle RGB
	Bottom RGB
	Glow   RGB
}

// Palettes cycle across strands by index
var Palettes = [...]Palette{
	{Top: MustHex("#64B5F6"), Middle: MustHex("#E1F5FE"), Bottom: MustHex("#1976D2"), Glow: MustHex("#64B5F6")}, // Blue
	{Top: MustHex("#81C784"), Middle: MustHex("#E8F5E9"), Bottom: MustHex("#388E3C"), Glow: MustHex("#81C784")}, // Green
	{Top: MustHex("#E57373"), Middle: MustHex("#FFEBEE"), Bottom: MustHex("#D32F2F"), Glow: MustHex("#E57373")}, // Red
	{Top: MustHex("#BA68C8"), Middle: MustHex("#F3E5F5"), Bottom: MustHex("#7B1FA2"), Glow: MustHex("#BA68C8")}, // Purple
	{Top: MustHex("#FFD54F"), Middle: MustHex("#FFFDE7"), Bottom: MustHex("#FFA000"), Glow: MustHex("#FFD54F")}, // Yellow
}

// PaletteFor returns the palette for a strand color index
func PaletteFor(i int) Palette {
	n := len(Palettes)
	return Palettes[((i%n)+n)%n]
}
