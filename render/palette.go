package render

import (
	"image/color"

	"github.com/katalvlaran/pathgrid/grid"
)

// Named colors of the default scheme.
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{A: 255}
	Red       = color.RGBA{R: 255, A: 255}
	Green     = color.RGBA{G: 255, A: 255}
	Purple    = color.RGBA{R: 128, B: 128, A: 255}
	Orange    = color.RGBA{R: 255, G: 165, A: 255}
	Grey      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Turquoise = color.RGBA{R: 64, G: 224, B: 208, A: 255}
)

// Palette maps cell states to fill colors. States missing from the map
// are drawn white.
type Palette map[grid.CellState]color.RGBA

// DefaultPalette returns a fresh copy of the default scheme.
func DefaultPalette() Palette {
	return Palette{
		grid.Unvisited: White,
		grid.Start:     Orange,
		grid.End:       Turquoise,
		grid.Barrier:   Black,
		grid.Frontier:  Green,
		grid.Visited:   Red,
		grid.OnPath:    Purple,
	}
}

// Color returns the fill color for s.
func (p Palette) Color(s grid.CellState) color.RGBA {
	if c, ok := p[s]; ok {
		return c
	}
	return White
}
