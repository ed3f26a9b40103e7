package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/pathgrid/grid"
)

// LineColor is the color of the grid lines.
var LineColor = Grey

// Draw paints g into a new drawing context. A nil palette means
// DefaultPalette.
func Draw(g *grid.Grid, p Palette) *gg.Context {
	if p == nil {
		p = DefaultPalette()
	}
	w := g.PixelWidth()
	dc := gg.NewContext(w, w)
	dc.SetColor(White)
	dc.Clear()

	g.Each(func(c *grid.Cell) {
		size := float64(c.Size())
		dc.SetColor(p.Color(c.State()))
		dc.DrawRectangle(float64(c.Col())*size, float64(c.Row())*size, size, size)
		dc.Fill()
	})

	dc.SetColor(LineColor)
	dc.SetLineWidth(1)
	gap := float64(g.CellSize())
	for i := 0; i < g.Rows(); i++ {
		at := float64(i) * gap
		dc.DrawLine(0, at, float64(w), at)
		dc.DrawLine(at, 0, at, float64(w))
	}
	dc.Stroke()

	return dc
}

// DrawPNG renders g and writes it to w as PNG.
func DrawPNG(w io.Writer, g *grid.Grid, p Palette) error {
	if g == nil {
		return fmt.Errorf("render: nil grid")
	}
	if err := Draw(g, p).EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}
	return nil
}

// WritePNG renders g into the file at path, replacing it.
func WritePNG(path string, g *grid.Grid, p Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err = DrawPNG(bw, g, p); err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
