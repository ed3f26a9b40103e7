//go:build ebiten

package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/render"
	"github.com/katalvlaran/pathgrid/session"
)

// Game adapts a session to the ebiten.Game interface.
//
// Left mouse paints start, end and barriers, right mouse erases, space
// runs the search one expansion per tick, c clears (stopping a running
// search) and q or escape quits. Edits are ignored while a run is in
// progress.
type Game struct {
	s       *session.Session
	run     *session.Run
	palette render.Palette
	logger  *slog.Logger
}

// New constructs a Game over s.
func New(s *session.Session, logger *slog.Logger) *Game {
	return &Game{s: s, palette: render.DefaultPalette(), logger: logger}
}

// Update handles input and advances a running search by one expansion.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.run != nil && !g.run.Done() {
		if !inpututil.IsKeyJustPressed(ebiten.KeyC) {
			g.run.Next()
			return nil
		}
		g.run.Abort()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.run = nil
		if err := g.s.Clear(); err != nil {
			g.logger.Warn("clear", slog.Any("err", err))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.start()
	}

	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if p, err := g.s.PositionAt(ebiten.CursorPosition()); err == nil {
			_, _ = g.s.Paint(p)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		if p, err := g.s.PositionAt(ebiten.CursorPosition()); err == nil {
			_ = g.s.Erase(p)
		}
	}
	return nil
}

func (g *Game) start() {
	run, err := g.s.Start(context.Background(), nil)
	switch {
	case errors.Is(err, session.ErrNoStart), errors.Is(err, session.ErrNoEnd):
		g.logger.Info("paint start and end before running")
	case err != nil:
		g.logger.Error("start run", slog.Any("err", err))
	default:
		g.run = run
	}
}

// Draw renders every cell and the grid lines.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.White)
	gr := g.s.Grid()
	size := float32(gr.CellSize())
	gr.Each(func(c *grid.Cell) {
		vector.DrawFilledRect(screen, float32(c.Col())*size, float32(c.Row())*size, size, size, g.palette.Color(c.State()), false)
	})

	w := float32(gr.PixelWidth())
	for i := 0; i < gr.Rows(); i++ {
		at := float32(i) * size
		vector.StrokeLine(screen, 0, at, w, at, 1, render.LineColor, false)
		vector.StrokeLine(screen, at, 0, at, w, 1, render.LineColor, false)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.s.Grid().PixelWidth()
	return w, w
}
