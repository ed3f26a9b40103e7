package app

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/session"
)

// Scatter paints start in the top-left corner and end in the bottom-right
// one, then turns each other cell into a barrier with probability density.
// The layout depends only on the grid size, density and seed.
// It returns the number of barriers painted.
func Scatter(s *session.Session, density float64, seed int64) (int, error) {
	n := s.Grid().Rows()
	if n < 2 {
		return 0, fmt.Errorf("%w: %d rows leave no room for two corners", ErrBadConfig, n)
	}
	if err := s.Clear(); err != nil {
		return 0, err
	}
	corners := []grid.Position{{Row: 0, Col: 0}, {Row: n - 1, Col: n - 1}}
	for _, p := range corners {
		if _, err := s.Paint(p); err != nil {
			return 0, err
		}
	}

	rng := rand.New(rand.NewSource(seed))
	var barriers int
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			p := grid.Position{Row: r, Col: c}
			if p == corners[0] || p == corners[1] || rng.Float64() >= density {
				continue
			}
			if _, err := s.Paint(p); err != nil {
				return barriers, err
			}
			barriers++
		}
	}
	return barriers, nil
}
