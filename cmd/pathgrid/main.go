//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathgrid/internal/app"
	"github.com/katalvlaran/pathgrid/session"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := cfg.Logger(os.Stderr)
	s, err := session.New(cfg.Rows, cfg.Width,
		session.WithLogger(logger),
		session.WithMetrics(session.NewMetrics(prometheus.DefaultRegisterer)),
	)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("A* Path Finding Algorithm")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Width)

	if err := ebiten.RunGame(app.New(s, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
