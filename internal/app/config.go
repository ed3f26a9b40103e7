package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// ErrBadConfig marks an invalid flag combination.
var ErrBadConfig = errors.New("app: invalid config")

// Config represents the command-line parameters of the binaries.
type Config struct {
	Rows    int
	Width   int
	TPS     int
	Seed    int64
	Density float64
	Out     string
	Timeout time.Duration
	Metrics bool
	Verbose bool
}

// NewConfig returns a Config populated with the classic defaults: a 50×50
// grid in an 800 pixel window.
func NewConfig() *Config {
	return &Config{Rows: 50, Width: 800, TPS: 60, Seed: 42, Density: 0.3, Out: "pathgrid.png", Timeout: 10 * time.Second}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "cells per side")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second; one expansion per tick")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random barriers")
	fs.Float64Var(&c.Density, "density", c.Density, "share of cells turned into barriers")
	fs.StringVar(&c.Out, "out", c.Out, "PNG output path")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "cancel a headless run after this long")
	fs.BoolVar(&c.Metrics, "metrics", c.Metrics, "print run metrics to stderr")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("%w: rows %d", ErrBadConfig, c.Rows)
	case c.Width < c.Rows:
		return fmt.Errorf("%w: width %d below rows %d", ErrBadConfig, c.Width, c.Rows)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrBadConfig, c.TPS)
	case c.Density < 0 || c.Density >= 1:
		return fmt.Errorf("%w: density %v outside [0,1)", ErrBadConfig, c.Density)
	case c.Out == "":
		return fmt.Errorf("%w: empty output path", ErrBadConfig)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout %v", ErrBadConfig, c.Timeout)
	}
	return nil
}

// Logger returns a text logger writing to w, at Debug level when Verbose.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
