// Command pathgrid-snapshot scatters random barriers over a grid, runs the
// search from the top-left to the bottom-right corner and writes the
// explored grid as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/pathgrid/internal/app"
	"github.com/katalvlaran/pathgrid/render"
	"github.com/katalvlaran/pathgrid/session"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := cfg.Logger(os.Stderr)
	if err := run(cfg, logger, os.Stderr); err != nil {
		logger.Error("snapshot failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg *app.Config, logger *slog.Logger, metricsOut io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	s, err := session.New(cfg.Rows, cfg.Width,
		session.WithLogger(logger),
		session.WithMetrics(session.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}
	barriers, err := app.Scatter(s, cfg.Density, cfg.Seed)
	if err != nil {
		return err
	}
	logger.Info("layout ready",
		slog.Int("rows", cfg.Rows),
		slog.Int("barriers", barriers),
		slog.Int64("seed", cfg.Seed),
	)

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	res, err := s.Search(ctx, nil)
	if err != nil {
		return err
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("explored grid\n" + s.Grid().String())
	}

	if err := render.WritePNG(cfg.Out, s.Grid(), render.DefaultPalette()); err != nil {
		return err
	}
	logger.Info("snapshot written",
		slog.String("out", cfg.Out),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("cost", res.Cost),
	)

	if cfg.Metrics {
		return dumpMetrics(reg, metricsOut)
	}
	return nil
}

// dumpMetrics writes every gathered family in the text exposition format.
func dumpMetrics(g prometheus.Gatherer, w io.Writer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
