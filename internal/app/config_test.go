package app

import (
	"bytes"
	"context"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/session"
)

func TestNewConfig_Defaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, 50, c.Rows)
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 60, c.TPS)
	require.NoError(t, c.Validate())
}

func TestConfig_Bind(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-rows", "20", "-width", "400", "-seed", "7", "-density", "0.25",
		"-out", "x.png", "-timeout", "2s", "-metrics", "-v",
	}))

	assert.Equal(t, 20, c.Rows)
	assert.Equal(t, 400, c.Width)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, 0.25, c.Density)
	assert.Equal(t, "x.png", c.Out)
	assert.Equal(t, 2*time.Second, c.Timeout)
	assert.True(t, c.Metrics)
	assert.True(t, c.Verbose)
	assert.Equal(t, 60, c.TPS, "unset flags keep defaults")
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero rows":        func(c *Config) { c.Rows = 0 },
		"narrow":           func(c *Config) { c.Width = c.Rows - 1 },
		"zero tps":         func(c *Config) { c.TPS = 0 },
		"negative density": func(c *Config) { c.Density = -0.1 },
		"full density":     func(c *Config) { c.Density = 1 },
		"no output":        func(c *Config) { c.Out = "" },
		"negative timeout": func(c *Config) { c.Timeout = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := NewConfig()
			mutate(c)
			require.ErrorIs(t, c.Validate(), ErrBadConfig)
		})
	}
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	c := NewConfig()
	c.Logger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())

	c.Verbose = true
	c.Logger(&buf).Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestScatter(t *testing.T) {
	s, err := session.New(20, 200)
	require.NoError(t, err)

	n, err := Scatter(s, 0, 1)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, grid.Position{Row: 0, Col: 0}, s.StartCell().Pos())
	assert.Equal(t, grid.Position{Row: 19, Col: 19}, s.EndCell().Pos())

	n, err = Scatter(s, 0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, n, s.Grid().Count(grid.Barrier))
	assert.InDelta(t, 199, n, 80)
	first := s.Grid().String()

	_, err = Scatter(s, 0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, first, s.Grid().String(), "same seed, same layout")

	_, err = Scatter(s, 0.5, 2)
	require.NoError(t, err)
	assert.NotEqual(t, first, s.Grid().String())
}

func TestScatter_Errors(t *testing.T) {
	s, err := session.New(1, 10)
	require.NoError(t, err)
	_, err = Scatter(s, 0.1, 1)
	require.ErrorIs(t, err, ErrBadConfig)

	s, err = session.New(3, 30)
	require.NoError(t, err)
	_, err = Scatter(s, 0, 1)
	require.NoError(t, err)
	_, err = s.Start(context.Background(), nil)
	require.NoError(t, err)
	_, err = Scatter(s, 0, 1)
	require.ErrorIs(t, err, session.ErrBusy)
}
