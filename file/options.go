package file

import (
	"github.com/exseisdat/segyio/internal/options"
	"github.com/exseisdat/segyio/iodriver"
	"github.com/exseisdat/segyio/rules"
)

// config holds the resolved settings for one OpenInput/CreateOutput call,
// built up by applying Option values over these defaults.
type config struct {
	rule          *rules.Rule
	usFactor      float64
	chunkMax      uint64
	mode          iodriver.Mode
}

func defaultConfig() *config {
	return &config{
		rule:     rules.NewRule(false, true, false),
		usFactor: 1e-6,
	}
}

// Option configures an OpenInput/CreateOutput call, following the
// project's generic functional-options pattern.
type Option = options.Setting[*config]

// WithRule overrides the default field rule (source/receiver/CDP
// coordinates, inline, crossline) with r.
func WithRule(r *rules.Rule) Option {
	return options.NoError(func(c *config) { c.rule = r })
}

// WithMicrosecondFactor overrides the default 1e-6 factor ReadSampleInterval
// multiplies the on-disk microsecond value by.
func WithMicrosecondFactor(factor float64) Option {
	return options.NoError(func(c *config) { c.usFactor = factor })
}

// WithChunkMax overrides the iodriver chunk ceiling for this file's driver.
func WithChunkMax(max uint64) Option {
	return options.NoError(func(c *config) { c.chunkMax = max })
}

// WithIndependentMode selects iodriver.ModeIndependent instead of the
// default iodriver.ModeCollective.
func WithIndependentMode() Option {
	return options.NoError(func(c *config) { c.mode = iodriver.ModeIndependent })
}

func (c *config) driverConfig() iodriver.Config {
	return iodriver.Config{ChunkMax: c.chunkMax, Mode: c.mode}
}
