package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value    int
	name     string
	enabled  bool
	lastCall string
}

func (tc *testConfig) setValue(v int) error {
	if v < 0 {
		return errors.New("value cannot be negative")
	}
	tc.value = v
	tc.lastCall = "setValue"

	return nil
}

func (tc *testConfig) setName(name string) {
	tc.name = name
	tc.lastCall = "setName"
}

func (tc *testConfig) setEnabled(enabled bool) {
	tc.enabled = enabled
	tc.lastCall = "setEnabled"
}

func TestNewSetting(t *testing.T) {
	cfg := &testConfig{}

	t.Run("applies a function that can fail", func(t *testing.T) {
		s := NewSetting(func(c *testConfig) error {
			return c.setValue(42)
		})

		require.NoError(t, s.apply(cfg))
		require.Equal(t, 42, cfg.value)
		require.Equal(t, "setValue", cfg.lastCall)
	})

	t.Run("propagates the function's error", func(t *testing.T) {
		s := NewSetting(func(c *testConfig) error {
			return c.setValue(-1)
		})

		err := s.apply(cfg)
		require.ErrorContains(t, err, "value cannot be negative")
	})
}

func TestNoError(t *testing.T) {
	cfg := &testConfig{}

	s := NoError(func(c *testConfig) { c.setName("trace-a") })
	require.NoError(t, s.apply(cfg))
	require.Equal(t, "trace-a", cfg.name)
	require.Equal(t, "setName", cfg.lastCall)

	s = NoError(func(c *testConfig) { c.setEnabled(true) })
	require.NoError(t, s.apply(cfg))
	require.True(t, cfg.enabled)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}

	settings := []Setting[*testConfig]{
		NewSetting(func(c *testConfig) error { return c.setValue(5) }),
		NewSetting(func(c *testConfig) error { return c.setValue(-1) }),
		NoError(func(c *testConfig) { c.setName("should not be set") }),
	}

	err := Apply(cfg, settings...)
	require.ErrorContains(t, err, "value cannot be negative")
	require.Equal(t, 5, cfg.value, "earlier settings still take effect")
	require.Empty(t, cfg.name, "settings after the error are skipped")
}

func TestApply_InOrder(t *testing.T) {
	cfg := &testConfig{}

	settings := []Setting[*testConfig]{
		NewSetting(func(c *testConfig) error { return c.setValue(10) }),
		NoError(func(c *testConfig) { c.setName("trace-b") }),
		NoError(func(c *testConfig) { c.setEnabled(true) }),
	}

	require.NoError(t, Apply(cfg, settings...))
	require.Equal(t, 10, cfg.value)
	require.Equal(t, "trace-b", cfg.name)
	require.True(t, cfg.enabled)
	require.Equal(t, "setEnabled", cfg.lastCall, "settings apply in slice order")
}

func TestApply_NoSettings(t *testing.T) {
	cfg := &testConfig{}

	require.NoError(t, Apply(cfg))
	require.Zero(t, *cfg)
}

func TestApply_HelperConstructors(t *testing.T) {
	// Mirrors how file.WithRule/WithChunkMax etc. wrap NewSetting/NoError
	// behind a WithXxx(...) Option constructor.
	withValue := func(v int) Setting[*testConfig] {
		return NewSetting(func(c *testConfig) error { return c.setValue(v) })
	}
	withName := func(name string) Setting[*testConfig] {
		return NoError(func(c *testConfig) { c.setName(name) })
	}

	cfg := &testConfig{}
	require.NoError(t, Apply(cfg, withValue(100), withName("trace-c")))
	require.Equal(t, 100, cfg.value)
	require.Equal(t, "trace-c", cfg.name)
}

func TestSetting_GenericOverOtherTypes(t *testing.T) {
	var n int
	s := NoError(func(p *int) { *p = 42 })

	require.NoError(t, s.apply(&n))
	require.Equal(t, 42, n)
}
