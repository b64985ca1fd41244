package config_test

import (
	"testing"

	"github.com/Krispeckt/sketchforge/config"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "pencil", cfg.ArtStyle)
	require.Equal(t, "line", cfg.Style)
	require.Equal(t, "line", cfg.Brush)
	require.Equal(t, 1, cfg.Stroke)
	require.Equal(t, 6, cfg.Intensity)
	require.Equal(t, 0, cfg.Resolution)
}

func TestFromValuesEmptyMapIsDefault(t *testing.T) {
	cfg := config.FromValues(map[string][]string{})
	require.Equal(t, config.Default(), cfg)
}

func TestFromValuesOverridesFields(t *testing.T) {
	cfg := config.FromValues(map[string][]string{
		"artStyle":  {"ink"},
		"style":     {"charcoal"},
		"brush":     {"hatch"},
		"stroke":    {"4"},
		"intensity": {"9"},
		"seed":      {"1234"},
		"colorize":  {"true"},
	})
	require.Equal(t, "ink", cfg.ArtStyle)
	require.Equal(t, "charcoal", cfg.Style)
	require.Equal(t, "hatch", cfg.Brush)
	require.Equal(t, 4, cfg.Stroke)
	require.Equal(t, 9, cfg.Intensity)
	require.Equal(t, int64(1234), cfg.Seed)
	require.True(t, cfg.Colorize)
}

func TestFromValuesMalformedIntFallsBackToDefault(t *testing.T) {
	cfg := config.FromValues(map[string][]string{"stroke": {"not-a-number"}})
	require.Equal(t, config.Default().Stroke, cfg.Stroke)
}

func TestFromValuesClampsRanges(t *testing.T) {
	cfg := config.FromValues(map[string][]string{
		"stroke":    {"999"},
		"intensity": {"-5"},
		"contrast":  {"500"},
	})
	require.Equal(t, 10, cfg.Stroke)
	require.Equal(t, 1, cfg.Intensity)
	require.Equal(t, 100, cfg.Contrast)
}

func TestFromValuesNegativeSmoothingClampsToZero(t *testing.T) {
	cfg := config.FromValues(map[string][]string{"smoothing": {"-3"}})
	require.Equal(t, 0, cfg.Smoothing)
}

func TestFromValuesResolutionDefaultsAspectTo1x1(t *testing.T) {
	cfg := config.FromValues(map[string][]string{"resolution": {"800"}})
	require.Equal(t, 800, cfg.Resolution)
	require.Equal(t, 1, cfg.AspectW)
	require.Equal(t, 1, cfg.AspectH)
}

func TestFromValuesResolutionMissingLeavesAspectZero(t *testing.T) {
	cfg := config.FromValues(map[string][]string{})
	require.Equal(t, 0, cfg.Resolution)
	require.Equal(t, 0, cfg.AspectW)
	require.Equal(t, 0, cfg.AspectH)
}

func TestFromValuesExplicitAspect(t *testing.T) {
	cfg := config.FromValues(map[string][]string{
		"resolution": {"1024"},
		"aspect":     {"16:9"},
	})
	require.Equal(t, 16, cfg.AspectW)
	require.Equal(t, 9, cfg.AspectH)
}

func TestFromValuesMalformedAspectFallsBackTo1x1(t *testing.T) {
	cfg := config.FromValues(map[string][]string{
		"resolution": {"1024"},
		"aspect":     {"garbage"},
	})
	require.Equal(t, 1, cfg.AspectW)
	require.Equal(t, 1, cfg.AspectH)
}

func TestFromValuesBoolFieldIsCaseInsensitive(t *testing.T) {
	cfg := config.FromValues(map[string][]string{"invert": {"TRUE"}})
	require.True(t, cfg.Invert)
}
