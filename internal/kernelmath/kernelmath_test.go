package kernelmath_test

import (
	"math"
	"testing"

	"github.com/Krispeckt/sketchforge/internal/kernelmath"
	"github.com/stretchr/testify/require"
)

func TestSmoothstepEndpoints(t *testing.T) {
	require.Equal(t, 0.0, kernelmath.Smoothstep(0))
	require.Equal(t, 1.0, kernelmath.Smoothstep(1))
	require.Equal(t, 0.5, kernelmath.Smoothstep(0.5))
	require.Equal(t, 0.0, kernelmath.Smoothstep(-2), "below-range input clamps to 0")
	require.Equal(t, 1.0, kernelmath.Smoothstep(2), "above-range input clamps to 1")
}

func TestBandFactor(t *testing.T) {
	require.Equal(t, 0.0, kernelmath.BandFactor(10, 50, 20))
	require.Equal(t, 1.0, kernelmath.BandFactor(90, 50, 20))
	mid := kernelmath.BandFactor(60, 50, 20)
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 1.0)
}

func TestBandFactorZeroSoftnessIsHardStep(t *testing.T) {
	require.Equal(t, 0.0, kernelmath.BandFactor(49, 50, 0))
	require.Equal(t, 1.0, kernelmath.BandFactor(51, 50, 0))
}

func TestSCurveMidpointContinuity(t *testing.T) {
	require.InDelta(t, 0.5, kernelmath.SCurve(0.5), 1e-9)
	require.Equal(t, 0.0, kernelmath.SCurve(0))
	require.Equal(t, 1.0, kernelmath.SCurve(1))
}

func TestInkScale(t *testing.T) {
	require.Equal(t, 1.0, kernelmath.InkScale(0, 0), "zero alpha is a no-op regardless of ink")
	require.Equal(t, 0.0, kernelmath.InkScale(1, 0), "full alpha onto black ink zeroes the pixel")
}

func TestDGridDistancePeriodic(t *testing.T) {
	d1 := kernelmath.DGridDistance(3, 4, 0.7, 10)
	// One full spacing along the line normal (-sin θ, cos θ) lands on the
	// same distance value.
	d2 := kernelmath.DGridDistance(3-10*math.Sin(0.7), 4+10*math.Cos(0.7), 0.7, 10)
	require.InDelta(t, d1, d2, 1e-9)
	require.GreaterOrEqual(t, d1, 0.0)
	require.Less(t, d1, 10.0)
}

func TestOnHatchLine(t *testing.T) {
	require.True(t, kernelmath.OnHatchLine(0, 10, 2))
	require.True(t, kernelmath.OnHatchLine(9.5, 10, 2))
	require.False(t, kernelmath.OnHatchLine(5, 10, 2))
}

func TestMax0(t *testing.T) {
	require.Equal(t, 0.0, kernelmath.Max0(-5))
	require.Equal(t, 3.0, kernelmath.Max0(3))
}

func TestClampIntAndFloat(t *testing.T) {
	require.Equal(t, 0, kernelmath.ClampInt(-5, 0, 10))
	require.Equal(t, 10, kernelmath.ClampInt(50, 0, 10))
	require.Equal(t, 5, kernelmath.ClampInt(5, 0, 10))
	require.Equal(t, 0.0, kernelmath.ClampF64(-5, 0, 10))
	require.Equal(t, 10.0, kernelmath.ClampF64(50, 0, 10))
}

func TestRoundInt(t *testing.T) {
	require.Equal(t, 3, kernelmath.RoundInt(2.5))
	require.Equal(t, -3, kernelmath.RoundInt(-2.5))
	require.Equal(t, 2, kernelmath.RoundInt(2.4))
}
