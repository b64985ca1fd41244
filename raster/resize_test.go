package raster_test

import (
	"testing"

	"github.com/Krispeckt/sketchforge/raster"
	"github.com/stretchr/testify/require"
)

func TestResizeForTargetCapsLongerSide(t *testing.T) {
	src := raster.NewRgb8(2400, 1200)
	out := raster.ResizeForTarget(src, 0, 0, 0)
	require.Equal(t, raster.MaxDimension, out.Width)
	require.Equal(t, raster.MaxDimension/2, out.Height)
}

func TestResizeForTargetLeavesSmallImagesAlone(t *testing.T) {
	src := raster.NewRgb8(100, 80)
	out := raster.ResizeForTarget(src, 0, 0, 0)
	require.Same(t, src, out)
}

func TestResizeForTargetExplicitResolutionAndAspect(t *testing.T) {
	src := raster.NewRgb8(400, 400)
	out := raster.ResizeForTarget(src, 200, 4, 3)
	require.Equal(t, 200, out.Width)
	require.Equal(t, 150, out.Height)
}

func TestResizeForTargetResolutionWithoutAspectFallsBackToCap(t *testing.T) {
	src := raster.NewRgb8(100, 80)
	out := raster.ResizeForTarget(src, 200, 0, 0)
	require.Same(t, src, out, "aspectW<=0 must not trigger the explicit-resolution branch")
}

func TestResizeToExactDimensions(t *testing.T) {
	src := raster.NewRgb8(10, 10)
	out := raster.ResizeTo(src, 5, 20)
	require.Equal(t, 5, out.Width)
	require.Equal(t, 20, out.Height)
}
