package raster_test

import (
	"testing"

	"github.com/Krispeckt/sketchforge/raster"
	"github.com/stretchr/testify/require"
)

func TestSobelUniformImageHasNoEdges(t *testing.T) {
	g := raster.NewGray8(10, 10)
	g.Fill(128)
	out := raster.Sobel(g, 6)
	for _, v := range out.Pix {
		require.Equal(t, uint8(0), v)
	}
}

func TestSobelDetectsAVerticalEdge(t *testing.T) {
	g := raster.NewGray8(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if x >= 3 {
				g.Put(x, y, 255)
			}
		}
	}
	out := raster.Sobel(g, 6)
	require.Greater(t, out.Get(3, 3), uint8(0), "the column straddling the edge must register gradient")
}

func TestSobelScalesWithIntensity(t *testing.T) {
	g := raster.NewGray8(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if x >= 3 {
				g.Put(x, y, 255)
			}
		}
	}
	low := raster.Sobel(g, 1)
	high := raster.Sobel(g, 12)
	require.GreaterOrEqual(t, int(high.Get(3, 3)), int(low.Get(3, 3)))
}
