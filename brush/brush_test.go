package brush_test

import (
	"testing"

	"github.com/Krispeckt/sketchforge/brush"
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
	"github.com/stretchr/testify/require"
)

func solidCanvas(w, h int, v uint8) *raster.Gray8 {
	g := raster.NewGray8(w, h)
	g.Fill(v)
	return g
}

func TestApplyLineIsPassthrough(t *testing.T) {
	canvas := solidCanvas(20, 20, 120)
	out := brush.Apply(canvas, "line", 6, 2, prng.New(1))
	require.Same(t, canvas, out)
}

func TestApplyUnknownNameIsPassthrough(t *testing.T) {
	canvas := solidCanvas(20, 20, 120)
	out := brush.Apply(canvas, "nonexistent", 6, 2, prng.New(1))
	require.Same(t, canvas, out)
}

func TestApplyHatchDarkensSomePixels(t *testing.T) {
	canvas := solidCanvas(60, 60, 60) // below the tone threshold everywhere
	out := brush.Apply(canvas, "hatch", 6, 2, prng.New(1))
	darker := false
	for i, v := range out.Pix {
		if v < canvas.Pix[i] {
			darker = true
			break
		}
	}
	require.True(t, darker, "hatch pass must darken pixels along hatch lines")
}

func TestApplyHatchLeavesLightCanvasAlone(t *testing.T) {
	canvas := solidCanvas(40, 40, 250) // well above the tone threshold
	out := brush.Apply(canvas, "hatch", 6, 2, prng.New(1))
	require.Equal(t, canvas.Pix, out.Pix)
}

func TestApplyCrosshatchDarkensAtLeastAsMuchAsHatch(t *testing.T) {
	canvas := solidCanvas(60, 60, 60)
	hatched := brush.Apply(canvas.Clone(), "hatch", 6, 2, prng.New(1))
	crossed := brush.Apply(canvas.Clone(), "crosshatch", 6, 2, prng.New(1))

	hatchDark, crossDark := 0, 0
	for i := range hatched.Pix {
		if hatched.Pix[i] < canvas.Pix[i] {
			hatchDark++
		}
		if crossed.Pix[i] < canvas.Pix[i] {
			crossDark++
		}
	}
	require.GreaterOrEqual(t, crossDark, hatchDark, "a second crossing pass should only add darkened pixels")
}

func TestApplyCharcoalIsDeterministicPerSeed(t *testing.T) {
	canvas := solidCanvas(50, 50, 100)
	a := brush.Apply(canvas.Clone(), "charcoal", 6, 3, prng.New(42))
	b := brush.Apply(canvas.Clone(), "charcoal", 6, 3, prng.New(42))
	require.Equal(t, a.Pix, b.Pix)
}

func TestApplyCharcoalDiffersAcrossSeeds(t *testing.T) {
	canvas := solidCanvas(50, 50, 100)
	a := brush.Apply(canvas.Clone(), "charcoal", 6, 3, prng.New(1))
	b := brush.Apply(canvas.Clone(), "charcoal", 6, 3, prng.New(2))
	require.NotEqual(t, a.Pix, b.Pix)
}

func TestApplyInkwashIsDeterministic(t *testing.T) {
	canvas := raster.NewGray8(30, 30)
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if (x+y)%5 == 0 {
				canvas.Put(x, y, 20)
			} else {
				canvas.Put(x, y, 230)
			}
		}
	}
	a := brush.Apply(canvas.Clone(), "inkwash", 6, 2, prng.New(1))
	b := brush.Apply(canvas.Clone(), "inkwash", 6, 2, prng.New(2))
	require.Equal(t, a.Pix, b.Pix, "inkwash takes no randomness, so the seed must not matter")
}
