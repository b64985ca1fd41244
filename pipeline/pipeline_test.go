package pipeline_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/Krispeckt/sketchforge/config"
	"github.com/Krispeckt/sketchforge/pipeline"
	"github.com/Krispeckt/sketchforge/raster"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x * 255) / (w + 1)),
				G: uint8((y * 255) / (h + 1)),
				B: uint8(((x + y) * 255) / (w + h + 1)),
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestStylizeProducesADecodablePNG(t *testing.T) {
	data := testImage(t, 64, 48)
	cfg := config.Default()
	out, err := pipeline.Stylize(data, cfg)
	require.NoError(t, err)

	canvas, err := raster.Decode(out)
	require.NoError(t, err)
	require.Equal(t, 64, canvas.Width)
	require.Equal(t, 48, canvas.Height)
}

func TestStylizeSameSeedIsByteIdentical(t *testing.T) {
	data := testImage(t, 50, 50)
	cfg := config.Default()
	cfg.Style = "stippling"
	cfg.Seed = 123

	a, err := pipeline.Stylize(data, cfg)
	require.NoError(t, err)
	b, err := pipeline.Stylize(data, cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestStylizeDifferentSeedsDivergeForStochasticStyle(t *testing.T) {
	data := testImage(t, 50, 50)
	cfg := config.Default()
	cfg.Style = "stippling"

	cfg.Seed = 1
	a, err := pipeline.Stylize(data, cfg)
	require.NoError(t, err)

	cfg.Seed = 2
	b, err := pipeline.Stylize(data, cfg)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestStylizeBadInputIsBadRequest(t *testing.T) {
	_, err := pipeline.Stylize([]byte("garbage"), config.Default())
	require.Error(t, err)
	var badReq *pipeline.BadRequest
	require.ErrorAs(t, err, &badReq)
}

func TestRunAppliesBrushOverlay(t *testing.T) {
	data := testImage(t, 40, 40)
	src, err := raster.Decode(data)
	require.NoError(t, err)

	plain := config.Default()
	plain.Style = "hatching"
	withoutBrush, err := pipeline.Run(src, plain)
	require.NoError(t, err)

	hatched := plain
	hatched.Brush = "hatch"
	withBrush, err := pipeline.Run(src, hatched)
	require.NoError(t, err)

	require.NotEqual(t, withoutBrush.Pix, withBrush.Pix)
}

func TestRunColorizeBlendsTowardOriginal(t *testing.T) {
	data := testImage(t, 40, 40)
	src, err := raster.Decode(data)
	require.NoError(t, err)

	cfg := config.Default()
	plain, err := pipeline.Run(src, cfg)
	require.NoError(t, err)

	cfg.Colorize = true
	out, err := pipeline.Run(src, cfg)
	require.NoError(t, err)
	require.Equal(t, src.Width, out.Width)
	require.Equal(t, src.Height, out.Height)
	require.NotEqual(t, plain.Pix, out.Pix, "colorize must mix the source color into the gray sketch")
}

func TestRunInvertProducesComplementedOutput(t *testing.T) {
	data := testImage(t, 30, 30)
	src, err := raster.Decode(data)
	require.NoError(t, err)

	cfg := config.Default()
	plain, err := pipeline.Run(src, cfg)
	require.NoError(t, err)

	cfg.Invert = true
	inverted, err := pipeline.Run(src, cfg)
	require.NoError(t, err)

	r0, g0, b0 := plain.Get(0, 0)
	r1, g1, b1 := inverted.Get(0, 0)
	require.Equal(t, 255-r0, r1)
	require.Equal(t, 255-g0, g1)
	require.Equal(t, 255-b0, b1)
}

func TestStylizeHandlesATinyImage(t *testing.T) {
	data := testImage(t, 1, 1)
	cfg := config.Default()
	out, err := pipeline.Stylize(data, cfg)
	require.NoError(t, err)

	canvas, err := raster.Decode(out)
	require.NoError(t, err)
	require.Equal(t, 1, canvas.Width)
	require.Equal(t, 1, canvas.Height)
}
