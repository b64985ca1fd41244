// Package pipeline wires the stylization stages together: decode, resize,
// bilateral preprocessing, grayscale, Sobel edges, style kernel dispatch,
// medium effect, smoothing, brush overlay, the color stage, and PNG encode
// (§2 System Overview, §3 Pipeline operation).
package pipeline

import (
	"fmt"

	"github.com/Krispeckt/sketchforge/brush"
	"github.com/Krispeckt/sketchforge/colorstage"
	"github.com/Krispeckt/sketchforge/config"
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/medium"
	"github.com/Krispeckt/sketchforge/raster"
	"github.com/Krispeckt/sketchforge/style"
)

// BadRequest reports a caller error: a malformed or undecodable input
// image. A transport layer maps this to its 4xx response (§7).
type BadRequest struct {
	Cause error
}

func (e *BadRequest) Error() string { return "pipeline: bad request: " + e.Cause.Error() }
func (e *BadRequest) Unwrap() error { return e.Cause }

// ProcessingError reports a failure inside the stylization stages
// themselves — an invariant violation such as a resize collapsing an
// image to zero area — distinct from a bad input or an encode failure
// (§7).
type ProcessingError struct {
	Stage string
	Cause error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("pipeline: processing failed at %s: %v", e.Stage, e.Cause)
}
func (e *ProcessingError) Unwrap() error { return e.Cause }

// EncodeError reports a failure serializing the final canvas to PNG.
type EncodeError struct {
	Cause error
}

func (e *EncodeError) Error() string { return "pipeline: encode: " + e.Cause.Error() }
func (e *EncodeError) Unwrap() error { return e.Cause }

// Stylize runs the full pipeline over raw input image bytes and returns
// PNG-encoded output bytes (§2, §3).
func Stylize(data []byte, cfg config.Config) ([]byte, error) {
	src, err := raster.Decode(data)
	if err != nil {
		return nil, &BadRequest{Cause: err}
	}

	canvas, err := Run(src, cfg)
	if err != nil {
		return nil, err
	}

	out, err := raster.EncodePNG(canvas)
	if err != nil {
		return nil, &EncodeError{Cause: err}
	}
	return out, nil
}

// Run executes every stage after decode, returning the final color
// canvas. Exposed separately from Stylize so callers that already hold a
// decoded raster (e.g. tests) can skip the byte round-trip.
func Run(src *raster.Rgb8, cfg config.Config) (*raster.Rgb8, error) {
	resized := raster.ResizeForTarget(src, cfg.Resolution, cfg.AspectW, cfg.AspectH)
	if resized.Width == 0 || resized.Height == 0 {
		return nil, &ProcessingError{Stage: "resize", Cause: &raster.ErrEmptyRaster{
			Width: resized.Width, Height: resized.Height}}
	}

	smoothedColor := raster.Bilateral(resized)
	gray := raster.Grayscale(smoothedColor)
	edges := raster.Sobel(gray, cfg.Intensity)

	rng := prng.New(cfg.Seed)
	canvas := style.Render(style.ParseTag(cfg.Style), gray, edges, cfg.Intensity, cfg.Stroke, rng)

	canvas = medium.Apply(canvas, medium.ProfileFor(cfg.ArtStyle))

	if cfg.Smoothing > 0 {
		ksize := raster.GaussianKernelSize(cfg.Smoothing)
		canvas = raster.GaussianBlur(canvas, ksize)
	}

	if cfg.Brush != "line" {
		canvas = brush.Apply(canvas, cfg.Brush, cfg.Intensity, cfg.Stroke, rng)
	}

	colorCanvas := canvas.ToRgb8()

	if cfg.Colorize {
		colorCanvas = colorstage.Colorize(colorCanvas, smoothedColor)
	}

	if cfg.Contrast != 0 {
		colorCanvas = colorstage.Contrast(colorCanvas, cfg.Contrast)
	}
	if cfg.Saturation != 0 || cfg.HueShift != 0 {
		colorCanvas = colorstage.SaturationHue(colorCanvas, cfg.Saturation, cfg.HueShift)
	}

	if cfg.Invert {
		colorCanvas = colorstage.Invert(colorCanvas)
	}

	return colorCanvas, nil
}
