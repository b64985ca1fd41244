package style

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Hatching draws an edge outline over a single family of 30° parallel
// lines, vectorized as a modular distance field and drawn only where the
// (lightly blurred) tone is dark enough, with hysteresis headroom so
// hatch lines don't flicker at the tone threshold (§4.2 Hatching).
// Deterministic.
func RenderHatching(gray, edges *raster.Gray8, intensity, stroke int, _ *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	edgeThr := 35 + (11-intensity)*13
	out := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if int(edges.Get(x, y)) > edgeThr {
				out.Put(x, y, 12)
			} else {
				out.Put(x, y, 255)
			}
		}
	}

	spacing := float64(maxInt(3, roundInt(16-float64(stroke)*1.3)))
	halfLW := math.Max(0.5, (0.45+float64(stroke)*0.1)/2.0)
	toneThr := float64(60 + intensity*14)
	const hyst = 6.0
	const hAlpha = 0.82
	hScale := inkScale(hAlpha, 14)
	const angle = math.Pi / 6

	graySmoothed := raster.GaussianBlurSigma(gray, 1, sigmaFor3x3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := dGridDistance(float64(x), float64(y), angle, spacing)
			if !onHatchLine(d, spacing, 2*halfLW) {
				continue
			}
			if float64(graySmoothed.Get(x, y)) >= toneThr+hyst {
				continue
			}
			v := float64(out.Get(x, y)) * hScale
			out.Put(x, y, raster.Clamp8(float32(v)))
		}
	}
	return out
}

// sigmaFor3x3 is OpenCV's GaussianBlur default sigma for a 3×3 kernel,
// used by every kernel that pre-smooths tone with cv2.GaussianBlur(gray,
// (3, 3), 0) before a hatching decision.
const sigmaFor3x3 = 0.8
