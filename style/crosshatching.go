package style

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Crosshatching draws a hard-threshold edge outline over white, then sweeps a
// two-pass tone-gated d-grid: a 45° family over midtones and a second 135°
// family confined to the deeper, darker tones beneath it, localized by the
// lightly blurred local gray value (§4.2 Crosshatching). Deterministic.
func RenderCrosshatching(gray, edges *raster.Gray8, intensity, stroke int, _ *prng.Stream) *raster.Gray8 {
	w, h := edges.Width, edges.Height
	out := raster.NewGray8(w, h)
	edgeThr := 10 + (11-intensity)*12
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if int(edges.Get(x, y)) > edgeThr {
				out.Put(x, y, 17)
			} else {
				out.Put(x, y, 255)
			}
		}
	}

	spacing := float64(maxInt(3, roundInt(16-float64(stroke)*1.3)))
	halfLW := math.Max(0.5, (0.5+float64(stroke)*0.25)/2.0)
	const midThr = 170.0
	const deepThr = 85.0
	hScale := inkScale(0.55, 17)

	graySmoothed := raster.GaussianBlurSigma(gray, 1, sigmaFor3x3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tone := float64(graySmoothed.Get(x, y))

			if tone < midThr {
				d := dGridDistance(float64(x), float64(y), math.Pi/4, spacing)
				if onHatchLine(d, spacing, 2*halfLW) {
					out.Put(x, y, raster.Clamp8(float32(float64(out.Get(x, y))*hScale)))
				}
			}

			if tone < deepThr {
				d := dGridDistance(float64(x), float64(y), 3*math.Pi/4, spacing)
				if onHatchLine(d, spacing, 2*halfLW) {
					out.Put(x, y, raster.Clamp8(float32(float64(out.Get(x, y))*hScale)))
				}
			}
		}
	}
	return out
}
