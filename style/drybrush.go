package style

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// DryBrush maps tone through the S-curve into 38..250, then scatters
// horizontal-ish ±20° strokes across it with a 32% dropout rate, skipping
// marks on highlights with no underlying edge (§4.2 Dry Brush). Stochastic.
func RenderDryBrush(gray, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	out := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := float64(gray.Get(x, y)) / 255.0
			v := 38 + sCurve(t)*(250-38)
			out.Put(x, y, raster.Clamp8(float32(v)))
		}
	}

	step := maxInt(3, roundInt(11-float64(stroke)*0.8))
	const dropout = 0.32
	const maxSkew = 20.0 * math.Pi / 180.0
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			highlight := gray.Get(x, y) > 200 && edges.Get(x, y) == 0
			if highlight || rng.Float64() < dropout {
				continue
			}
			angle := (rng.Float64()*2 - 1) * maxSkew
			length := 5.0 + rng.Float64()*5.0
			x2 := x + int(length*math.Cos(angle))
			y2 := y + int(length*math.Sin(angle))
			v := uint8(50 + rng.Float64()*100)
			line(out, x, y, x2, y2, v, 1)
		}
	}
	return out
}
