package style

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Academic maps tone through the S-curve into 30..248, overlays smoothstep
// edge lines, and confines a 45° hatch to the deep shadows (gray<80), for a
// reliable, study-like rendering (§4.2 Academic). Stochastic only when
// intensity < 5.
func RenderAcademic(gray, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	out := raster.NewGray8(w, h)

	edgeThr := float64(8 + (11-intensity)*10)
	const edgeSoft = 10.0
	hatchSpacing := math.Max(2, 22-float64(stroke)*1.5)
	const halfLW = 0.5
	hScale := inkScale(0.5, 20)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gv := float64(gray.Get(x, y))
			base := 30 + sCurve(gv/255.0)*(248-30)

			f := bandFactor(float64(edges.Get(x, y)), edgeThr, edgeSoft)
			v := base - f*(base-20)

			if gv < 80 {
				d := dGridDistance(float64(x), float64(y), math.Pi/4, hatchSpacing)
				if onHatchLine(d, hatchSpacing, 2*halfLW) {
					v *= hScale
				}
			}

			if intensity < 5 && rng.Float64() > 0.8 {
				v *= 0.8 + rng.Float64()*0.3
			}
			out.Put(x, y, raster.Clamp8(float32(clampF64(v, 0, 255))))
		}
	}
	return out
}
