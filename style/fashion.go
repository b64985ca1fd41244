package style

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Fashion renders a warm paper base with a tonal shadow wash, smoothstep
// contour lines, and vertical drape marks in shadow areas (§4.2 Fashion).
func RenderFashion(gray, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	lineThr := float64(maxInt(12, int(60-float64(intensity)*4-float64(stroke)*1.2)))
	softness := 8 + float64(stroke)*1.5
	shadowThr := float64(100 + intensity*8)

	base := make([][]float64, h)
	for y := 0; y < h; y++ {
		base[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			g := float64(gray.Get(x, y))
			sdiff := max0(shadowThr - g)
			var depth float64
			if g < shadowThr {
				depth = math.Pow(sdiff/shadowThr, 1.5)
			}
			v := 250.0 - depth*(20+float64(intensity)*2)

			e := float64(edges.Get(x, y))
			switch {
			case e >= lineThr+softness:
				v *= 0.03
			case e > lineThr:
				f := bandFactor(e, lineThr, softness)
				v *= 1 - f*0.97
			}
			base[y][x] = clampF64(v, 0, 255)
		}
	}

	out := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Put(x, y, raster.Clamp8(float32(base[y][x])))
		}
	}

	markStep := maxInt(6, roundInt(24-float64(stroke)*1.5))
	markLen := maxInt(10, roundInt(float64(h)/8*(0.8+float64(stroke)*0.1)))
	markAlpha := 0.03 + float64(intensity)*0.008
	markScale := inkScale(markAlpha, 40)
	lineW := maxInt(1, roundInt(float64(stroke)*0.3))

	mask := raster.NewGray8(w, h)
	for x0 := 0; x0 < w; x0 += markStep {
		for y0 := 0; y0 < h; y0 += markStep {
			if gray.Get(x0, y0) > 160 {
				continue
			}
			jx := x0 + int((rng.Float64()-0.5)*float64(markStep)*0.5)
			jy := y0 + int((rng.Float64()-0.5)*float64(markStep)*0.5)
			length := int(float64(markLen) * (0.3 + rng.Float64()*0.9))
			lean := int((rng.Float64() - 0.5) * float64(markStep) * 0.2)
			p1x, p1y := clampInt(jx, 0, w-1), clampInt(jy, 0, h-1)
			p2x, p2y := clampInt(jx+lean, 0, w-1), clampInt(jy+length, 0, h-1)
			line(mask, p1x, p1y, p2x, p2y, 255, lineW)
		}
	}
	applyMask(out, mask, markScale)
	return out
}
