package style

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// MixedMedia layers a warm quadratic tonal base, smoothstep pen lines at
// strong edges, stipple dots in midtones, and diagonal (and, in deep
// shadow, crossed) hatch marks (§4.2 Mixed Media).
func RenderMixedMedia(gray, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	w, h := gray.Width, gray.Height
	lineThr := float64(maxInt(12, 65-intensity*5))
	const softness = 10.0

	out := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := float64(gray.Get(x, y))
			base := 242.0 - (1.0-g/255.0)*(1.0-g/255.0)*115.0

			e := float64(edges.Get(x, y))
			switch {
			case e >= lineThr+softness:
				base *= 0.07
			case e > lineThr:
				f := bandFactor(e, lineThr, softness)
				base *= 1 - f*0.93
			}
			out.Put(x, y, raster.Clamp8(float32(clampF64(base, 0, 255))))
		}
	}

	dotStep := maxInt(4, roundInt(15-float64(stroke)*1.0))
	baseR := 0.5 + float64(stroke)*0.14
	for y := 0; y < h; y += dotStep {
		for x := 0; x < w; x += dotStep {
			gi := int(gray.Get(minInt(w-1, x), minInt(h-1, y)))
			if gi < 80 || gi > 178 {
				continue
			}
			jx := x + int((rng.Float64()-0.5)*float64(dotStep)*0.7)
			jy := y + int((rng.Float64()-0.5)*float64(dotStep)*0.7)
			r := maxInt(1, roundInt(baseR*(1+float64(178-gi)/178*0.6)))
			disk(out, maxInt(r, minInt(w-1-r, jx)), maxInt(r, minInt(h-1-r, jy)), r, 30)
		}
	}

	hStep := maxInt(3, roundInt(13-float64(stroke)*0.9))
	hLen := roundInt(float64(hStep) * 2.5)
	hAlpha := 0.18 + float64(intensity)*0.025
	hScale := inkScale(hAlpha, 48)
	a1 := math.Pi / 5
	c1, s1 := math.Cos(a1), math.Sin(a1)
	a2 := math.Pi * 2 / 5
	c2, s2 := math.Cos(a2), math.Sin(a2)
	lw := maxInt(1, roundInt(float64(stroke)*0.35))

	mask := raster.NewGray8(w, h)
	for y := 0; y < h; y += hStep {
		for x := 0; x < w; x += hStep {
			gi := int(gray.Get(minInt(w-1, x), minInt(h-1, y)))
			if gi > 108 {
				continue
			}
			jx := float64(x) + (rng.Float64()-0.5)*float64(hStep)*0.4
			jy := float64(y) + (rng.Float64()-0.5)*float64(hStep)*0.4
			hl := float64(hLen) * (0.5 + rng.Float64()*0.6)
			p1x, p1y := clampInt(roundInt(jx-c1*hl/2), 0, w-1), clampInt(roundInt(jy-s1*hl/2), 0, h-1)
			p2x, p2y := clampInt(roundInt(jx+c1*hl/2), 0, w-1), clampInt(roundInt(jy+s1*hl/2), 0, h-1)
			line(mask, p1x, p1y, p2x, p2y, 255, lw)
			if gi < 68 {
				p3x, p3y := clampInt(roundInt(jx-c2*hl/2), 0, w-1), clampInt(roundInt(jy-s2*hl/2), 0, h-1)
				p4x, p4y := clampInt(roundInt(jx+c2*hl/2), 0, w-1), clampInt(roundInt(jy+s2*hl/2), 0, h-1)
				line(mask, p3x, p3y, p4x, p4y, 255, lw)
			}
		}
	}
	applyMask(out, mask, hScale)
	return out
}
