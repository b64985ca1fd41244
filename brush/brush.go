// Package brush applies the optional texture overlay on top of a rendered
// style canvas: tone-aware hatching (single or crossed pass), charcoal
// grain, or ink-wash softening with wet-edge bloom (§4.5 Brush Overlay).
package brush

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/kernelmath"
	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// Apply overlays the named brush texture onto result. "line" (and any
// unrecognized name) is a no-op passthrough (§4.5).
func Apply(result *raster.Gray8, name string, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	switch name {
	case "hatch", "crosshatch":
		return hatchPass(result, name == "crosshatch", intensity, stroke)
	case "charcoal":
		return charcoalGrain(result, intensity, stroke, rng)
	case "inkwash":
		return inkWashSoften(result, intensity, stroke)
	default:
		return result
	}
}

type hatchPassSpec struct {
	angle, thr, alpha float64
}

func hatchPass(result *raster.Gray8, crossed bool, intensity, stroke int) *raster.Gray8 {
	w, h := result.Width, result.Height
	spacing := float64(maxInt(4, kernelmath.RoundInt(18-float64(stroke)*1.4)))
	toneThr := 85.0 + float64(intensity)*12
	const hyst = 8.0
	halfLW := math.Max(0.15, (0.38+float64(stroke)*0.09)/2.0)

	passes := []hatchPassSpec{{math.Pi / 6, toneThr, 0.60}}
	if crossed {
		passes = append(passes, hatchPassSpec{math.Pi * 2 / 3, toneThr - 24, 0.44})
	}

	out := make([]float64, w*h)
	for i, v := range result.Pix {
		out[i] = float64(v)
	}

	for _, p := range passes {
		hScale := kernelmath.InkScale(p.alpha, 18)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				d := kernelmath.DGridDistance(float64(x), float64(y), p.angle, spacing)
				if !kernelmath.OnHatchLine(d, spacing, 2*halfLW) {
					continue
				}
				idx := y*w + x
				if out[idx] >= p.thr+hyst {
					continue
				}
				out[idx] = kernelmath.ClampF64(out[idx]*hScale, 0, 255)
			}
		}
	}

	dst := raster.NewGray8(w, h)
	for i, v := range out {
		dst.Pix[i] = raster.Clamp8(float32(v))
	}
	return dst
}

func charcoalGrain(result *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	w, h := result.Width, result.Height
	markStep := maxInt(4, kernelmath.RoundInt(16-float64(stroke)*1.1))
	markLen := kernelmath.RoundInt(float64(markStep) * (1.3 + float64(stroke)*0.2))
	markAlpha := 0.07 + float64(intensity)*0.016
	markScale := kernelmath.InkScale(markAlpha, 22)
	const slope = 0.27
	lineW := maxInt(1, kernelmath.RoundInt(float64(stroke)*0.5))

	mask := raster.NewGray8(w, h)
	for y := 0; y < h; y += markStep {
		for x := 0; x < w; x += markStep {
			if int(result.Get(minInt(w-1, x), minInt(h-1, y))) > 215 {
				continue
			}
			jx := x + int((rng.Float64()-0.5)*float64(markStep)*0.7)
			jy := y + int((rng.Float64()-0.5)*float64(markStep)*0.7)
			length := float64(markLen) * (0.4 + rng.Float64()*0.8)
			hdx := slope * length * 0.5
			p1x := clampInt(kernelmath.RoundInt(float64(jx)-hdx), 0, w-1)
			p1y := clampInt(kernelmath.RoundInt(float64(jy)-length*0.5), 0, h-1)
			p2x := clampInt(kernelmath.RoundInt(float64(jx)+hdx), 0, w-1)
			p2y := clampInt(kernelmath.RoundInt(float64(jy)+length*0.5), 0, h-1)
			line(mask, p1x, p1y, p2x, p2y, 255, lineW)
		}
	}

	grainChance := 0.009 + float64(intensity)*0.007
	grainAlpha := 0.17 + float64(stroke)*0.03
	grainScale := kernelmath.InkScale(grainAlpha, 24)

	out := result.Clone()
	applyMask(out, mask, markScale)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int(out.Get(x, y))
			if v <= 18 || v >= 235 {
				continue
			}
			if rng.Float64() >= grainChance {
				continue
			}
			out.Put(x, y, raster.Clamp8(float32(float64(v)*grainScale)))
		}
	}
	return out
}

func inkWashSoften(result *raster.Gray8, intensity, stroke int) *raster.Gray8 {
	w, h := result.Width, result.Height
	blurPasses := 1 + kernelmath.RoundInt(float64(stroke)*0.2)
	washStr := 0.28 + float64(stroke)*0.055

	orig := result.ToFloat32()
	blurred := orig
	for i := 0; i < blurPasses; i++ {
		blurred = raster.BoxBlur3(blurred)
	}

	washed := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float64(orig.At(x, y))*(1-washStr) + float64(blurred.At(x, y))*washStr
			washed.Put(x, y, raster.Clamp8(float32(kernelmath.ClampF64(v, 0, 255))))
		}
	}

	bloomR := maxInt(1, 2+kernelmath.RoundInt(float64(stroke)*0.45))
	bloomAlpha := 0.07 + float64(intensity)*0.009

	darkMask := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if result.Get(x, y) < 75 {
				darkMask.Put(x, y, 255)
			}
		}
	}
	bloomSpread := raster.GaussianBlurSigma(darkMask, bloomR, float64(bloomR)*0.5)

	out := raster.NewGray8(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			resultF := float64(washed.Get(x, y))
			spread := float64(bloomSpread.Get(x, y)) / 255.0
			boost := kernelmath.Max0(238-resultF) * spread * bloomAlpha
			out.Put(x, y, raster.Clamp8(float32(kernelmath.ClampF64(resultF+boost, 0, 255))))
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int { return kernelmath.ClampInt(v, lo, hi) }
