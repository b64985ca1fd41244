package style

import (
	"math"

	"github.com/Krispeckt/sketchforge/internal/prng"
	"github.com/Krispeckt/sketchforge/raster"
)

// BlindContour walks a handful of long, fan-directed strokes across the
// canvas, always stepping toward whichever of twelve candidate headings
// sees the strongest edge ahead, with random angular drift and soft
// boundary reflection (§4.2 Blind Contour). Heavily stochastic.
func RenderBlindContour(_, edges *raster.Gray8, intensity, stroke int, rng *prng.Stream) *raster.Gray8 {
	w, h := edges.Width, edges.Height
	out := raster.NewGray8(w, h)
	out.Fill(255)

	stepLen := math.Max(1.5, float64(w+h)/600)
	numStrokes := 2 + roundInt(float64(intensity)*0.2)
	totalSteps := int(float64(w+h) * (4 + float64(intensity)*0.5))
	stepsPerStroke := totalSteps / numStrokes
	baseWidth := maxInt(1, roundInt(0.55+float64(stroke)*0.18))
	driftRange := (0.18 + float64(10-intensity)*0.035) * math.Pi
	edgeSensitivity := 8 + float64(intensity)*2.5
	lookahead := stepLen * 4
	const fanCount = 12
	fanSpread := math.Pi * 0.44

	edgeAt := func(x, y float64) float64 {
		xi, yi := int(x), int(y)
		if xi < 0 || xi >= w || yi < 0 || yi >= h {
			return 0
		}
		return float64(edges.Get(xi, yi))
	}

	findStart := func() (float64, float64) {
		bx, by, be := rng.Float64()*float64(w), rng.Float64()*float64(h), 0.0
		for i := 0; i < 50; i++ {
			x := rng.Float64() * float64(w)
			y := rng.Float64() * float64(h)
			ev := edgeAt(x, y)
			if ev > be {
				be, bx, by = ev, x, y
			}
		}
		return bx, by
	}

	for s := 0; s < numStrokes; s++ {
		x, y := findStart()
		angle := rng.Float64() * math.Pi * 2
		pts := [][2]int{{roundInt(x), roundInt(y)}}
		for step := 0; step < stepsPerStroke; step++ {
			bestScore, bestAngle := -1.0, angle
			for f := 0; f < fanCount; f++ {
				tA := angle - fanSpread/2 + (float64(f)/float64(fanCount-1))*fanSpread
				lx := x + math.Cos(tA)*lookahead
				ly := y + math.Sin(tA)*lookahead
				deviation := math.Abs(tA - angle)
				score := edgeAt(lx, ly) + (1-deviation/math.Pi)*edgeSensitivity
				if score > bestScore {
					bestScore, bestAngle = score, tA
				}
			}
			angle = bestAngle + (rng.Float64()-0.5)*driftRange
			x += math.Cos(angle) * stepLen
			y += math.Sin(angle) * stepLen

			if x < 0 {
				x = -x
				angle = math.Pi - angle
			}
			if x > float64(w-1) {
				x = 2*float64(w-1) - x
				angle = math.Pi - angle
			}
			if y < 0 {
				y = -y
				angle = -angle
			}
			if y > float64(h-1) {
				y = 2*float64(h-1) - y
				angle = -angle
			}
			pts = append(pts, [2]int{roundInt(x), roundInt(y)})
		}
		if len(pts) >= 2 {
			polyline(out, pts, 18, baseWidth)
		}
	}
	return out
}
