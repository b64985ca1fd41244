package style

import "github.com/Krispeckt/sketchforge/internal/kernelmath"

// These are thin package-local aliases over internal/kernelmath, which
// also backs the brush overlays — kept short so every kernel file above
// can spell them without a package-qualified import.

func clamp01(v float64) float64                { return kernelmath.Clamp01(v) }
func bandFactor(e, t, s float64) float64        { return kernelmath.BandFactor(e, t, s) }
func sCurve(t float64) float64                  { return kernelmath.SCurve(t) }
func inkScale(alpha, ink float64) float64       { return kernelmath.InkScale(alpha, ink) }
func dGridDistance(x, y, theta, sp float64) float64 {
	return kernelmath.DGridDistance(x, y, theta, sp)
}
func onHatchLine(d, spacing, w float64) bool { return kernelmath.OnHatchLine(d, spacing, w) }
func max0(v float64) float64                 { return kernelmath.Max0(v) }
func clampInt(v, lo, hi int) int             { return kernelmath.ClampInt(v, lo, hi) }
func clampF64(v, lo, hi float64) float64     { return kernelmath.ClampF64(v, lo, hi) }
func roundInt(v float64) int                 { return kernelmath.RoundInt(v) }
