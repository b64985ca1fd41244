// Package medium applies the artStyle-driven medium effect: a fixed number
// of dilation passes (line thickening) followed by an additive tonal
// offset, both keyed off the artStyle tag (§4.3 Medium Effect).
package medium

import "github.com/Krispeckt/sketchforge/raster"

// Profile is the per-medium (dilations, toneDelta) pair named in §4.3's
// table.
type Profile struct {
	Dilations int
	ToneDelta int
}

var profiles = map[string]Profile{
	"pencil": {Dilations: 0, ToneDelta: 15},
	"ink":    {Dilations: 1, ToneDelta: -10},
	"marker": {Dilations: 1, ToneDelta: -20},
	"pen":    {Dilations: 2, ToneDelta: -30},
	"pastel": {Dilations: 3, ToneDelta: -35},
}

// ProfileFor looks up the medium profile for artStyle, falling back to
// pencil's profile for any unrecognized tag (§4.3, §6 default).
func ProfileFor(artStyle string) Profile {
	if p, ok := profiles[artStyle]; ok {
		return p
	}
	return profiles["pencil"]
}

// Apply dilates the canvas according to the profile's iteration count, then
// adds its tonal offset, clipped to the 8-bit range (§4.3).
func Apply(canvas *raster.Gray8, p Profile) *raster.Gray8 {
	out := canvas
	if p.Dilations > 0 {
		out = raster.Dilate(out, p.Dilations)
	}
	if p.ToneDelta != 0 {
		shifted := raster.NewGray8(out.Width, out.Height)
		for y := 0; y < out.Height; y++ {
			for x := 0; x < out.Width; x++ {
				v := int(out.Get(x, y)) + p.ToneDelta
				if v < 0 {
					v = 0
				} else if v > 255 {
					v = 255
				}
				shifted.Put(x, y, uint8(v))
			}
		}
		out = shifted
	}
	return out
}
