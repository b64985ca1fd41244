package medium_test

import (
	"testing"

	"github.com/Krispeckt/sketchforge/medium"
	"github.com/Krispeckt/sketchforge/raster"
	"github.com/stretchr/testify/require"
)

func TestProfileForKnownTags(t *testing.T) {
	cases := map[string]medium.Profile{
		"pencil": {Dilations: 0, ToneDelta: 15},
		"ink":    {Dilations: 1, ToneDelta: -10},
		"marker": {Dilations: 1, ToneDelta: -20},
		"pen":    {Dilations: 2, ToneDelta: -30},
		"pastel": {Dilations: 3, ToneDelta: -35},
	}
	for tag, want := range cases {
		t.Run(tag, func(t *testing.T) {
			require.Equal(t, want, medium.ProfileFor(tag))
		})
	}
}

func TestProfileForUnknownFallsBackToPencil(t *testing.T) {
	require.Equal(t, medium.ProfileFor("pencil"), medium.ProfileFor("nonexistent"))
}

func TestApplyToneDeltaShiftsAndClips(t *testing.T) {
	canvas := raster.NewGray8(3, 3)
	canvas.Fill(250)
	out := medium.Apply(canvas, medium.Profile{Dilations: 0, ToneDelta: 15})
	for _, v := range out.Pix {
		require.Equal(t, uint8(255), v, "tone shift must clip rather than overflow")
	}
}

func TestApplyDilationSpreadsToNeighbors(t *testing.T) {
	canvas := raster.NewGray8(5, 5)
	canvas.Put(2, 2, 255)
	out := medium.Apply(canvas, medium.Profile{Dilations: 1, ToneDelta: 0})
	require.Equal(t, uint8(255), out.Get(1, 2), "one dilation pass must spread the bright pixel to its neighbor")
}

func TestApplyZeroDilationsZeroToneIsIdentity(t *testing.T) {
	canvas := raster.NewGray8(4, 4)
	canvas.Put(1, 1, 90)
	out := medium.Apply(canvas, medium.Profile{Dilations: 0, ToneDelta: 0})
	require.Equal(t, canvas.Pix, out.Pix)
}
