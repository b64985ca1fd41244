package style_test

import (
	"testing"

	"github.com/Krispeckt/sketchforge/style"
	"github.com/stretchr/testify/require"
)

func TestParseTagKnownNames(t *testing.T) {
	require.Equal(t, style.Stippling, style.ParseTag("stippling"))
	require.Equal(t, style.Charcoal, style.ParseTag("charcoal"))
	require.Equal(t, style.Crosshatching, style.ParseTag("crosshatching"))
}

func TestParseTagUnknownIsFallback(t *testing.T) {
	require.Equal(t, style.Fallback, style.ParseTag("line"))
	require.Equal(t, style.Fallback, style.ParseTag("not-a-style"))
	require.Equal(t, style.Fallback, style.ParseTag(""))
}

func TestNamesCoversEveryTagExceptFallback(t *testing.T) {
	names := style.Names()
	require.Len(t, names, 20)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		require.False(t, seen[n], "duplicate name %q", n)
		seen[n] = true
		require.Equal(t, style.ParseTag(n) != style.Fallback, true)
	}
}
