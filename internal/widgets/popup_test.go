package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRenderPopupDimensions(t *testing.T) {
	base := strings.TrimRight(strings.Repeat("base line\n", 10), "\n")
	out := RenderPopup(base, "hello", 40, 10)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	for i, line := range lines {
		require.Equal(t, 40, ansi.StringWidth(line), "line %d", i)
	}
}

func TestRenderPopupShowsContentOverBase(t *testing.T) {
	base := strings.TrimRight(strings.Repeat(strings.Repeat("x", 40)+"\n", 12), "\n")
	out := RenderPopup(base, "confirm?", 40, 12)

	require.Contains(t, ansi.Strip(out), "confirm?")
	// the base still shows around the card
	require.Contains(t, ansi.Strip(out), strings.Repeat("x", 40))
}

func TestRenderPopupZeroSize(t *testing.T) {
	require.Empty(t, RenderPopup("base", "content", 0, 0))
	require.Empty(t, RenderPopup("base", "content", -1, 5))
}
