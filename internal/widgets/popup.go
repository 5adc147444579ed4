package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2)

// RenderPopup centers content in a bordered card over base, compositing the
// card cell-by-cell so the underlying view stays visible around it.
func RenderPopup(base, content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := cardStyle.Render(content)
	overlay := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	baseLines := canvasLines(base, width, height)
	overlayLines := canvasLines(overlay, width, height)

	out := make([]string, height)
	for i := 0; i < height; i++ {
		out[i] = compositeLine(baseLines[i], overlayLines[i], width)
	}
	return strings.Join(out, "\n")
}

// compositeLine splices the non-blank segment of overlay into base.
func compositeLine(base, overlay string, width int) string {
	start, end, ok := contentBounds(overlay, width)
	if !ok {
		return base
	}
	left := ansi.Truncate(base, start, "")
	segment := ansi.Truncate(dropColumns(overlay, start), end-start, "")
	right := dropColumns(base, end)
	return padLine(left+segment+right, width)
}

// contentBounds finds the column span of a line's non-space content.
func contentBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	for start < len(plain) && plain[start] == ' ' {
		start++
	}
	end = len(trimmed)
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padLine(lines[i], width)
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padLine(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
