package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RohitDatta06/gamehub/internal/core"
)

// palette holds the ANSI 256 code of each core.Color. The empty entry is the
// terminal's own foreground.
var palette = [...]lipgloss.Color{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorNavy:          "17",
}

var cellStyles = func() (styles [len(palette)]lipgloss.Style) {
	for i, code := range palette {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(code)
		}
	}
	return styles
}()

// cellStyle falls back to the plain style for colors outside the palette.
func cellStyle(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen draws s one line per row, each behind indent spaces. A run of
// same-colored cells is styled once.
func RenderScreen(s *core.Screen, indent int) string {
	pad := strings.Repeat(" ", max(indent, 0))
	lines := make([]string, s.Height())
	run := make([]rune, 0, s.Width())

	for y := range lines {
		var line strings.Builder
		line.WriteString(pad)

		color := core.ColorDefault
		for x := range s.Width() {
			c := s.GetCell(x, y)
			if c.Color != color && len(run) > 0 {
				line.WriteString(cellStyle(color).Render(string(run)))
				run = run[:0]
			}
			color = c.Color
			run = append(run, c.Rune)
		}
		if len(run) > 0 {
			line.WriteString(cellStyle(color).Render(string(run)))
			run = run[:0]
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
