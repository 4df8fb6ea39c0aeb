package modal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws fg on top of bg with its top-left corner at (x, y). Lines
// of bg that are too short are padded; styling of bg outside the covered
// cells is preserved.
func Overlay(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	x = max(x, 0)

	for i, fl := range fgLines {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}
		bl := bgLines[row]
		bw := ansi.StringWidth(bl)
		if bw < x {
			bl += strings.Repeat(" ", x-bw)
			bw = x
		}
		fw := ansi.StringWidth(fl)
		left := ansi.Truncate(bl, x, "")
		right := ""
		if bw > x+fw {
			right = ansi.TruncateLeft(bl, x+fw, "")
		}
		bgLines[row] = left + fl + right
	}
	return strings.Join(bgLines, "\n")
}

// Dim strips styling from s and renders it muted, for use as a backdrop.
func Dim(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = MutedText.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
