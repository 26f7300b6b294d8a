package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapText word-wraps text to the given display width. Widths are measured
// with runewidth, not rune counts, so emoji and CJK take their two cells.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	lines := []string{}
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapLine(raw, width)...)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// MaxLineWidth returns the widest display width among lines.
func MaxLineWidth(lines []string) int {
	max := 0
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > max {
			max = w
		}
	}
	return max
}

func wrapLine(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	out := []string{}
	current := ""
	for _, word := range strings.Fields(line) {
		wordWidth := runewidth.StringWidth(word)
		if current == "" {
			if wordWidth > width {
				out = append(out, breakLongWord(word, width)...)
				continue
			}
			current = word
			continue
		}
		if runewidth.StringWidth(current)+1+wordWidth <= width {
			current += " " + word
			continue
		}
		out = append(out, current)
		if wordWidth > width {
			out = append(out, breakLongWord(word, width)...)
			current = ""
			continue
		}
		current = word
	}
	if current != "" {
		out = append(out, current)
	}
	if len(out) == 0 {
		return []string{line}
	}
	return out
}

func breakLongWord(word string, width int) []string {
	if width <= 0 {
		return []string{word}
	}
	out := []string{}
	current := ""
	currentWidth := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > width && current != "" {
			out = append(out, current)
			current = ""
			currentWidth = 0
		}
		current += string(r)
		currentWidth += rw
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}
