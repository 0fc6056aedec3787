package render

import (
	"strings"

	"github.com/fogleman/gg"
)

// wrapText breaks text into lines that fit maxWidth under the context's
// current font face. A single word wider than maxWidth gets its own line
// rather than being split; wrapping never drops text.
func wrapText(dc *gg.Context, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if width, _ := dc.MeasureString(candidate); width < maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}
