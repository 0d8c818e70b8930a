package generator

import "strings"

// DetectIndent guesses the indentation unit of src from the most common
// increase in leading whitespace between consecutive lines. It returns an
// empty string when src gives no clue.
func DetectIndent(src string) string {
	counts := make(map[int]int)
	tabs, spaces := 0, 0
	prev := 0
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || strings.HasPrefix(trimmed, "*") {
			// Blank lines and the body of block comments say nothing.
			continue
		}
		ws := line[:len(line)-len(trimmed)]
		if strings.HasPrefix(ws, "\t") {
			tabs++
			prev = 0
			continue
		}
		n := len(ws)
		if n > prev {
			counts[n-prev]++
			spaces++
		}
		prev = n
	}

	if tabs > spaces {
		return "\t"
	}
	best, bestCount := 0, 0
	for width, count := range counts {
		if count > bestCount || count == bestCount && width < best {
			best, bestCount = width, count
		}
	}
	if best == 0 {
		return ""
	}
	return strings.Repeat(" ", best)
}
