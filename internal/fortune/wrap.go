// Package fortune renders candidates as fortune cookie file entries.
package fortune

import (
	"strings"
	"unicode/utf8"
)

// Wrap greedily fills lines up to width columns, breaking only at
// whitespace. A word longer than width gets a line of its own rather than
// being split. Runs of whitespace collapse to a single space; no blank
// lines are produced.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var b strings.Builder
	cols := 0

	for _, w := range words {
		n := utf8.RuneCountInString(w)
		switch {
		case cols == 0:
			b.WriteString(w)
			cols = n
		case cols+1+n <= width:
			b.WriteByte(' ')
			b.WriteString(w)
			cols += 1 + n
		default:
			lines = append(lines, b.String())
			b.Reset()
			b.WriteString(w)
			cols = n
		}
	}
	lines = append(lines, b.String())
	return lines
}
