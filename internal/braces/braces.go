// Package braces provides approximate brace-depth accounting over source
// lines. Braces are counted character-wise, so braces inside string or
// character literals and comments are miscounted. Callers accept that
// trade-off; swapping in a real tokenizer later only touches this package.
package braces

import "strings"

// Delta returns the net nesting change contributed by a single line.
func Delta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

// BodyBounds locates a brace-delimited body starting at or after start.
// It scans forward for the first line containing '{', then counts braces
// until the depth returns to zero. It returns the indexes of the opening
// and closing lines. If no opening brace is found before the end of input,
// both results equal start.
func BodyBounds(lines []string, start int) (open, close int) {
	open = start
	for open < len(lines) && !strings.Contains(lines[open], "{") {
		open++
	}
	if open >= len(lines) {
		return start, start
	}

	depth := 0
	close = open
	for i := open; i < len(lines); i++ {
		depth += Delta(lines[i])
		if depth == 0 {
			close = i
			break
		}
	}
	return open, close
}
