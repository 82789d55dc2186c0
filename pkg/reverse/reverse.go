// Package reverse resolves text input, reverses it and delivers the result.
package reverse

import (
	"strings"
)

// Reverse returns text with its characters in reverse order.
// It works on runes so multi-byte characters stay intact.
func Reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ReverseLines reverses every line of text independently and keeps line order.
// A single terminal newline does not start a new line, and a carriage return
// right before a newline is treated as part of the line ending.
func ReverseLines(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = Reverse(line)
	}
	return strings.Join(lines, "\n")
}

// Transform applies ReverseLines or Reverse depending on lineByLine.
func Transform(text string, lineByLine bool) string {
	if lineByLine {
		return ReverseLines(text)
	}
	return Reverse(text)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	terminated := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		// An unterminated last line keeps its carriage return.
		if i == len(lines)-1 && !terminated {
			break
		}
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
