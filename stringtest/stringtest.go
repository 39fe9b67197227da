// Package stringtest builds multi-line source fixtures for tests.
package stringtest

import (
	"strings"
)

// Input removes one leading and one trailing newline from s, then strips the
// indentation shared by all non-blank lines. Whitespace-only lines become
// empty. It lets tests embed source text in indented raw string literals:
//
//	src := stringtest.Input(`
//		/**
//		 * Add two numbers.
//		 */
//		function add(a, b) {}
//	`)
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 && strings.TrimLeft(s[i+1:], " \t") == "" {
		s = s[:i]
	}

	lines := strings.Split(s, "\n")
	prefix := ""
	first := true

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix, first = indent, false

			continue
		}

		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins lines with LF line endings.
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// JoinCRLF joins lines with CRLF line endings, for fixtures exercising
// Windows line endings.
func JoinCRLF(lines ...string) string {
	return strings.Join(lines, "\r\n")
}
