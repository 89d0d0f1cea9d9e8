// Package segmenter splits extracted exam text into individual questions.
package segmenter

import (
	"regexp"
	"strings"
)

// Whitespace and digits match Unicode classes, so NBSP indents from PDF
// output still start a question. "1.Define" does not: a numbered start needs
// whitespace or end of line after the marker.
var (
	// "1. ...", "12) ...", or a bare "3." on its own line
	numberedStart = regexp.MustCompile(`^[\s\p{Z}]*\p{Nd}+[.)]([\s\p{Z}]|$)`)
	// "Q1", "q12 ..."
	prefixedStart = regexp.MustCompile(`^[\s\p{Z}]*[Qq]\p{Nd}+`)
)

// IsQuestionStart reports whether line opens a new question.
func IsQuestionStart(line string) bool {
	return numberedStart.MatchString(line) || prefixedStart.MatchString(line)
}

// Split segments text into trimmed, non-empty questions in document order.
//
// Lines that do not open a question are appended to the open one with a
// single space. Text before the first numbered line is kept as a question of
// its own, so a document without any numbered line yields a single question.
func Split(text string) []string {
	questions := make([]string, 0)

	var current strings.Builder
	flush := func() {
		if q := strings.TrimSpace(current.String()); q != "" {
			questions = append(questions, q)
		}
		current.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if IsQuestionStart(line) {
			flush()
			current.WriteString(line)
			continue
		}

		current.WriteByte(' ')
		current.WriteString(line)
	}
	flush()

	return questions
}
