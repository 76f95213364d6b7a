// Package segment splits raw output text into sentence-like units for
// claim-by-claim scanning.
package segment

import (
	"regexp"
	"strings"
)

var terminators = regexp.MustCompile(`[.!?]+`)

// Sentences splits text on runs of sentence-terminal punctuation.
// Segments are trimmed; empty segments are dropped. Order is preserved.
// An empty or whitespace-only input yields an empty slice.
func Sentences(text string) []string {
	parts := terminators.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
