package snippets

import (
	"strings"
	"unicode/utf8"
)

// summarizeMaxRunes bounds the summary length.
const summarizeMaxRunes = 280

// Summarize produces a short extract of a snippet: up to maxSentences
// leading sentences, truncated to a rune budget with an ellipsis when the
// snippet continues past the cut. Whitespace is collapsed first.
func Summarize(content string, maxSentences int) string {
	collapsed := strings.Join(strings.Fields(content), " ")
	if collapsed == "" {
		return ""
	}

	summary := collapsed
	if maxSentences > 0 {
		if cut := sentenceCut(collapsed, maxSentences); cut < len(collapsed) {
			summary = collapsed[:cut]
		}
	}

	if utf8.RuneCountInString(summary) > summarizeMaxRunes {
		runes := []rune(summary)
		summary = strings.TrimRight(string(runes[:summarizeMaxRunes]), " ") + "…"
	} else if len(summary) < len(collapsed) {
		summary += " …"
	}
	return summary
}

// sentenceCut returns the byte offset just past the n-th sentence terminator,
// or len(s) when fewer sentences exist.
func sentenceCut(s string, n int) int {
	seen := 0
	for i, r := range s {
		switch r {
		case '.', '!', '?':
			seen++
			if seen == n {
				return i + utf8.RuneLen(r)
			}
		}
	}
	return len(s)
}
