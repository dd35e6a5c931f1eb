package studio

import (
	"regexp"
	"strings"
)

var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)\\n?\\s*```")

// ExtractJSON locates the JSON value inside a model reply that may be
// wrapped in a fenced code block or surrounded by prose. Without a fence
// it takes the first top-level balanced {...} or [...] span, tracked with
// a bracket counter rather than first/last indexes so trailing prose
// containing brackets cannot widen the span. When no bracket structure
// exists at all the trimmed input is returned as-is; the caller's JSON
// parse failure then surfaces as a malformed-response error.
func ExtractJSON(raw string) string {
	text := strings.TrimSpace(raw)

	if m := jsonFenceRe.FindStringSubmatch(text); len(m) > 1 && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1])
	}

	firstBrace := strings.IndexByte(text, '{')
	firstBracket := strings.IndexByte(text, '[')
	start := -1
	if firstBrace != -1 && (firstBracket == -1 || firstBrace < firstBracket) {
		start = firstBrace
	} else if firstBracket != -1 {
		start = firstBracket
	}
	if start == -1 {
		return text
	}

	open := text[start]
	var closing byte = '}'
	if open == '[' {
		closing = ']'
	}
	balance := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case open:
			balance++
		case closing:
			balance--
		}
		if balance == 0 {
			return strings.TrimSpace(text[start : i+1])
		}
	}
	return text
}
