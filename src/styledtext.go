package studio

import (
	"regexp"
	"strings"
)

// Target platforms do not render markdown, so emphasis is carried by
// Unicode mathematical sans-serif glyphs instead. The sans-serif planes
// are contiguous for A-Z, a-z and (bold only) 0-9, which keeps the maps
// reversible.
var (
	boldMap    = map[rune]rune{}
	italicMap  = map[rune]rune{}
	toPlainMap = map[rune]rune{}
)

func init() {
	for i := rune(0); i < 26; i++ {
		mapStyled('A'+i, 0x1D5D4+i, boldMap)   // bold capitals
		mapStyled('a'+i, 0x1D5EE+i, boldMap)   // bold lowercase
		mapStyled('A'+i, 0x1D608+i, italicMap) // italic capitals
		mapStyled('a'+i, 0x1D622+i, italicMap) // italic lowercase
	}
	for i := rune(0); i < 10; i++ {
		mapStyled('0'+i, 0x1D7EC+i, boldMap) // bold digits
	}
}

func mapStyled(plain, styled rune, m map[rune]rune) {
	m[plain] = styled
	toPlainMap[styled] = plain
}

func mapRunes(s string, m map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if styled, ok := m[r]; ok {
			r = styled
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToBold converts mappable characters to their bold glyph equivalents.
func ToBold(s string) string { return mapRunes(s, boldMap) }

// ToItalic converts mappable characters to their italic glyph equivalents.
func ToItalic(s string) string { return mapRunes(s, italicMap) }

// ToPlain reverses ToBold and ToItalic.
func ToPlain(s string) string { return mapRunes(s, toPlainMap) }

// IsStyled reports whether s contains at least one styled glyph. The
// editor uses this to decide whether re-applying a style should revert
// the selection to plain characters.
func IsStyled(s string) bool {
	for _, r := range s {
		if _, ok := toPlainMap[r]; ok {
			return true
		}
	}
	return false
}

var (
	boldSpanRe   = regexp.MustCompile(`(?s)\*\*(.+?)\*\*`)
	italicSpanRe = regexp.MustCompile(`(?s)\*(.+?)\*`)
)

// ApplyInlineStyles replaces **bold** and *italic* markdown spans with
// styled glyphs. Bold runs first so its markers are consumed before the
// single-asterisk pass. A single-asterisk span with leading or trailing
// space, or one crossing a line break, is a stray marker (typically a
// list bullet), not emphasis.
func ApplyInlineStyles(text string) string {
	text = boldSpanRe.ReplaceAllStringFunc(text, func(match string) string {
		return ToBold(match[2 : len(match)-2])
	})
	text = italicSpanRe.ReplaceAllStringFunc(text, func(match string) string {
		content := match[1 : len(match)-1]
		if strings.HasPrefix(content, " ") || strings.HasSuffix(content, " ") || strings.Contains(content, "\n") {
			return match
		}
		return ToItalic(content)
	})
	return text
}

var (
	crlfRe       = regexp.MustCompile(`\r\n`)
	multiLineRe  = regexp.MustCompile(`\n{2,}`)
	multiSpaceRe = regexp.MustCompile(` {2,}`)
)

// CanonicalizeWhitespace normalizes line endings, collapses newline and
// space runs, and trims the result.
func CanonicalizeWhitespace(s string) string {
	s = crlfRe.ReplaceAllString(s, "\n")
	s = multiLineRe.ReplaceAllString(s, "\n")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeCopy is the one-shot repair pass applied to generated prose.
func NormalizeCopy(s string) string {
	return CanonicalizeWhitespace(ApplyInlineStyles(strings.TrimSpace(s)))
}
