package suggest

import (
	"strings"
	"unicode"
)

// Normalize folds an accessor name for comparison: CamelCase is split,
// separators ('_', '-', ' ', '=') are dropped and the result is lower case.
// "chapterTitle=", "chapter_title" and "ChapterTitle" all normalize to
// "chaptertitle".
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, tok := range Tokens(s) {
		b.WriteString(tok)
	}

	return b.String()
}

// Tokens splits a name into lower-case words.
//   - "OrderID" -> ["order", "id"]
//   - "XMLParser" -> ["xml", "parser"]
//   - "book_tags=" -> ["book", "tags"]
func Tokens(s string) []string {
	var (
		tokens []string
		cur    []rune
	)

	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && wordBoundary(runes, i) {
			flush()
		}

		cur = append(cur, r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '='
}

func wordBoundary(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// orderID: split before 'I'
	if !unicode.IsUpper(prev) {
		return true
	}

	// XMLParser: split before 'P'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
