package swatchgen

import (
	"go/token"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	parenRegExp     = regexp.MustCompile(`\([^)]*\)`)
	stripRegExp     = regexp.MustCompile(`[/'’]`)
	separatorRegExp = regexp.MustCompile(`[^\p{L}\p{Nd}]+`)
)

// Identifier turns a raw survey name into an exported Go identifier,
// e.g. "robin's egg blue" -> "RobinsEggBlue". Returns "" when nothing usable is left.
func Identifier(raw string) string {
	s := parenRegExp.ReplaceAllString(raw, " ")
	s = stripRegExp.ReplaceAllString(s, "")
	s = separatorRegExp.ReplaceAllString(s, " ")

	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		b.WriteString(caser.String(word))
	}

	id := b.String()
	if id == "" {
		return ""
	}
	if first := []rune(id)[0]; unicode.IsDigit(first) {
		id = "X" + id
	}
	if !token.IsIdentifier(id) {
		return ""
	}
	return id
}
