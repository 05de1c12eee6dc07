package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// NormalizeFullName trims the input, collapses internal whitespace and
// title-cases each word. Returns "" when nothing usable remains.
func NormalizeFullName(name string) string {
	fields := strings.Fields(name)
	for i, w := range fields {
		fields[i] = titleWord(w)
	}
	return strings.Join(fields, " ")
}

// NormalizeUsername trims, lowercases and strips all whitespace.
func NormalizeUsername(username string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(username)) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DisplayName prefers a non-empty trimmed full name; otherwise it derives a
// readable name from the username by splitting at digit runs and title-casing,
// so "maria123" becomes "Maria 123".
func DisplayName(fullName, username string) string {
	if trimmed := strings.TrimSpace(fullName); trimmed != "" {
		return trimmed
	}
	spaced := digitRun.ReplaceAllString(username, " $0")
	fields := strings.Fields(spaced)
	for i, w := range fields {
		fields[i] = titleWord(w)
	}
	return strings.Join(fields, " ")
}

// titleWord uppercases the first rune when it is a letter and lowercases the
// rest, matching the store-side INITCAP the contract was written against.
func titleWord(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) > 0 && unicode.IsLetter(runes[0]) {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
