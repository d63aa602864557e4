package coursefetch

import (
	"html"
	"math/rand/v2"
	"strings"
)

// forbiddenReplacer strips the characters no filesystem accepts in a name.
var forbiddenReplacer = strings.NewReplacer(
	":", "-",
	"/", "-",
	"\x00", "-",
	"\n", "",
)

var parenReplacer = strings.NewReplacer("(", "", ")", "")

// CleanFilenameMinimal decodes HTML entities in s and replaces only the
// characters that are problematic for every filesystem: ':', '/' and NUL
// become '-', newlines are removed.
func CleanFilenameMinimal(s string) string {
	return forbiddenReplacer.Replace(html.UnescapeString(s))
}

// CleanFilename sanitizes s for use as a filename.
//
// On top of CleanFilenameMinimal it removes parentheses and trailing dots,
// trims surrounding whitespace, turns spaces into underscores and drops
// every character outside ASCII letters, digits and "-_.()".
func CleanFilename(s string) string {
	s = CleanFilenameMinimal(s)
	s = parenReplacer.Replace(s)
	s = strings.TrimRight(s, ".")
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	return strings.Map(func(r rune) rune {
		if isFilenameRune(r) {
			return r
		}
		return -1
	}, s)
}

func isFilenameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune("-_.()", r):
		return true
	}
	return false
}

const randomChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns a pseudo-random string of n ASCII letters and digits.
// It is meant for disposable identifiers, not for secrets.
func RandomString(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = randomChars[rand.IntN(len(randomChars))]
	}
	return string(b)
}
