package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// StripPunctuation removes every punctuation and symbol rune, leaving
// letters, digits and whitespace untouched.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, s)
}

// Slugify turns a free-text query into a URL path segment:
// punctuation stripped, words joined by hyphens.
// "The Matrix 1999!" -> "The-Matrix-1999"
func Slugify(s string) string {
	words := strings.Fields(StripPunctuation(s))
	return strings.Join(words, "-")
}

// Humanize reverses Slugify well enough for display: hyphens become
// spaces and each word is title-cased. "keanu-reeves" -> "Keanu Reeves"
func Humanize(slug string) string {
	slug = strings.TrimPrefix(slug, "/")
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// CollapseSpaces trims and squeezes inner whitespace runs to one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
