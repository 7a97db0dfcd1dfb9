package main

import (
	"strings"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/unicode/norm"
)

const untitledSlug = "untitled"

// transliterate maps a title to ASCII. NFKC folds compatibility forms such as
// fullwidth letters and ligatures before the unidecode table is applied.
func transliterate(title string) string {
	return unidecode.Unidecode(norm.NFKC.String(title))
}

// CreateSlug derives the file name stem for a note title
func CreateSlug(title string) string {
	if title == "" {
		return untitledSlug
	}
	return slugify(transliterate(title))
}

// slugify keeps [a-z0-9], lowercases [A-Z] and collapses everything else into
// a single dash. There is never a leading dash and a trailing one is dropped.
func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevDash := true

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevDash = false
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			prevDash = false
			b.WriteByte(c - 'A' + 'a')
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
