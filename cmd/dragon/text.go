package main

import (
	"strings"
	"unicode"
)

// autistify rewrites a phrase in alternating letter case, starting with
// lowercase. Characters that are not letters pass through unchanged and do
// not advance the alternation.
func autistify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upper := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		upper = !upper
	}
	return b.String()
}

// shout returns the phrase in all caps.
func shout(s string) string {
	return strings.ToUpper(s)
}
