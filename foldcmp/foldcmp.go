// Package foldcmp provides bounded, byte-wise case-insensitive
// comparison. Folding follows the fixed POSIX rules: only ASCII letters
// fold, every other byte compares verbatim.
package foldcmp

import "golang.org/x/text/language"

// lower returns the ASCII lowercase version of b.
func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// CompareFold compares at most n bytes of a and b, case-insensitively.
// It returns a negative value if a sorts before b, zero if the compared
// prefixes are equal, and a positive value otherwise. n <= 0 yields
// zero; within the bound, a sequence that runs out first sorts before
// the longer one.
func CompareFold(a, b []byte, n int) int {
	if n <= 0 {
		return 0
	}
	if n < len(a) {
		a = a[:n]
	}
	if n < len(b) {
		b = b[:n]
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if ca, cb := lower(a[i]), lower(b[i]); ca != cb {
			return int(ca) - int(cb)
		}
	}
	return len(a) - len(b)
}

// EqualFold reports whether the first n bytes of a and b are equal,
// case-insensitively.
func EqualFold(a, b []byte, n int) bool {
	return CompareFold(a, b, n) == 0
}

// CompareFoldLocale mirrors the signature of locale-aware comparison
// APIs. The tag is accepted for interface compatibility only: a single
// fixed fold behavior is currently supported and the tag has no effect,
// leaving room for locale-differentiated folding later without an
// interface change. Pass language.Und when no locale is in play.
func CompareFoldLocale(a, b []byte, n int, tag language.Tag) int {
	return CompareFold(a, b, n)
}
