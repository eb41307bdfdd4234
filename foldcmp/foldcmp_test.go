package foldcmp

import (
	"testing"

	"golang.org/x/text/language"
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestCompareFold(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		n    int
		want int // sign
	}{
		{"equal same case", "hello", "hello", 5, 0},
		{"equal mixed case", "HeLLo", "hEllO", 5, 0},
		{"bound hides difference", "abcdef", "abcxyz", 3, 0},
		{"bound exposes difference", "abcdef", "abcxyz", 4, -1},
		{"n zero", "a", "b", 0, 0},
		{"n negative", "a", "b", -3, 0},
		{"n beyond both", "abc", "abd", 100, -1},
		{"shorter sorts first", "abc", "abcd", 10, -1},
		{"longer sorts last", "abcd", "abc", 10, 1},
		{"equal up to shared bound", "abc", "abcd", 3, 0},
		{"empty vs empty", "", "", 4, 0},
		{"empty vs nonempty", "", "a", 1, -1},
		{"case difference only", "ABC", "abc", 3, 0},
		{"greater", "b", "a", 1, 1},
		{"non-ascii bytes compare verbatim", "\xc3\x89", "\xc3\xa9", 2, -1},
		{"fold does not touch digits", "a1", "A1", 2, 0},
		{"punctuation before letters", "a-b", "a.b", 3, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CompareFold([]byte(tc.a), []byte(tc.b), tc.n)
			if sign(got) != tc.want {
				t.Fatalf("CompareFold(%q, %q, %d) = %d, want sign %d", tc.a, tc.b, tc.n, got, tc.want)
			}
		})
	}
}

func TestCompareFoldAntisymmetric(t *testing.T) {
	pairs := [][2]string{
		{"alpha", "beta"},
		{"same", "SAME"},
		{"prefix", "prefixed"},
		{"", "x"},
	}
	for _, p := range pairs {
		for n := 0; n <= 10; n++ {
			ab := CompareFold([]byte(p[0]), []byte(p[1]), n)
			ba := CompareFold([]byte(p[1]), []byte(p[0]), n)
			if sign(ab) != -sign(ba) {
				t.Fatalf("antisymmetry violated for (%q, %q, %d): %d vs %d", p[0], p[1], n, ab, ba)
			}
		}
	}
}

func TestEqualFold(t *testing.T) {
	if !EqualFold([]byte("Content-Type"), []byte("content-type"), 12) {
		t.Fatal("expected fold equality")
	}
	if EqualFold([]byte("abc"), []byte("abd"), 3) {
		t.Fatal("expected inequality")
	}
	if !EqualFold([]byte("abc"), []byte("abd"), 2) {
		t.Fatal("expected equality within bound")
	}
}

// The locale tag is accepted for signature compatibility only; every tag,
// including ones whose real-world case rules differ (Turkish dotless i),
// must produce exactly the fixed fold behavior.
func TestCompareFoldLocaleIgnoresTag(t *testing.T) {
	tags := []language.Tag{
		{}, // zero value, the null capability
		language.Und,
		language.English,
		language.Turkish,
		language.Azerbaijani,
		language.MustParse("lt"),
	}
	inputs := [][2]string{
		{"i", "I"},
		{"INDEX", "index"},
		{"Istanbul", "istanbul"},
		{"abc", "abd"},
		{"", "x"},
	}
	for _, tag := range tags {
		for _, in := range inputs {
			for _, n := range []int{0, 1, 3, 100} {
				want := CompareFold([]byte(in[0]), []byte(in[1]), n)
				got := CompareFoldLocale([]byte(in[0]), []byte(in[1]), n, tag)
				if got != want {
					t.Fatalf("tag %v changed result for (%q, %q, %d): %d != %d", tag, in[0], in[1], n, got, want)
				}
			}
		}
	}
}
