package classify

import "iter"

// Digits yields the ASCII decimal digits of s, left to right.
func Digits(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if r < '0' || r > '9' {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
