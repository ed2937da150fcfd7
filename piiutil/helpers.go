package piiutil

import "unicode"

const (
	shortDigitCountThreshold = 4
	keepShortDigits          = 1
	keepLongDigits           = 4
)

func countDigits(runes []rune) int {
	n := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// maskDigitsKeepLast masks digits in place, keeping 1 trailing digit when
// there are at most 4 and 4 trailing digits otherwise. It reports false when
// there are no digits at all.
func maskDigitsKeepLast(runes []rune) bool {
	total := countDigits(runes)
	if total == 0 {
		return false
	}

	keep := keepLongDigits
	if total <= shortDigitCountThreshold {
		keep = keepShortDigits
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return true
}

// maskToken keeps the first and last rune of s.
func maskToken(s string) string {
	runes := []rune(s)
	switch n := len(runes); n {
	case 0, 1:
		return s
	case 2:
		return string(runes[0]) + "*"
	default:
		for i := 1; i < n-1; i++ {
			runes[i] = '*'
		}
		return string(runes)
	}
}
