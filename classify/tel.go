package classify

import "strings"

const telPrefix = "tel:"

// MinTelDigits is the smallest digit count accepted as a telephone number.
const MinTelDigits = 7

func (c *Classifier) tel(v any) Result {
	text, ok := v.(string)
	if !ok {
		return rejected(KindTel, ReasonNotText)
	}
	text = strings.Replace(text, telPrefix, "", 1)

	var b strings.Builder
	b.Grow(len(telPrefix) + len(text))
	b.WriteString(telPrefix)

	n := 0
	for d := range Digits(text) {
		b.WriteRune(d)
		n++
	}

	switch {
	case n == 0:
		return rejected(KindTel, ReasonNoDigits)
	case n < MinTelDigits:
		return rejected(KindTel, ReasonTooFewDigits)
	}
	return matched(KindTel, b.String())
}
