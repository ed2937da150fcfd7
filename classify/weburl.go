package classify

import "strings"

const defaultScheme = "http://"

func (c *Classifier) web(v any) Result {
	text, ok := v.(string)
	if !ok {
		return rejected(KindWeb, ReasonNotText)
	}

	if c.syntax.URL(text) {
		if strings.Contains(text, ":") {
			return matched(KindWeb, text)
		}
		return matched(KindWeb, defaultScheme+text)
	}

	// custom schemes like skype:// are passed through untouched
	if hasSchemeSeparator(text) {
		return matched(KindWeb, text)
	}
	return rejected(KindWeb, ReasonInvalidURL)
}

func hasSchemeSeparator(s string) bool {
	scheme, rest, ok := strings.Cut(s, "://")
	return ok && scheme != "" && rest != ""
}
