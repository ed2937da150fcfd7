package classify

import "strings"

const mailtoPrefix = "mailto:"

func (c *Classifier) email(v any) Result {
	text, ok := v.(string)
	if !ok {
		return rejected(KindEmail, ReasonNotText)
	}

	// the first "mailto:" is dropped wherever it appears, not only as a prefix
	addr := strings.Replace(text, mailtoPrefix, "", 1)
	if !c.syntax.Email(addr) {
		return rejected(KindEmail, ReasonInvalidEmail)
	}
	return matched(KindEmail, mailtoPrefix+addr)
}
