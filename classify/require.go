package classify

import "github.com/vortex-fintech/go-contacturl/errors"

// ErrorDomain is set on errors returned by Require.
const ErrorDomain = "contacturl"

// Require runs IsValidURL and turns a failure into an InvalidArgument
// errors.ErrorResponse with one violation on field.
func Require(v any, field string) (string, error) { return std.Require(v, field) }

func (c *Classifier) Require(v any, field string) (string, error) {
	r := c.Any(v)
	if r.OK() {
		return r.Value, nil
	}
	return "", errors.Violation(field, string(r.Reason), "expected a telephone number, email address or URL").
		WithDomain(ErrorDomain)
}
