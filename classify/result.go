package classify

// Kind names the shape a value was classified as.
type Kind uint8

const (
	KindNone Kind = iota
	KindTel
	KindEmail
	KindWeb
)

func (k Kind) String() string {
	switch k {
	case KindTel:
		return "tel"
	case KindEmail:
		return "email"
	case KindWeb:
		return "web"
	default:
		return "none"
	}
}

// Reason is a stable code explaining a failed classification.
type Reason string

const (
	ReasonNotText      Reason = "not_text"
	ReasonInvalidEmail Reason = "invalid_email"
	ReasonNoDigits     Reason = "no_digits"
	ReasonTooFewDigits Reason = "too_few_digits"
	ReasonInvalidURL   Reason = "invalid_url"
	ReasonNoMatch      Reason = "no_match"
)

// Result is the outcome of one classification. On success Value holds the
// canonical form and Reason is empty. On failure Value is empty.
type Result struct {
	Kind   Kind
	Value  string
	Reason Reason
}

func (r Result) OK() bool { return r.Reason == "" && r.Value != "" }

// Unpack returns the canonical value and whether classification succeeded.
func (r Result) Unpack() (string, bool) {
	if !r.OK() {
		return "", false
	}
	return r.Value, true
}

func matched(k Kind, value string) Result { return Result{Kind: k, Value: value} }

func rejected(k Kind, reason Reason) Result { return Result{Kind: k, Reason: reason} }
