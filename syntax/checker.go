package syntax

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Checker answers whether a text has email or URL syntax.
type Checker interface {
	Email(s string) bool
	URL(s string) bool
}

const maxURLLength = 2083

var defaultSchemes = []string{"http", "https", "ftp"}

// Playground is a Checker backed by go-playground/validator.
type Playground struct {
	v       *validator.Validate
	schemes map[string]struct{}
}

var _ Checker = (*Playground)(nil)

// NewPlayground builds a Playground. With no schemes the http, https and ftp
// schemes are accepted.
func NewPlayground(v *validator.Validate, schemes ...string) *Playground {
	if v == nil {
		v = validator.New()
	}
	if len(schemes) == 0 {
		schemes = defaultSchemes
	}
	set := make(map[string]struct{}, len(schemes))
	for _, s := range schemes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return &Playground{v: v, schemes: set}
}

func (p *Playground) Email(s string) bool {
	if s == "" {
		return false
	}
	return p.v.Var(s, "email") == nil
}

// URL accepts http(s)/ftp URLs whose host is a fully qualified domain name or
// an IP literal. The scheme may be omitted, "thegrid.io" is a URL.
func (p *Playground) URL(s string) bool {
	if s == "" || len(s) >= maxURLLength {
		return false
	}
	if strings.ContainsFunc(s, isSpace) || strings.HasPrefix(strings.ToLower(s), "mailto:") {
		return false
	}

	raw := s
	if !strings.Contains(s, "://") {
		raw = "http://" + s
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if _, ok := p.schemes[strings.ToLower(u.Scheme)]; !ok {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if port := u.Port(); port != "" && !validPort(port) {
		return false
	}

	return p.v.Var(host, "fqdn") == nil || p.v.Var(host, "ip") == nil
}

func validPort(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0 && n <= 65535
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
