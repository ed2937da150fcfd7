// Package classify recognizes telephone numbers, email addresses and web URLs
// in untyped input and rewrites them to a canonical "tel:", "mailto:" or URL
// form.
package classify

import (
	"fmt"

	"github.com/vortex-fintech/go-contacturl/logger"
	"github.com/vortex-fintech/go-contacturl/piiutil"
	"github.com/vortex-fintech/go-contacturl/syntax"
)

// Recorder receives one observation per public classification call.
type Recorder interface {
	Observe(kind, result string)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, string) {}

// Classifier is immutable and safe for concurrent use.
type Classifier struct {
	syntax syntax.Checker
	log    logger.LoggerInterface
	rec    Recorder
}

type Option func(*Classifier)

// WithSyntax swaps the email/URL syntax checker.
func WithSyntax(s syntax.Checker) Option {
	return func(c *Classifier) {
		if s != nil {
			c.syntax = s
		}
	}
}

// WithLogger enables debug logging of rejected values. Values are masked.
func WithLogger(l logger.LoggerInterface) Option {
	return func(c *Classifier) {
		if l != nil {
			c.log = l
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(c *Classifier) {
		if r != nil {
			c.rec = r
		}
	}
}

func New(opts ...Option) *Classifier {
	c := &Classifier{
		syntax: syntax.Default(),
		log:    logger.Nop(),
		rec:    nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var std = New()

// IsEmail returns "mailto:<address>" when v is an email address.
func IsEmail(v any) (string, bool) { return std.Email(v).Unpack() }

// IsTel returns "tel:<digits>" when v carries at least MinTelDigits digits.
func IsTel(v any) (string, bool) { return std.Tel(v).Unpack() }

// IsWebURL returns v as a URL, prefixed with "http://" when it has no scheme.
func IsWebURL(v any) (string, bool) { return std.WebURL(v).Unpack() }

// IsValidURL tries telephone, email and web URL, in that order.
func IsValidURL(v any) (string, bool) { return std.Any(v).Unpack() }

// Classify is IsValidURL with the full Result.
func Classify(v any) Result { return std.Any(v) }

func (c *Classifier) Email(v any) Result { return c.observe(v, c.email(v)) }

func (c *Classifier) Tel(v any) Result { return c.observe(v, c.tel(v)) }

func (c *Classifier) WebURL(v any) Result { return c.observe(v, c.web(v)) }

// Any evaluates every classifier and keeps the first match by priority:
// telephone, then email, then web URL.
func (c *Classifier) Any(v any) Result {
	tel, email, web := c.tel(v), c.email(v), c.web(v)

	var r Result
	switch {
	case tel.OK():
		r = tel
	case email.OK():
		r = email
	case web.OK():
		r = web
	default:
		r = rejected(KindNone, ReasonNoMatch)
		if _, ok := v.(string); !ok {
			r.Reason = ReasonNotText
		}
	}
	return c.observe(v, r)
}

func (c *Classifier) observe(v any, r Result) Result {
	if r.OK() {
		c.rec.Observe(r.Kind.String(), "ok")
		return r
	}

	c.rec.Observe(r.Kind.String(), string(r.Reason))
	if text, ok := v.(string); ok {
		c.log.Debugw("contact rejected", "kind", r.Kind.String(), "reason", string(r.Reason), "input", piiutil.Mask(text))
	} else {
		c.log.Debugw("contact rejected", "kind", r.Kind.String(), "reason", string(r.Reason), "input_type", fmt.Sprintf("%T", v))
	}
	return r
}
