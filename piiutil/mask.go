package piiutil

import (
	"net/url"
	"strings"
)

// MaskEmail masks the local part of an address, keeping its first and last
// rune. An optional "mailto:" prefix is preserved.
//
//	"user@example.com"        -> "u**r@example.com"
//	"mailto:ab@example.com"   -> "mailto:a*@example.com"
//	"weird"                   -> "w***d"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	prefix := ""
	if rest, ok := strings.CutPrefix(email, "mailto:"); ok {
		prefix, email = "mailto:", rest
	}

	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return prefix + maskToken(email)
	}
	return prefix + maskToken(email[:at]) + email[at:]
}

// MaskPhone masks digits and keeps the last 1 (<= 4 digits) or 4 of them.
// Formatting symbols and a "tel:" prefix survive.
//
//	"tel:2505555555" -> "tel:******5555"
//	"+1234"          -> "+***4"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	if !maskDigitsKeepLast(runes) {
		return maskToken(phone)
	}
	return string(runes)
}

// MaskURL keeps scheme and host and hides everything else.
//
//	"https://thegrid.io/u/42?t=x" -> "https://thegrid.io/***"
//	"https://thegrid.io"          -> "https://thegrid.io"
func MaskURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return maskToken(raw)
	}

	out := u.Scheme + "://" + u.Host
	if u.User != nil || (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
		out += "/***"
	}
	return out
}

// Mask picks a masking strategy from the shape of s.
func Mask(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ""
	case strings.Contains(s, "://"):
		return MaskURL(s)
	case strings.Contains(s, "@"):
		return MaskEmail(s)
	case countDigits([]rune(s)) > 0:
		return MaskPhone(s)
	default:
		return maskToken(s)
	}
}
