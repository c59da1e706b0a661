// Package validate performs permissive format checks on URLs and email
// addresses. It does not sanitize input or check reachability.
package validate

import (
	"net/url"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsURL reports whether s parses as an absolute URL whose scheme is exactly
// "http" or "https" and which names a host. The slashless form
// "http:example.com" counts, as browsers read it as "http://example.com/".
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" && u.Opaque != "" {
		u, err = url.Parse(s[:len(u.Scheme)] + "://" + s[len(u.Scheme)+1:])
		if err != nil {
			return false
		}
	}
	return u.Host != ""
}

// IsEmail reports whether the trimmed s has a non-whitespace local part, an
// "@", and a domain containing a dot.
func IsEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}
