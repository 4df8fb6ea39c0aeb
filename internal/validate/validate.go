// Package validate holds the pure field validators used by the signup form.
//
// Validators never produce user-facing text. A failed Result carries a
// MessageKey and the presentation layer decides how to word it.
package validate

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// MessageKey identifies why a value failed validation.
type MessageKey string

const (
	KeyRequired     MessageKey = "required"
	KeyInvalidEmail MessageKey = "invalid_email"
	KeyInvalidURL   MessageKey = "invalid_url"
	KeyNotSelected  MessageKey = "not_selected"
	KeyNotAllowed   MessageKey = "not_allowed"
)

// Result is the verdict of a single validator.
type Result struct {
	OK  bool
	Key MessageKey // empty when OK
}

// Pass is the successful Result.
var Pass = Result{OK: true}

func fail(key MessageKey) Result {
	return Result{Key: key}
}

// emailPattern accepts a dotted or quoted local part and a domain that is
// either dotted labels ending in 2+ letters or a bracketed dotted quad.
var emailPattern = regexp.MustCompile(
	`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@` +
		`((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// RequiredText fails when s is empty after trimming whitespace.
func RequiredText(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail(KeyRequired)
	}
	return Pass
}

// Email fails when s is blank or not shaped like local@domain.
func Email(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail(KeyRequired)
	}
	if strings.Count(s, "@") != 1 || !emailPattern.MatchString(s) {
		return fail(KeyInvalidEmail)
	}
	return Pass
}

// URL accepts a blank value (the field is optional); anything else must be
// an absolute URL with both a scheme and an authority.
func URL(s string) Result {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pass
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fail(KeyInvalidURL)
	}
	return Pass
}

// Enumerated fails when s is empty or not one of allowed.
func Enumerated(s string, allowed []string) Result {
	if s == "" {
		return fail(KeyNotSelected)
	}
	if !slices.Contains(allowed, s) {
		return fail(KeyNotAllowed)
	}
	return Pass
}
