package validate

import (
	"strings"
	"testing"
)

var tiers = []string{"0-3년", "4-7년", "8년 이상"}

func TestRequiredText(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"a", true},
		{"  kim  ", true},
		{"닉네임", true},
	}
	for _, tc := range cases {
		got := RequiredText(tc.in)
		if got.OK != tc.want {
			t.Errorf("RequiredText(%q).OK = %v, want %v", tc.in, got.OK, tc.want)
		}
		if !got.OK && got.Key != KeyRequired {
			t.Errorf("RequiredText(%q).Key = %q, want %q", tc.in, got.Key, KeyRequired)
		}
	}
}

// TestRequiredTextMatchesTrim checks the verdict tracks TrimSpace for
// arbitrary inputs.
func TestRequiredTextMatchesTrim(t *testing.T) {
	inputs := []string{"", " ", "x", " x ", " ", "\r\n", "a b", "\t\tz"}
	for _, in := range inputs {
		want := strings.TrimSpace(in) != ""
		if got := RequiredText(in).OK; got != want {
			t.Errorf("RequiredText(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
		key  MessageKey
	}{
		{"a@b.com", true, ""},
		{"first.last@example.co.kr", true, ""},
		{"user@[192.168.0.1]", true, ""},
		{"\"quoted name\"@example.com", true, ""},
		{"", false, KeyRequired},
		{"   ", false, KeyRequired},
		{"a@b", false, KeyInvalidEmail},
		{"a@b.c", false, KeyInvalidEmail},
		{"@b.com", false, KeyInvalidEmail},
		{"a@@b.com", false, KeyInvalidEmail},
		{"a@b@c.com", false, KeyInvalidEmail},
		{"a b@c.com", false, KeyInvalidEmail},
		{"a..b@c.com", false, KeyInvalidEmail},
		{"plainaddress", false, KeyInvalidEmail},
		{" a@b.com", false, KeyInvalidEmail},
	}
	for _, tc := range cases {
		got := Email(tc.in)
		if got.OK != tc.want {
			t.Errorf("Email(%q).OK = %v, want %v", tc.in, got.OK, tc.want)
			continue
		}
		if got.Key != tc.key {
			t.Errorf("Email(%q).Key = %q, want %q", tc.in, got.Key, tc.key)
		}
	}
}

func TestURL(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"https://example.com", true},
		{"https://github.com/marcus", true},
		{"http://localhost:8080/path?q=1", true},
		{"not a url", false},
		{"github.com/marcus", false},
		{"https://", false},
		{"mailto:a@b.com", false},
		{"https://exa mple.com", false},
	}
	for _, tc := range cases {
		got := URL(tc.in)
		if got.OK != tc.want {
			t.Errorf("URL(%q).OK = %v, want %v", tc.in, got.OK, tc.want)
		}
		if !got.OK && got.Key != KeyInvalidURL {
			t.Errorf("URL(%q).Key = %q, want %q", tc.in, got.Key, KeyInvalidURL)
		}
	}
}

func TestEnumerated(t *testing.T) {
	if r := Enumerated("4-7년", tiers); !r.OK {
		t.Errorf("Enumerated(4-7년) should pass, got %+v", r)
	}
	if r := Enumerated("", tiers); r.OK || r.Key != KeyNotSelected {
		t.Errorf("Enumerated(\"\") = %+v, want fail with %q", r, KeyNotSelected)
	}
	if r := Enumerated("9년", tiers); r.OK || r.Key != KeyNotAllowed {
		t.Errorf("Enumerated(9년) = %+v, want fail with %q", r, KeyNotAllowed)
	}
	if r := Enumerated("0-3년", nil); r.OK {
		t.Error("Enumerated against an empty set should fail")
	}
}

func TestValidationError(t *testing.T) {
	var verr ValidationError
	verr.Check("name", "", RequiredText(""))
	verr.Check("email", "a@b.com", Email("a@b.com"))

	if !verr.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(verr.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(verr.Errors))
	}
	if verr.Error() != "name: required" {
		t.Errorf("Error() = %q", verr.Error())
	}

	verr.Check("githubLink", "nope", URL("nope"))
	if verr.Error() != "2 validation errors" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if verr.Err() == nil {
		t.Error("Err() should be non-nil")
	}

	var empty ValidationError
	if empty.Err() != nil {
		t.Error("Err() on empty should be nil")
	}
}
