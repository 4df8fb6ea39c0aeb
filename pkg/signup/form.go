package signup

import (
	"maps"

	"github.com/marcus/signup/internal/validate"
)

// Field names one input of the signup form.
type Field string

const (
	FieldName           Field = "name"
	FieldEmail          Field = "email"
	FieldExperienceTier Field = "experienceTier"
	FieldGithubLink     Field = "githubLink"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldExperienceTier, FieldGithubLink}

// Valid reports whether f is one of the form's fields.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldEmail, FieldExperienceTier, FieldGithubLink:
		return true
	}
	return false
}

// DefaultTiers are the experience tier labels offered when none are configured.
var DefaultTiers = []string{"0-3년", "4-7년", "8년 이상"}

// FormState is the data collected by one open dialog.
type FormState struct {
	Name           string `json:"name" yaml:"name"`
	Email          string `json:"email" yaml:"email"`
	ExperienceTier string `json:"experienceTier" yaml:"experienceTier"`
	GithubLink     string `json:"githubLink" yaml:"githubLink"`
}

// Get returns the value of f.
func (s FormState) Get(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldExperienceTier:
		return s.ExperienceTier
	case FieldGithubLink:
		return s.GithubLink
	}
	return ""
}

// Set stores v in f. Unknown fields are ignored.
func (s *FormState) Set(f Field, v string) {
	switch f {
	case FieldName:
		s.Name = v
	case FieldEmail:
		s.Email = v
	case FieldExperienceTier:
		s.ExperienceTier = v
	case FieldGithubLink:
		s.GithubLink = v
	}
}

// FieldErrors maps a field to the message shown under it.
type FieldErrors map[Field]string

// Has reports whether f has an error.
func (e FieldErrors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Clone returns an independent copy.
func (e FieldErrors) Clone() FieldErrors {
	if e == nil {
		return FieldErrors{}
	}
	return maps.Clone(e)
}

// Check runs every field validator against s.
func Check(s FormState, tiers []string) map[Field]validate.Result {
	return map[Field]validate.Result{
		FieldName:           validate.RequiredText(s.Name),
		FieldEmail:          validate.Email(s.Email),
		FieldExperienceTier: validate.Enumerated(s.ExperienceTier, tiers),
		FieldGithubLink:     validate.URL(s.GithubLink),
	}
}

// Validate runs every validator and returns messages for the failures.
// An empty result means s can be submitted.
func Validate(s FormState, tiers []string, msgs Messages) FieldErrors {
	errs := FieldErrors{}
	for f, r := range Check(s, tiers) {
		if !r.OK {
			errs[f] = msgs.Text(f, r.Key)
		}
	}
	return errs
}

// ValidationError converts a check into the validate package's aggregate
// error, in field display order.
func ValidationError(s FormState, tiers []string) error {
	results := Check(s, tiers)
	var verr validate.ValidationError
	for _, f := range Fields {
		verr.Check(string(f), s.Get(f), results[f])
	}
	return verr.Err()
}
