package signup

import (
	"fmt"

	"github.com/marcus/signup/internal/validate"
)

// Messages maps a failed validator on a field to the text shown to the user.
type Messages map[Field]map[validate.MessageKey]string

// DefaultMessages is the built-in catalog.
var DefaultMessages = Messages{
	FieldName: {
		validate.KeyRequired: "Please enter your name or nickname.",
	},
	FieldEmail: {
		validate.KeyRequired:     "Please enter your email.",
		validate.KeyInvalidEmail: "Please enter a valid email address.",
	},
	FieldExperienceTier: {
		validate.KeyNotSelected: "Please select your years of experience.",
		validate.KeyNotAllowed:  "Please select one of the listed options.",
	},
	FieldGithubLink: {
		validate.KeyInvalidURL: "Please enter a valid URL.",
	},
}

// Text returns the message for key on f, falling back to a generic form.
func (m Messages) Text(f Field, key validate.MessageKey) string {
	if byKey, ok := m[f]; ok {
		if s, ok := byKey[key]; ok {
			return s
		}
	}
	if s, ok := DefaultMessages[f][key]; ok {
		return s
	}
	return fmt.Sprintf("%s: %s", f, key)
}

// Labels are the display labels for each field.
var Labels = map[Field]string{
	FieldName:           "Name / Nickname",
	FieldEmail:          "Email",
	FieldExperienceTier: "FE experience",
	FieldGithubLink:     "GitHub link (optional)",
}

// Placeholders are shown in empty inputs.
var Placeholders = map[Field]string{
	FieldName:           "TEST",
	FieldEmail:          "TEST@test.com",
	FieldExperienceTier: "Select…",
	FieldGithubLink:     "https://test.com",
}
