package signup

import (
	"errors"
	"testing"

	"github.com/marcus/signup/internal/validate"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidForm(t *testing.T) {
	s := FormState{Name: "Lee", Email: "lee@corp.kr", ExperienceTier: "8년 이상"}
	require.Empty(t, Validate(s, DefaultTiers, DefaultMessages))
	require.NoError(t, ValidationError(s, DefaultTiers))
}

func TestValidate_UnknownTier(t *testing.T) {
	s := FormState{Name: "Lee", Email: "lee@corp.kr", ExperienceTier: "20년"}
	errs := Validate(s, DefaultTiers, DefaultMessages)
	require.Equal(t, FieldErrors{
		FieldExperienceTier: DefaultMessages.Text(FieldExperienceTier, validate.KeyNotAllowed),
	}, errs)
}

func TestValidationError_FieldOrder(t *testing.T) {
	err := ValidationError(FormState{GithubLink: "x"}, DefaultTiers)
	require.Error(t, err)

	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr))
	got := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		got = append(got, fe.Field)
	}
	require.Equal(t, []string{"name", "email", "experienceTier", "githubLink"}, got)
}

func TestMessagesText_Fallbacks(t *testing.T) {
	custom := Messages{FieldName: {validate.KeyRequired: "이름을 입력해 주세요."}}
	require.Equal(t, "이름을 입력해 주세요.", custom.Text(FieldName, validate.KeyRequired))
	require.Equal(t, DefaultMessages[FieldEmail][validate.KeyRequired], custom.Text(FieldEmail, validate.KeyRequired))
	require.NotEmpty(t, custom.Text(FieldName, validate.KeyInvalidURL))
}

func TestFieldForNode(t *testing.T) {
	for _, f := range Fields {
		got, ok := FieldForNode(FieldNodeID(f))
		require.True(t, ok)
		require.Equal(t, f, got)
	}
	_, ok := FieldForNode(NodeSubmit)
	require.False(t, ok)
}
