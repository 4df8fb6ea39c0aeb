package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/marcus/signup/internal/validate"
	"github.com/marcus/signup/pkg/signup"
	"gopkg.in/yaml.v3"
)

var sample = &signup.FormState{
	Name:           "Kim",
	Email:          "kim@example.com",
	ExperienceTier: "4-7년",
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"TEXT", FormatText, false},
		{"json", FormatJSON, false},
		{" yml ", FormatYAML, false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteForm_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteForm(&buf, sample, FormatJSON); err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["experienceTier"] != "4-7년" || got["githubLink"] != "" {
		t.Errorf("unexpected fields: %v", got)
	}
}

func TestWriteForm_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteForm(&buf, sample, FormatYAML); err != nil {
		t.Fatal(err)
	}
	var got signup.FormState
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid yaml %q: %v", buf.String(), err)
	}
	if got != *sample {
		t.Errorf("got %+v", got)
	}
}

func TestWriteForm_TextAndNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteForm(&buf, sample, FormatText); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(signup.Fields) {
		t.Fatalf("expected one line per field, got %q", buf.String())
	}
	if !strings.HasSuffix(lines[3], "-") {
		t.Errorf("empty github link should print '-': %q", lines[3])
	}

	buf.Reset()
	WriteForm(&buf, nil, FormatText)
	if buf.Len() != 0 {
		t.Errorf("nil form should print nothing in text mode, got %q", buf.String())
	}
	WriteForm(&buf, nil, FormatJSON)
	if strings.TrimSpace(buf.String()) != "null" {
		t.Errorf("nil form json = %q", buf.String())
	}
}

func TestReport(t *testing.T) {
	reports := Report(signup.FormState{Email: "bad"}, signup.DefaultTiers, signup.DefaultMessages)
	if len(reports) != 4 {
		t.Fatalf("expected 4 reports, got %d", len(reports))
	}
	if reports[0].Valid || reports[1].Valid || reports[2].Valid || !reports[3].Valid {
		t.Errorf("unexpected validity: %+v", reports)
	}
	if reports[1].Message != signup.DefaultMessages.Text(signup.FieldEmail, validate.KeyInvalidEmail) {
		t.Errorf("email message: %q", reports[1].Message)
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, reports, FormatText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "githubLink") || !strings.Contains(buf.String(), reports[0].Message) {
		t.Errorf("text report: %q", buf.String())
	}
}

func TestPrintHelpers(t *testing.T) {
	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	defer func() { Stdout, Stderr = oldOut, oldErr }()

	Error("bad %s", "thing")
	Warning("careful")
	Success("done")
	if !strings.Contains(errOut.String(), "ERROR: bad thing") || !strings.Contains(errOut.String(), "WARNING: careful") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if !strings.Contains(out.String(), "done") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestFieldErrorMessage(t *testing.T) {
	fe := &validate.FieldError{Field: "email", Key: validate.KeyRequired}
	got := FieldErrorMessage(fe, signup.DefaultMessages)
	if got != "email: "+signup.DefaultMessages.Text(signup.FieldEmail, validate.KeyRequired) {
		t.Errorf("got %q", got)
	}
}
