// Package output renders command results for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/signup/internal/validate"
	"github.com/marcus/signup/pkg/signup"
	"gopkg.in/yaml.v3"
)

// Format selects how a committed form is printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat parses s case-insensitively. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Writers used by the print helpers; tests swap them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// Error prints an error line to Stderr.
func Error(format string, args ...any) {
	fmt.Fprintln(Stderr, errorStyle.Render("ERROR:")+" "+fmt.Sprintf(format, args...))
}

// Warning prints a warning line to Stderr.
func Warning(format string, args ...any) {
	fmt.Fprintln(Stderr, warnStyle.Render("WARNING:")+" "+fmt.Sprintf(format, args...))
}

// Success prints a confirmation line to Stdout.
func Success(format string, args ...any) {
	fmt.Fprintln(Stdout, successStyle.Render(fmt.Sprintf(format, args...)))
}

// WriteForm prints a committed form. A nil form prints nothing for text and
// null for the structured formats.
func WriteForm(w io.Writer, data *signup.FormState, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}

	if data == nil {
		return nil
	}
	for _, field := range signup.Fields {
		v := data.Get(field)
		if v == "" {
			v = "-"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", labelStyle.Render(signup.Labels[field]+":"), v); err != nil {
			return err
		}
	}
	return nil
}

// FieldReport is one field's line in a validation report.
type FieldReport struct {
	Field   string `json:"field" yaml:"field"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Report builds a per-field report in display order.
func Report(data signup.FormState, tiers []string, msgs signup.Messages) []FieldReport {
	results := signup.Check(data, tiers)
	reports := make([]FieldReport, 0, len(signup.Fields))
	for _, f := range signup.Fields {
		r := results[f]
		fr := FieldReport{Field: string(f), Valid: r.OK}
		if !r.OK {
			fr.Message = msgs.Text(f, r.Key)
		}
		reports = append(reports, fr)
	}
	return reports
}

// WriteReport prints a validation report.
func WriteReport(w io.Writer, reports []FieldReport, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, r := range reports {
		mark := successStyle.Render("✓")
		line := r.Field
		if !r.Valid {
			mark = errorStyle.Render("✗")
			line += ": " + r.Message
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", mark, line); err != nil {
			return err
		}
	}
	return nil
}

// FieldErrorMessage formats a validate.FieldError with the message catalog.
func FieldErrorMessage(fe *validate.FieldError, msgs signup.Messages) string {
	return fmt.Sprintf("%s: %s", fe.Field, msgs.Text(signup.Field(fe.Field), fe.Key))
}
