package validate

import "fmt"

// FieldError reports a failed validator for a named field.
type FieldError struct {
	Field string
	Key   MessageKey
	Value string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Key)
	}
	return fmt.Sprintf("%s: %s (%q)", e.Field, e.Key, e.Value)
}

// ValidationError collects field failures from one validation pass.
type ValidationError struct {
	Errors []*FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d validation errors", len(e.Errors))
}

// Check records a failure for field when r is not OK.
func (e *ValidationError) Check(field, value string, r Result) {
	if r.OK {
		return
	}
	e.Errors = append(e.Errors, &FieldError{Field: field, Key: r.Key, Value: value})
}

// HasErrors returns true if any field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Err returns e when it holds failures, nil otherwise.
func (e *ValidationError) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}
