// Package render combines filtered CV content, a section render plan, and a
// compiled stylesheet into a document tree ready for rasterization.
package render

import "fmt"

// MissingPersonalInfoError indicates rendering was attempted without the
// required identity fields. Every layout depends on first and last name.
type MissingPersonalInfoError struct {
	Fields []string
}

func (e *MissingPersonalInfoError) Error() string {
	return fmt.Sprintf("missing required personal info: %v", e.Fields)
}

// TemplateError represents an error parsing or executing a layout template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
