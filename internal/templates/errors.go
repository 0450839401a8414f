// Package templates provides the persistent template catalogue with CRUD,
// clone, import/export, and immutability rules for built-in templates.
package templates

import "fmt"

// NotFoundError indicates the operation target template does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template with ID %s not found", e.ID)
}

// ImmutableError indicates a mutation was attempted on a built-in template.
type ImmutableError struct {
	ID        string
	Operation string
}

func (e *ImmutableError) Error() string {
	return fmt.Sprintf("cannot %s built-in template %s", e.Operation, e.ID)
}

// InvalidFormatError indicates an import payload is malformed or missing
// required fields.
type InvalidFormatError struct {
	Message string
	Cause   error
}

func (e *InvalidFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid template format: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid template format: %s", e.Message)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Cause
}

// StorageError indicates the backing store failed to read or write the catalogue.
type StorageError struct {
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template storage error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template storage error: %s", e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}
