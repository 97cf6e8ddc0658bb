package storage

import "fmt"

// missingFieldFormat is the fixed message format for absent required fields.
const missingFieldFormat = "Person's %s field is missing!"

// MissingFieldError reports a required field absent from a persisted person
// document. Field names the field's type (e.g. "Phone").
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf(missingFieldFormat, e.Field)
}
