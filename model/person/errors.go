package person

import "errors"

// ValidationError reports a field-level constraint violation. The message is
// fixed per field type and is shown to the user verbatim, whether the value
// was typed into a command or loaded from a persisted document.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Tag mutation errors. Tag operations are all-or-nothing: if any supplied tag
// trips one of these, the person is left completely unchanged.
var (
	// ErrDuplicateTag is returned when a tag to add is already present in the
	// targeted category.
	ErrDuplicateTag = errors.New("tag already present")
	// ErrTagNotFound is returned when a tag to remove is not present anywhere
	// on the person.
	ErrTagNotFound = errors.New("tag not found")
)
