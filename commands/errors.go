package commands

// CommandError is a semantic failure at execute time. Every kind carries a
// fixed message; the presentation layer matches on the text, never on the
// internal cause.
type CommandError struct {
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Fixed messages for execute-time failures.
const (
	MessageInvalidPersonIndex = "The patient index provided is invalid"
	MessageDuplicatePerson    = "This patient already exists in the record book"
	MessageDuplicateTags      = "Some of the tags provided are already present on this patient"
	MessageTagNotFound        = "Some of the tags provided were not found on this patient"
)

// Shared command errors.
var (
	// ErrInvalidIndex is returned when an index is outside the bounds of the
	// list it targets.
	ErrInvalidIndex = &CommandError{Message: MessageInvalidPersonIndex}
	// ErrDuplicatePerson is returned when a command would create a second
	// record with an existing identity.
	ErrDuplicatePerson = &CommandError{Message: MessageDuplicatePerson}
)
