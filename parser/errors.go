package parser

import (
	"fmt"
	"strings"
)

// ParseError reports a command-grammar violation: unknown command, missing or
// duplicated prefix, bad index syntax, or a missing operand. Field-level
// constraint violations are not ParseErrors; those surface as the value
// type's own ValidationError with its message intact.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// Fixed messages for grammar violations.
const (
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageDuplicatePrefix      = "Multiple values specified for the following single-valued field(s): %s"
	MessageInvalidIndex         = "Index is not a non-zero unsigned integer."
	MessageEmptyTagCommand      = "At least one tag to add, edit, or delete must be provided."
)

// errUnknownCommand is returned for an unrecognized command keyword.
var errUnknownCommand = &ParseError{Message: MessageUnknownCommand}

// invalidFormat builds the invalid-format error carrying the command's usage.
func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: fmt.Sprintf(MessageInvalidCommandFormat, usage)}
}

// duplicatePrefix builds the duplicate-prefix error naming the offenders.
func duplicatePrefix(prefixes []Prefix) *ParseError {
	names := make([]string, len(prefixes))
	for i, p := range prefixes {
		names[i] = string(p)
	}
	return &ParseError{Message: fmt.Sprintf(MessageDuplicatePrefix, strings.Join(names, " "))}
}
