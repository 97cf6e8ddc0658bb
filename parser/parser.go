// Package parser turns raw command lines into validated, executable commands.
// Each command grammar declares its required, optional and repeatable
// prefixes over one shared tokenizer; field validation is delegated to the
// value types so that a constraint message reads the same here as anywhere
// else.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/c360studio/carelog/commands"
)

// basicCommandFormat splits a line into the command keyword and the argument
// remainder.
var basicCommandFormat = regexp.MustCompile(`^(?s)(\S+)(.*)$`)

// RecordParser dispatches command lines to per-command grammar builders.
type RecordParser struct{}

// NewRecordParser creates a parser.
func NewRecordParser() *RecordParser {
	return &RecordParser{}
}

// Parse converts a raw command line into an executable command. The keyword
// is case-sensitive. Grammar violations return a ParseError; invalid field
// values return that field's ValidationError with its fixed message intact.
func (rp *RecordParser) Parse(input string) (commands.Command, error) {
	match := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return nil, errUnknownCommand
	}
	word, args := match[1], match[2]

	switch word {
	case commands.AddCommandWord:
		return parseAdd(args)
	case commands.EditCommandWord:
		return parseEdit(args)
	case commands.DeleteCommandWord:
		return parseDelete(args)
	case commands.ListCommandWord:
		return &commands.ListCommand{Args: args}, nil
	case commands.FindCommandWord:
		return parseFind(args)
	case commands.ScheduleCommandWord:
		return parseSchedule(args)
	case commands.TagCommandWord:
		return parseTag(args)
	case commands.ArchiveCommandWord:
		return parseArchive(args)
	case commands.UnarchiveCommandWord:
		return parseUnarchive(args)
	case commands.HelpCommandWord:
		return &commands.HelpCommand{}, nil
	case commands.ExitCommandWord:
		return &commands.ExitCommand{}, nil
	default:
		return nil, errUnknownCommand
	}
}

// ParseIndex parses a one-based positional index.
func ParseIndex(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, &ParseError{Message: MessageInvalidIndex}
	}
	return n, nil
}
