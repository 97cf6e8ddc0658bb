package commands

import (
	"fmt"
	"strings"

	"github.com/c360studio/carelog/model"
)

// ListCommandWord is the keyword that invokes ListCommand.
const ListCommandWord = "list"

// ListUsage is the fixed usage string for the list command.
const ListUsage = "Usage: list (no arguments)"

// MessageListSuccess is the success message for the list command.
const MessageListSuccess = "Listed all patients"

// ListCommand resets the filtered view to show the full active book. It takes
// no operands; any trailing argument is rejected.
type ListCommand struct {
	Args string
}

// Execute resets the view filter.
func (c *ListCommand) Execute(m *model.Manager) (Result, error) {
	if strings.TrimSpace(c.Args) != "" {
		return Result{}, &CommandError{Message: fmt.Sprintf("The list command takes no arguments. %s", ListUsage)}
	}
	m.ResetFilter()
	return Result{Message: MessageListSuccess}, nil
}
