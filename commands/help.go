package commands

import (
	"strings"

	"github.com/c360studio/carelog/model"
)

// Keywords for the utility commands.
const (
	HelpCommandWord = "help"
	ExitCommandWord = "exit"
)

// MessageExit is the farewell printed by the exit command.
const MessageExit = "Exiting carelog as requested ..."

// HelpCommand lists every command's usage.
type HelpCommand struct{}

// Execute renders the help text.
func (c *HelpCommand) Execute(m *model.Manager) (Result, error) {
	usages := []string{
		AddUsage,
		EditUsage,
		DeleteUsage,
		ListUsage,
		FindUsage,
		ScheduleUsage,
		TagUsage,
		ArchiveUsage,
		UnarchiveUsage,
		"Usage: help",
		"Usage: exit",
	}
	return Result{
		Message:  "Available commands:\n" + strings.Join(usages, "\n"),
		ShowHelp: true,
	}, nil
}

// ExitCommand terminates the session.
type ExitCommand struct{}

// Execute signals the application to exit.
func (c *ExitCommand) Execute(m *model.Manager) (Result, error) {
	return Result{Message: MessageExit, Exit: true}, nil
}
