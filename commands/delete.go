package commands

import (
	"fmt"

	"github.com/c360studio/carelog/model"
)

// DeleteCommandWord is the keyword that invokes DeleteCommand.
const DeleteCommandWord = "delete"

// DeleteUsage is the fixed usage string for the delete command.
const DeleteUsage = "Usage: delete INDEX"

// MessageDeleteSuccess is the success message format for the delete command.
const MessageDeleteSuccess = "Deleted patient: %s"

// DeleteCommand removes the patient at Index in the filtered view.
type DeleteCommand struct {
	Index int
}

// Execute deletes the patient.
func (c *DeleteCommand) Execute(m *model.Manager) (Result, error) {
	target, err := personAt(m.FilteredPersons(), c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, &CommandError{Message: err.Error()}
	}
	return Result{Message: fmt.Sprintf(MessageDeleteSuccess, target)}, nil
}
