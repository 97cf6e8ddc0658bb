package commands

import (
	"errors"
	"fmt"

	"github.com/c360studio/carelog/model"
	"github.com/c360studio/carelog/model/person"
)

// AddCommandWord is the keyword that invokes AddCommand.
const AddCommandWord = "add"

// AddUsage is the fixed usage string for the add command.
const AddUsage = "Usage: add n/NAME p/PHONE e/EMAIL a/ADDRESS [r/RELATIONSHIP] [t/TAG]..."

// MessageAddSuccess is the success message format for the add command.
const MessageAddSuccess = "New patient added: %s"

// AddCommand adds a new patient to the active record book.
type AddCommand struct {
	Person person.Person
}

// Execute adds the patient, rejecting duplicate identities.
func (c *AddCommand) Execute(m *model.Manager) (Result, error) {
	if err := m.AddPerson(c.Person); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, ErrDuplicatePerson
		}
		return Result{}, &CommandError{Message: err.Error()}
	}
	return Result{Message: fmt.Sprintf(MessageAddSuccess, c.Person)}, nil
}
