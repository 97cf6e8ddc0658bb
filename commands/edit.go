package commands

import (
	"errors"
	"fmt"

	"github.com/c360studio/carelog/model"
	"github.com/c360studio/carelog/model/person"
)

// EditCommandWord is the keyword that invokes EditCommand.
const EditCommandWord = "edit"

// EditUsage is the fixed usage string for the edit command.
const EditUsage = "Usage: edit INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS]"

// MessageEditSuccess is the success message format for the edit command.
const MessageEditSuccess = "Edited patient: %s"

// EditCommand replaces the targeted fields of the patient at Index in the
// filtered view, leaving all other fields untouched.
type EditCommand struct {
	Index   int
	Name    *person.Name
	Phone   *person.Phone
	Email   *person.Email
	Address *person.Address
}

// Execute applies the field edits by value substitution.
func (c *EditCommand) Execute(m *model.Manager) (Result, error) {
	target, err := personAt(m.FilteredPersons(), c.Index)
	if err != nil {
		return Result{}, err
	}

	edited := target.WithDetails(c.Name, c.Phone, c.Email, c.Address)
	if err := m.SetPerson(target, edited); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, ErrDuplicatePerson
		}
		return Result{}, &CommandError{Message: err.Error()}
	}
	return Result{Message: fmt.Sprintf(MessageEditSuccess, edited)}, nil
}

// personAt resolves a one-based index against the given list.
func personAt(persons []person.Person, index int) (person.Person, error) {
	if index < 1 || index > len(persons) {
		return person.Person{}, ErrInvalidIndex
	}
	return persons[index-1], nil
}
