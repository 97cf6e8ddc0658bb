package commands

import (
	"errors"
	"fmt"

	"github.com/c360studio/carelog/model"
)

// Keywords for the archive commands.
const (
	ArchiveCommandWord   = "archive"
	UnarchiveCommandWord = "unarchive"
)

// Fixed usage strings for the archive commands.
const (
	ArchiveUsage   = "Usage: archive INDEX"
	UnarchiveUsage = "Usage: unarchive INDEX"
)

// Success message formats for the archive commands.
const (
	MessageArchiveSuccess   = "Archived patient: %s"
	MessageUnarchiveSuccess = "Unarchived patient: %s"
)

// ArchiveCommand relocates the patient at Index in the filtered view into the
// archived book. Archiving is a pure relocation; every field is preserved.
type ArchiveCommand struct {
	Index int
}

// Execute moves the patient to the archived book.
func (c *ArchiveCommand) Execute(m *model.Manager) (Result, error) {
	target, err := personAt(m.FilteredPersons(), c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.ArchivePerson(target); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, ErrDuplicatePerson
		}
		return Result{}, &CommandError{Message: err.Error()}
	}
	return Result{Message: fmt.Sprintf(MessageArchiveSuccess, target)}, nil
}

// UnarchiveCommand relocates the patient at Index in the archived book back
// into the active book.
type UnarchiveCommand struct {
	Index int
}

// Execute moves the patient back to the active book.
func (c *UnarchiveCommand) Execute(m *model.Manager) (Result, error) {
	target, err := personAt(m.ArchivedPersons(), c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.UnarchivePerson(target); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, ErrDuplicatePerson
		}
		return Result{}, &CommandError{Message: err.Error()}
	}
	return Result{Message: fmt.Sprintf(MessageUnarchiveSuccess, target)}, nil
}
