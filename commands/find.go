package commands

import (
	"fmt"

	"github.com/c360studio/carelog/model"
)

// FindCommandWord is the keyword that invokes FindCommand.
const FindCommandWord = "find"

// FindUsage is the fixed usage string for the find command.
const FindUsage = "Usage: find KEYWORD [MORE_KEYWORDS]..."

// MessagePersonsListed is the overview message format after filtering.
const MessagePersonsListed = "%d patients listed!"

// FindCommand filters the view to patients whose name contains any keyword,
// case-insensitively. The view keeps the active book's insertion order, not
// the match order.
type FindCommand struct {
	Keywords []string
}

// Execute rebuilds the filtered view from the full active book.
func (c *FindCommand) Execute(m *model.Manager) (Result, error) {
	m.UpdateFilter(model.NameContainsKeywords(c.Keywords))
	return Result{Message: fmt.Sprintf(MessagePersonsListed, len(m.FilteredPersons()))}, nil
}
