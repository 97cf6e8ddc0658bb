package commands

import (
	"errors"
	"fmt"

	"github.com/c360studio/carelog/model"
	"github.com/c360studio/carelog/model/person"
)

// TagCommandWord is the keyword that invokes TagCommand.
const TagCommandWord = "tag"

// TagUsage is the fixed usage string for the tag command.
const TagUsage = "Usage: tag INDEX [ta/ALLERGY]... [tc/CONDITION]... [ti/INSURANCE]... [td/TAG]... [te/TAG]..."

// MessageTagSuccess is the success message format for the tag command. It
// embeds the full rendered patient card, not just the delta; users verify the
// result against it.
const MessageTagSuccess = "Updated tags for patient:\n%s"

// TagCommand updates the tag pools of the patient at Index in the filtered
// view. Adds are per-category and all-or-nothing; deletes remove the token
// from every pool holding it; edits replace the general pool wholesale. Any
// failure leaves the patient completely unchanged.
type TagCommand struct {
	Index      int
	Allergies  person.TagSet
	Conditions person.TagSet
	Insurances person.TagSet
	Deletes    person.TagSet
	Edits      person.TagSet
}

// Execute applies all tag groups atomically.
func (c *TagCommand) Execute(m *model.Manager) (Result, error) {
	target, err := personAt(m.FilteredPersons(), c.Index)
	if err != nil {
		return Result{}, err
	}

	updated := target
	adds := []struct {
		category person.TagCategory
		tags     person.TagSet
	}{
		{person.CategoryAllergy, c.Allergies},
		{person.CategoryCondition, c.Conditions},
		{person.CategoryInsurance, c.Insurances},
	}
	for _, a := range adds {
		if a.tags.Len() == 0 {
			continue
		}
		updated, err = updated.WithTagsAdded(a.category, a.tags)
		if err != nil {
			return Result{}, tagError(err)
		}
	}
	if c.Deletes.Len() > 0 {
		updated, err = updated.WithTagsDeleted(c.Deletes)
		if err != nil {
			return Result{}, tagError(err)
		}
	}
	if c.Edits.Len() > 0 {
		updated = updated.WithTagsReplaced(c.Edits)
	}

	if err := m.SetPerson(target, updated); err != nil {
		return Result{}, &CommandError{Message: err.Error()}
	}
	return Result{Message: fmt.Sprintf(MessageTagSuccess, updated)}, nil
}

func tagError(err error) error {
	switch {
	case errors.Is(err, person.ErrDuplicateTag):
		return &CommandError{Message: MessageDuplicateTags}
	case errors.Is(err, person.ErrTagNotFound):
		return &CommandError{Message: MessageTagNotFound}
	default:
		return &CommandError{Message: err.Error()}
	}
}
