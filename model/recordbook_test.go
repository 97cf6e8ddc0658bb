package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/carelog/model/person"
)

// newPerson builds a valid person for book tests.
func newPerson(t *testing.T, name, phone string) person.Person {
	t.Helper()
	n, err := person.NewName(name)
	require.NoError(t, err)
	p, err := person.NewPhone(phone)
	require.NoError(t, err)
	e, err := person.NewEmail("someone@example.com")
	require.NoError(t, err)
	a, err := person.NewAddress("1 Test Road")
	require.NoError(t, err)
	return person.NewPerson(n, p, e, a, person.NewTagSet())
}

func TestRecordBookAddRejectsDuplicateIdentity(t *testing.T) {
	book := NewRecordBook()
	require.NoError(t, book.Add(newPerson(t, "Alice Pauline", "91234567")))

	// Same name and phone, normalized, is the same identity.
	err := book.Add(newPerson(t, "ALICE  PAULINE", "91234567"))
	assert.ErrorIs(t, err, ErrDuplicatePerson)
	assert.Equal(t, 1, book.Len())

	// Same name with a different phone is a different identity.
	require.NoError(t, book.Add(newPerson(t, "Alice Pauline", "87654321")))
	assert.Equal(t, 2, book.Len())
}

func TestRecordBookPreservesInsertionOrder(t *testing.T) {
	book := NewRecordBook()
	names := []string{"Carl Kurz", "Alice Pauline", "Benson Meier"}
	for i, name := range names {
		require.NoError(t, book.Add(newPerson(t, name, "9000000"+string(rune('0'+i)))))
	}

	persons := book.Persons()
	require.Len(t, persons, 3)
	for i, name := range names {
		assert.Equal(t, name, persons[i].Name().String())
	}
}

func TestRecordBookSetPerson(t *testing.T) {
	book := NewRecordBook()
	target := newPerson(t, "Alice Pauline", "91234567")
	other := newPerson(t, "Benson Meier", "98765432")
	require.NoError(t, book.Add(target))
	require.NoError(t, book.Add(other))

	appt, err := person.NewAppointment("18-03-2025 10:00 Checkup")
	require.NoError(t, err)
	require.NoError(t, book.SetPerson(target, target.WithAppointment(appt)))

	persons := book.Persons()
	assert.Equal(t, "Alice Pauline", persons[0].Name().String(), "substitution is positional")
	assert.False(t, persons[0].Appointment().IsDefault())

	// Substituting an absent target fails.
	missing := newPerson(t, "Nobody", "555")
	assert.ErrorIs(t, book.SetPerson(missing, missing), ErrPersonNotFound)

	// An edit may not take over another entry's identity.
	assert.ErrorIs(t, book.SetPerson(other, target), ErrDuplicatePerson)
}

func TestRecordBookRemove(t *testing.T) {
	book := NewRecordBook()
	p := newPerson(t, "Alice Pauline", "91234567")
	require.NoError(t, book.Add(p))

	require.NoError(t, book.Remove(p))
	assert.Equal(t, 0, book.Len())
	assert.ErrorIs(t, book.Remove(p), ErrPersonNotFound)
}
