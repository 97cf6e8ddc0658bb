// Package model holds the in-memory record state: the ordered books of unique
// patients and the manager that applies command mutations against them.
package model

import (
	"errors"

	"github.com/c360studio/carelog/model/person"
)

// Book-level errors.
var (
	// ErrDuplicatePerson is returned when an added or edited person collides
	// with an existing identity (same name and phone).
	ErrDuplicatePerson = errors.New("person already exists in the record book")
	// ErrPersonNotFound is returned when a substitution target is not in the
	// book.
	ErrPersonNotFound = errors.New("person not found in the record book")
)

// RecordBook is an ordered sequence of unique persons. Insertion order is
// preserved for display; no two entries share an identity (see
// person.SamePerson).
type RecordBook struct {
	persons []person.Person
}

// NewRecordBook returns an empty book.
func NewRecordBook() *RecordBook {
	return &RecordBook{}
}

// Len returns the number of persons in the book.
func (b *RecordBook) Len() int {
	return len(b.persons)
}

// Persons returns the entries in insertion order. The slice is a copy.
func (b *RecordBook) Persons() []person.Person {
	out := make([]person.Person, len(b.persons))
	copy(out, b.persons)
	return out
}

// Contains reports whether the book holds a person with target's identity.
func (b *RecordBook) Contains(target person.Person) bool {
	return b.indexOf(target) >= 0
}

func (b *RecordBook) indexOf(target person.Person) int {
	for i, p := range b.persons {
		if p.SamePerson(target) {
			return i
		}
	}
	return -1
}

// Add appends p, rejecting duplicate identities.
func (b *RecordBook) Add(p person.Person) error {
	if b.Contains(p) {
		return ErrDuplicatePerson
	}
	b.persons = append(b.persons, p)
	return nil
}

// Remove deletes the entry with target's identity.
func (b *RecordBook) Remove(target person.Person) error {
	i := b.indexOf(target)
	if i < 0 {
		return ErrPersonNotFound
	}
	b.persons = append(b.persons[:i], b.persons[i+1:]...)
	return nil
}

// SetPerson substitutes edited at target's position. Fails if target is not
// in the book, or if edited takes on an identity already held by a different
// entry.
func (b *RecordBook) SetPerson(target, edited person.Person) error {
	i := b.indexOf(target)
	if i < 0 {
		return ErrPersonNotFound
	}
	if j := b.indexOf(edited); j >= 0 && j != i {
		return ErrDuplicatePerson
	}
	b.persons[i] = edited
	return nil
}
