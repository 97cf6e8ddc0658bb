package model

import (
	"log/slog"
	"strings"

	"github.com/c360studio/carelog/config"
	"github.com/c360studio/carelog/model/person"
)

// Predicate selects persons for the filtered view.
type Predicate func(person.Person) bool

// ShowAll is the predicate that matches every person.
func ShowAll(person.Person) bool { return true }

// NameContainsKeywords matches persons whose name contains any of the
// keywords, case-insensitively.
func NameContainsKeywords(keywords []string) Predicate {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return func(p person.Person) bool {
		name := strings.ToLower(p.Name().String())
		for _, k := range lowered {
			if k != "" && strings.Contains(name, k) {
				return true
			}
		}
		return false
	}
}

// Manager owns the active and archived books, the user display preferences
// and the current filtered view. All mutation goes through it; callers must
// serialize access (single writer, no internal locking).
type Manager struct {
	logger   *slog.Logger
	active   *RecordBook
	archived *RecordBook
	prefs    *config.Prefs
	filter   Predicate
	filtered []person.Person
}

// NewManager builds a manager over the given books. Nil books start empty and
// a nil logger falls back to slog.Default().
func NewManager(active, archived *RecordBook, prefs *config.Prefs, logger *slog.Logger) *Manager {
	if active == nil {
		active = NewRecordBook()
	}
	if archived == nil {
		archived = NewRecordBook()
	}
	if prefs == nil {
		prefs = config.DefaultPrefs()
	}
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		logger:   logger,
		active:   active,
		archived: archived,
		prefs:    prefs,
		filter:   ShowAll,
	}
	m.refreshView()
	return m
}

// refreshView recomputes the filtered view from the full active book. The
// view always follows the book's insertion order, never the query's match
// order.
func (m *Manager) refreshView() {
	m.filtered = m.filtered[:0]
	for _, p := range m.active.Persons() {
		if m.filter(p) {
			m.filtered = append(m.filtered, p)
		}
	}
}

// FilteredPersons returns the current filtered view of the active book.
func (m *Manager) FilteredPersons() []person.Person {
	out := make([]person.Person, len(m.filtered))
	copy(out, m.filtered)
	return out
}

// ArchivedPersons returns the archived book's entries in insertion order.
func (m *Manager) ArchivedPersons() []person.Person {
	return m.archived.Persons()
}

// ActiveBook returns the active book, for persistence.
func (m *Manager) ActiveBook() *RecordBook {
	return m.active
}

// ArchivedBook returns the archived book, for persistence.
func (m *Manager) ArchivedBook() *RecordBook {
	return m.archived
}

// Prefs returns the user display preferences.
func (m *Manager) Prefs() *config.Prefs {
	return m.prefs
}

// UpdateFilter replaces the view predicate and rebuilds the view.
func (m *Manager) UpdateFilter(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	m.filter = p
	m.refreshView()
}

// ResetFilter restores the unfiltered view over the full active book.
func (m *Manager) ResetFilter() {
	m.UpdateFilter(ShowAll)
}

// AddPerson appends p to the active book.
func (m *Manager) AddPerson(p person.Person) error {
	if err := m.active.Add(p); err != nil {
		return err
	}
	m.logger.Debug("added patient", slog.String("name", p.Name().String()))
	m.refreshView()
	return nil
}

// DeletePerson removes target from the active book.
func (m *Manager) DeletePerson(target person.Person) error {
	if err := m.active.Remove(target); err != nil {
		return err
	}
	m.logger.Debug("deleted patient", slog.String("name", target.Name().String()))
	m.refreshView()
	return nil
}

// SetPerson substitutes edited for target in the active book.
func (m *Manager) SetPerson(target, edited person.Person) error {
	if err := m.active.SetPerson(target, edited); err != nil {
		return err
	}
	m.refreshView()
	return nil
}

// ArchivePerson relocates target from the active book to the archived book,
// with all field data unchanged. Nothing moves if either step cannot succeed.
func (m *Manager) ArchivePerson(target person.Person) error {
	i := m.active.indexOf(target)
	if i < 0 {
		return ErrPersonNotFound
	}
	p := m.active.persons[i]
	if m.archived.Contains(p) {
		return ErrDuplicatePerson
	}
	if err := m.active.Remove(p); err != nil {
		return err
	}
	if err := m.archived.Add(p); err != nil {
		return err
	}
	m.logger.Debug("archived patient", slog.String("name", p.Name().String()))
	m.refreshView()
	return nil
}

// UnarchivePerson relocates target from the archived book back to the active
// book. Nothing moves if either step cannot succeed.
func (m *Manager) UnarchivePerson(target person.Person) error {
	i := m.archived.indexOf(target)
	if i < 0 {
		return ErrPersonNotFound
	}
	p := m.archived.persons[i]
	if m.active.Contains(p) {
		return ErrDuplicatePerson
	}
	if err := m.archived.Remove(p); err != nil {
		return err
	}
	if err := m.active.Add(p); err != nil {
		return err
	}
	m.logger.Debug("unarchived patient", slog.String("name", p.Name().String()))
	m.refreshView()
	return nil
}
