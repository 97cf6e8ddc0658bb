// Package person provides the patient record aggregate and its self-validating
// field types. Every field type is immutable and constructed through a factory
// that either returns a valid value or a ValidationError carrying that field's
// fixed constraint message.
package person

import "regexp"

// NameMessageConstraints is the fixed constraint message for Name.
const NameMessageConstraints = "Names should only contain alphanumeric characters, spaces, and .,'- punctuation, and it should not be blank"

var nameValid = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 .,'-]*$`)

// Name is a patient's name.
type Name struct {
	value string
}

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, &ValidationError{Field: "Name", Message: NameMessageConstraints}
	}
	return Name{value: raw}, nil
}

// IsValidName reports whether raw is a valid name.
func IsValidName(raw string) bool {
	return nameValid.MatchString(raw)
}

func (n Name) String() string {
	return n.value
}

// Equal reports exact equality.
func (n Name) Equal(other Name) bool {
	return n.value == other.value
}
