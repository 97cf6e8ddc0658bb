package person

import "fmt"

// EmergencyContact is a name + phone + relationship triple. The zero value is
// the distinguished nil sentinel meaning "none provided"; it participates in
// equality and serialization like any other value.
type EmergencyContact struct {
	name         Name
	phone        Phone
	relationship Relationship
	present      bool
}

// NilEmergencyContact is the "none provided" sentinel.
var NilEmergencyContact = EmergencyContact{}

// NewEmergencyContact builds an emergency contact from validated fields.
func NewEmergencyContact(name Name, phone Phone, relationship Relationship) EmergencyContact {
	return EmergencyContact{
		name:         name,
		phone:        phone,
		relationship: relationship,
		present:      true,
	}
}

// IsNil reports whether this is the "none provided" sentinel.
func (e EmergencyContact) IsNil() bool {
	return !e.present
}

// Name returns the contact's name.
func (e EmergencyContact) Name() Name {
	return e.name
}

// Phone returns the contact's phone number.
func (e EmergencyContact) Phone() Phone {
	return e.phone
}

// Relationship returns the contact's relationship to the patient.
func (e EmergencyContact) Relationship() Relationship {
	return e.relationship
}

// Equal reports structural equality; the nil sentinel only equals itself.
func (e EmergencyContact) Equal(other EmergencyContact) bool {
	if e.present != other.present {
		return false
	}
	if !e.present {
		return true
	}
	return e.name.Equal(other.name) &&
		e.phone.Equal(other.phone) &&
		e.relationship.Equal(other.relationship)
}

func (e EmergencyContact) String() string {
	if !e.present {
		return "-"
	}
	return fmt.Sprintf("%s (%s) %s", e.name, e.relationship, e.phone)
}
