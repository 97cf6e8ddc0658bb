package person

import (
	"strings"
	"time"
)

// AppointmentMessageConstraints is the fixed constraint message for Appointment.
const AppointmentMessageConstraints = DateTimeMessageConstraints

// fuzzyWindowMinutes is the tolerance applied by Appointment.Equal: two
// appointments less than this many minutes apart compare equal.
const fuzzyWindowMinutes = 15

const noAppointmentText = "No appointment"

// defaultDateTime is the sentinel timestamp for "no appointment". It is far
// enough in the future that the sentinel always sorts after real appointments.
var defaultDateTime = DateTime{t: time.Date(9999, time.January, 1, 0, 0, 0, 0, time.UTC)}

// Appointment pairs a timestamp with a free-text description.
//
// Equality is fuzzy: two appointments are equal iff their timestamps are less
// than 15 minutes apart, ignoring the description. The relation is reflexive
// and symmetric but not transitive (appointments at minute 0, 10 and 20 chain
// pairwise-equal without the ends being equal), and equal appointments need
// not render identically. Never use Appointment, or anything embedding it, as
// a map key: a hash derived from its fields would put fuzzily-equal values in
// different buckets.
type Appointment struct {
	dateTime    DateTime
	description string
	isDefault   bool
}

// NoAppointment returns the "no appointment" sentinel.
func NoAppointment() Appointment {
	return Appointment{
		dateTime:    defaultDateTime,
		description: noAppointmentText,
		isDefault:   true,
	}
}

// NewAppointment parses "DD-MM-YYYY HH:MM [description]". A blank input
// produces the sentinel; a present but malformed timestamp is an error, never
// silently defaulted.
func NewAppointment(raw string) (Appointment, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NoAppointment(), nil
	}

	parts := strings.SplitN(trimmed, " ", 3)
	if len(parts) < 2 {
		return Appointment{}, &ValidationError{Field: "Appointment", Message: AppointmentMessageConstraints}
	}
	dt, err := NewDateTime(parts[0] + " " + parts[1])
	if err != nil {
		return Appointment{}, &ValidationError{Field: "Appointment", Message: AppointmentMessageConstraints}
	}

	description := ""
	if len(parts) == 3 {
		description = strings.TrimSpace(parts[2])
	}
	return Appointment{dateTime: dt, description: description}, nil
}

// IsValidAppointment reports whether raw is accepted by NewAppointment.
func IsValidAppointment(raw string) bool {
	_, err := NewAppointment(raw)
	return err == nil
}

// IsDefault reports whether this is the "no appointment" sentinel.
func (a Appointment) IsDefault() bool {
	return a.isDefault
}

// DateTime returns the appointment timestamp. For the sentinel this is the
// far-future default date.
func (a Appointment) DateTime() DateTime {
	return a.dateTime
}

// Description returns the free-text description.
func (a Appointment) Description() string {
	return a.description
}

// Equal applies the 15-minute fuzzy window. The description does not
// participate.
func (a Appointment) Equal(other Appointment) bool {
	diff := a.dateTime.DiffMinutes(other.dateTime)
	if diff < 0 {
		diff = -diff
	}
	return diff < fuzzyWindowMinutes
}

// Compare orders appointments by timestamp ascending; the sentinel sorts last.
func (a Appointment) Compare(other Appointment) int {
	return a.dateTime.Compare(other.dateTime)
}

// String renders the appointment for display. The sentinel renders as
// "No appointment", which is deliberately not parseable by NewAppointment so
// that the default never round-trips as a real appointment.
func (a Appointment) String() string {
	if a.isDefault {
		return noAppointmentText
	}
	if a.description == "" {
		return a.dateTime.String()
	}
	return a.dateTime.String() + " " + a.description
}
