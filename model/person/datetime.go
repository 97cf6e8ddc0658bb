package person

import "time"

// DateTimeMessageConstraints is the fixed constraint message for DateTime.
const DateTimeMessageConstraints = "This must be DD-MM-YYYY HH:MM"

// dateTimeLayout is the only accepted textual pattern, DD-MM-YYYY HH:MM.
const dateTimeLayout = "02-01-2006 15:04"

// DateTime is a calendar timestamp with minute precision.
type DateTime struct {
	t time.Time
}

// NewDateTime parses raw in the fixed DD-MM-YYYY HH:MM pattern.
func NewDateTime(raw string) (DateTime, error) {
	t, err := time.Parse(dateTimeLayout, raw)
	if err != nil {
		return DateTime{}, &ValidationError{Field: "DateTime", Message: DateTimeMessageConstraints}
	}
	return DateTime{t: t}, nil
}

// IsValidDateTime reports whether raw matches the fixed pattern.
func IsValidDateTime(raw string) bool {
	_, err := time.Parse(dateTimeLayout, raw)
	return err == nil
}

func (d DateTime) String() string {
	return d.t.Format(dateTimeLayout)
}

// Equal reports exact equality.
func (d DateTime) Equal(other DateTime) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d is earlier than other.
func (d DateTime) Before(other DateTime) bool {
	return d.t.Before(other.t)
}

// Compare orders timestamps ascending: -1 if d is earlier, 0 if equal, +1 if later.
func (d DateTime) Compare(other DateTime) int {
	return d.t.Compare(other.t)
}

// DiffMinutes returns the signed difference d minus other in whole minutes.
// Integer arithmetic only, so repeated comparisons never accumulate drift.
func (d DateTime) DiffMinutes(other DateTime) int64 {
	return int64(d.t.Sub(other.t) / time.Minute)
}
