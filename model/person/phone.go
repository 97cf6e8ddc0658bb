package person

import "regexp"

// PhoneMessageConstraints is the fixed constraint message for Phone.
const PhoneMessageConstraints = "Phone numbers should only contain digits, and it should be at least 3 digits long"

var phoneValid = regexp.MustCompile(`^\d{3,}$`)

// Phone is a contact number. Digits only; country-code symbols are rejected.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	if !IsValidPhone(raw) {
		return Phone{}, &ValidationError{Field: "Phone", Message: PhoneMessageConstraints}
	}
	return Phone{value: raw}, nil
}

// IsValidPhone reports whether raw is a valid phone number.
func IsValidPhone(raw string) bool {
	return phoneValid.MatchString(raw)
}

func (p Phone) String() string {
	return p.value
}

// Equal reports exact equality.
func (p Phone) Equal(other Phone) bool {
	return p.value == other.value
}
