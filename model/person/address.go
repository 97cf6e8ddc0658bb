package person

import "strings"

// AddressMessageConstraints is the fixed constraint message for Address.
const AddressMessageConstraints = "Addresses can take any values, and it should not be blank"

// Address is a free-text postal address.
type Address struct {
	value string
}

// NewAddress validates raw and returns it as an Address.
func NewAddress(raw string) (Address, error) {
	if !IsValidAddress(raw) {
		return Address{}, &ValidationError{Field: "Address", Message: AddressMessageConstraints}
	}
	return Address{value: raw}, nil
}

// IsValidAddress reports whether raw is a valid address.
func IsValidAddress(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

func (a Address) String() string {
	return a.value
}

// Equal reports exact equality.
func (a Address) Equal(other Address) bool {
	return a.value == other.value
}
