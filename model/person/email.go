package person

import "regexp"

// EmailMessageConstraints is the fixed constraint message for Email.
const EmailMessageConstraints = "Emails should be of the format local-part@domain. " +
	"The local part may contain alphanumeric characters and +_.- (not leading or trailing); " +
	"the domain must be at least two dot-separated alphanumeric labels, " +
	"with hyphens only in the middle of a label, ending with a label at least 2 characters long"

// Local part: alphanumerics plus +_.- with alphanumeric first and last
// characters. Domain: two or more labels, each alphanumeric with interior
// hyphens, final label at least two characters.
var emailValid = regexp.MustCompile(
	`^[A-Za-z0-9]([A-Za-z0-9+_.-]*[A-Za-z0-9])?` +
		`@([A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?\.)+` +
		`[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])$`)

// Email is a contact email address.
type Email struct {
	value string
}

// NewEmail validates raw and returns it as an Email.
func NewEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return Email{}, &ValidationError{Field: "Email", Message: EmailMessageConstraints}
	}
	return Email{value: raw}, nil
}

// IsValidEmail reports whether raw is a valid email address.
func IsValidEmail(raw string) bool {
	return emailValid.MatchString(raw)
}

func (e Email) String() string {
	return e.value
}

// Equal reports exact equality.
func (e Email) Equal(other Email) bool {
	return e.value == other.value
}
