package person

import (
	"fmt"
	"strings"
)

// TagCategory names one of the tag pools a person carries.
type TagCategory string

// The four tag pools. Allergy, condition and insurance are the categorized
// pools; general is the legacy t/ pool.
const (
	CategoryGeneral   TagCategory = "general"
	CategoryAllergy   TagCategory = "allergy"
	CategoryCondition TagCategory = "condition"
	CategoryInsurance TagCategory = "insurance"
)

// Person is the patient record aggregate. It is immutable from the outside:
// every mutation returns a new Person, so records are replaced in a book by
// value substitution rather than in-place writes.
//
// Equal is structural over all fields but inherits Appointment's fuzzy
// equality, so Person equality is itself fuzzy on the appointment dimension.
// This affects duplicate detection downstream; identity checks use SamePerson
// (name + phone), which is exact.
type Person struct {
	name         Name
	phone        Phone
	email        Email
	address      Address
	relationship Relationship
	appointment  Appointment
	emergency    EmergencyContact
	tags         TagSet
	allergies    TagSet
	conditions   TagSet
	insurances   TagSet
}

// NewPerson builds a person from the required fields and the general tag
// pool. The appointment defaults to the "no appointment" sentinel, the
// emergency contact to nil, and the categorized pools to empty.
func NewPerson(name Name, phone Phone, email Email, address Address, tags TagSet) Person {
	return Person{
		name:        name,
		phone:       phone,
		email:       email,
		address:     address,
		appointment: NoAppointment(),
		emergency:   NilEmergencyContact,
		tags:        tags.Clone(),
		allergies:   NewTagSet(),
		conditions:  NewTagSet(),
		insurances:  NewTagSet(),
	}
}

// Name returns the patient's name.
func (p Person) Name() Name { return p.name }

// Phone returns the patient's phone number.
func (p Person) Phone() Phone { return p.phone }

// Email returns the patient's email address.
func (p Person) Email() Email { return p.email }

// Address returns the patient's postal address.
func (p Person) Address() Address { return p.address }

// Relationship returns the patient's relationship label.
func (p Person) Relationship() Relationship { return p.relationship }

// Appointment returns the patient's upcoming appointment.
func (p Person) Appointment() Appointment { return p.appointment }

// EmergencyContact returns the patient's emergency contact.
func (p Person) EmergencyContact() EmergencyContact { return p.emergency }

// Tags returns a copy of the requested tag pool.
func (p Person) Tags(category TagCategory) TagSet {
	return p.pool(category).Clone()
}

func (p Person) pool(category TagCategory) TagSet {
	switch category {
	case CategoryAllergy:
		return p.allergies
	case CategoryCondition:
		return p.conditions
	case CategoryInsurance:
		return p.insurances
	default:
		return p.tags
	}
}

func (p Person) withPool(category TagCategory, s TagSet) Person {
	switch category {
	case CategoryAllergy:
		p.allergies = s
	case CategoryCondition:
		p.conditions = s
	case CategoryInsurance:
		p.insurances = s
	default:
		p.tags = s
	}
	return p
}

// WithAppointment returns a copy with only the appointment replaced.
func (p Person) WithAppointment(a Appointment) Person {
	p.appointment = a
	return p
}

// WithRelationship returns a copy with only the relationship replaced.
func (p Person) WithRelationship(r Relationship) Person {
	p.relationship = r
	return p
}

// WithEmergencyContact returns a copy with only the emergency contact replaced.
func (p Person) WithEmergencyContact(e EmergencyContact) Person {
	p.emergency = e
	return p
}

// WithDetails returns a copy with the non-nil fields replaced. All other
// fields are carried over unchanged.
func (p Person) WithDetails(name *Name, phone *Phone, email *Email, address *Address) Person {
	if name != nil {
		p.name = *name
	}
	if phone != nil {
		p.phone = *phone
	}
	if email != nil {
		p.email = *email
	}
	if address != nil {
		p.address = *address
	}
	return p
}

// WithTagsAdded returns a copy with tags added to the given category.
// All-or-nothing: if any supplied tag is already present in that category the
// person is returned unchanged with ErrDuplicateTag.
func (p Person) WithTagsAdded(category TagCategory, tags TagSet) (Person, error) {
	pool := p.pool(category)
	for t := range tags {
		if pool.Contains(t) {
			return p, ErrDuplicateTag
		}
	}
	updated := pool.Clone()
	for t := range tags {
		updated[t] = struct{}{}
	}
	return p.withPool(category, updated), nil
}

// WithTagsRemoved returns a copy with tags removed from the given category.
// All-or-nothing: if any supplied tag is absent from that category the person
// is returned unchanged with ErrTagNotFound.
func (p Person) WithTagsRemoved(category TagCategory, tags TagSet) (Person, error) {
	pool := p.pool(category)
	for t := range tags {
		if !pool.Contains(t) {
			return p, ErrTagNotFound
		}
	}
	updated := pool.Clone()
	for t := range tags {
		delete(updated, t)
	}
	return p.withPool(category, updated), nil
}

// WithTagsDeleted removes each tag from every pool that holds it.
// All-or-nothing: if any supplied tag appears in no pool at all the person is
// returned unchanged with ErrTagNotFound.
func (p Person) WithTagsDeleted(tags TagSet) (Person, error) {
	categories := []TagCategory{CategoryGeneral, CategoryAllergy, CategoryCondition, CategoryInsurance}
	for t := range tags {
		found := false
		for _, c := range categories {
			if p.pool(c).Contains(t) {
				found = true
				break
			}
		}
		if !found {
			return p, ErrTagNotFound
		}
	}
	for _, c := range categories {
		updated := p.pool(c).Clone()
		for t := range tags {
			delete(updated, t)
		}
		p = p.withPool(c, updated)
	}
	return p, nil
}

// WithTagsReplaced returns a copy with the general tag pool replaced wholesale.
func (p Person) WithTagsReplaced(tags TagSet) Person {
	return p.withPool(CategoryGeneral, tags.Clone())
}

// normalize lowercases and collapses interior whitespace for identity checks.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// SamePerson reports whether other has the same identity: name and phone,
// case- and whitespace-normalized. This is the duplicate-detection relation
// and, unlike Equal, it is exact and transitive.
func (p Person) SamePerson(other Person) bool {
	return normalize(p.name.String()) == normalize(other.name.String()) &&
		normalize(p.phone.String()) == normalize(other.phone.String())
}

// Equal reports structural equality over every field. Tag pools compare as
// sets; the appointment comparison is fuzzy (see Appointment.Equal).
func (p Person) Equal(other Person) bool {
	return p.name.Equal(other.name) &&
		p.phone.Equal(other.phone) &&
		p.email.Equal(other.email) &&
		p.address.Equal(other.address) &&
		p.relationship.Equal(other.relationship) &&
		p.appointment.Equal(other.appointment) &&
		p.emergency.Equal(other.emergency) &&
		p.tags.Equal(other.tags) &&
		p.allergies.Equal(other.allergies) &&
		p.conditions.Equal(other.conditions) &&
		p.insurances.Equal(other.insurances)
}

// String renders the full patient card. Command results embed this rendering
// verbatim, so its shape is part of the user-facing contract.
func (p Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s", p.name, p.phone, p.email, p.address)
	if !p.relationship.IsNone() {
		fmt.Fprintf(&b, "; Relationship: %s", p.relationship)
	}
	fmt.Fprintf(&b, "; Appointment: %s", p.appointment)
	if !p.emergency.IsNil() {
		fmt.Fprintf(&b, "; Emergency Contact: %s", p.emergency)
	}
	if p.tags.Len() > 0 {
		fmt.Fprintf(&b, "; Tags: %s", p.tags)
	}
	if p.allergies.Len() > 0 {
		fmt.Fprintf(&b, "; Allergies: %s", p.allergies)
	}
	if p.conditions.Len() > 0 {
		fmt.Fprintf(&b, "; Conditions: %s", p.conditions)
	}
	if p.insurances.Len() > 0 {
		fmt.Fprintf(&b, "; Insurances: %s", p.insurances)
	}
	return b.String()
}
