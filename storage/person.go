package storage

import "github.com/c360studio/carelog/model/person"

// adaptedEmergencyContact is the document shape of an emergency contact.
// All three sub-fields are required when the object is present at all.
type adaptedEmergencyContact struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Relationship *string `json:"relationship"`
}

// adaptedPerson is the flat, optional-field document shape of a person.
// Pointer fields distinguish "absent" from "present but empty" so that a
// missing required key fails with MissingFieldError rather than a constraint
// error on the empty string.
type adaptedPerson struct {
	Name             *string                  `json:"name"`
	Phone            *string                  `json:"phone"`
	Email            *string                  `json:"email"`
	Address          *string                  `json:"address"`
	Relationship     *string                  `json:"relationship,omitempty"`
	Tags             []string                 `json:"tags,omitempty"`
	AllergyTags      []string                 `json:"allergyTags"`
	ConditionTags    []string                 `json:"conditionTags"`
	InsuranceTags    []string                 `json:"insuranceTags"`
	Appointment      string                   `json:"appointment,omitempty"`
	EmergencyContact *adaptedEmergencyContact `json:"emergencyContact,omitempty"`
}

// adaptPerson converts a model person to its document shape. The appointment
// serializes to a string NewAppointment accepts, or "" for the sentinel, so
// that decoding restores an equal person.
func adaptPerson(p person.Person) adaptedPerson {
	name := p.Name().String()
	phone := p.Phone().String()
	email := p.Email().String()
	address := p.Address().String()

	doc := adaptedPerson{
		Name:          &name,
		Phone:         &phone,
		Email:         &email,
		Address:       &address,
		Tags:          tagStrings(p.Tags(person.CategoryGeneral)),
		AllergyTags:   tagStrings(p.Tags(person.CategoryAllergy)),
		ConditionTags: tagStrings(p.Tags(person.CategoryCondition)),
		InsuranceTags: tagStrings(p.Tags(person.CategoryInsurance)),
	}

	if !p.Relationship().IsNone() {
		relationship := p.Relationship().String()
		doc.Relationship = &relationship
	}
	if !p.Appointment().IsDefault() {
		doc.Appointment = p.Appointment().String()
	}
	if ec := p.EmergencyContact(); !ec.IsNil() {
		ecName := ec.Name().String()
		ecPhone := ec.Phone().String()
		ecRelationship := ec.Relationship().String()
		doc.EmergencyContact = &adaptedEmergencyContact{
			Name:         &ecName,
			Phone:        &ecPhone,
			Relationship: &ecRelationship,
		}
	}
	return doc
}

// toPerson re-validates every field of the document exactly as the parser
// would and rebuilds the person. The decode is all-or-nothing: one bad field
// anywhere fails the whole person.
func (a adaptedPerson) toPerson() (person.Person, error) {
	if a.Name == nil {
		return person.Person{}, &MissingFieldError{Field: "Name"}
	}
	name, err := person.NewName(*a.Name)
	if err != nil {
		return person.Person{}, err
	}
	if a.Phone == nil {
		return person.Person{}, &MissingFieldError{Field: "Phone"}
	}
	phone, err := person.NewPhone(*a.Phone)
	if err != nil {
		return person.Person{}, err
	}
	if a.Email == nil {
		return person.Person{}, &MissingFieldError{Field: "Email"}
	}
	email, err := person.NewEmail(*a.Email)
	if err != nil {
		return person.Person{}, err
	}
	if a.Address == nil {
		return person.Person{}, &MissingFieldError{Field: "Address"}
	}
	address, err := person.NewAddress(*a.Address)
	if err != nil {
		return person.Person{}, err
	}

	tags, err := tagSet(a.Tags)
	if err != nil {
		return person.Person{}, err
	}
	p := person.NewPerson(name, phone, email, address, tags)

	for _, category := range []struct {
		name   person.TagCategory
		tokens []string
	}{
		{person.CategoryAllergy, a.AllergyTags},
		{person.CategoryCondition, a.ConditionTags},
		{person.CategoryInsurance, a.InsuranceTags},
	} {
		set, err := tagSet(category.tokens)
		if err != nil {
			return person.Person{}, err
		}
		if set.Len() > 0 {
			p, err = p.WithTagsAdded(category.name, set)
			if err != nil {
				return person.Person{}, err
			}
		}
	}

	if a.Relationship != nil {
		relationship, err := person.NewRelationship(*a.Relationship)
		if err != nil {
			return person.Person{}, err
		}
		p = p.WithRelationship(relationship)
	}

	// Absent or blank appointment means the sentinel; a malformed one is an
	// error, never a silent default.
	appointment, err := person.NewAppointment(a.Appointment)
	if err != nil {
		return person.Person{}, err
	}
	p = p.WithAppointment(appointment)

	if a.EmergencyContact != nil {
		ec, err := a.EmergencyContact.toEmergencyContact()
		if err != nil {
			return person.Person{}, err
		}
		p = p.WithEmergencyContact(ec)
	}
	return p, nil
}

func (a *adaptedEmergencyContact) toEmergencyContact() (person.EmergencyContact, error) {
	if a.Name == nil {
		return person.EmergencyContact{}, &MissingFieldError{Field: "Name"}
	}
	name, err := person.NewName(*a.Name)
	if err != nil {
		return person.EmergencyContact{}, err
	}
	if a.Phone == nil {
		return person.EmergencyContact{}, &MissingFieldError{Field: "Phone"}
	}
	phone, err := person.NewPhone(*a.Phone)
	if err != nil {
		return person.EmergencyContact{}, err
	}
	if a.Relationship == nil {
		return person.EmergencyContact{}, &MissingFieldError{Field: "Relationship"}
	}
	relationship, err := person.NewRelationship(*a.Relationship)
	if err != nil {
		return person.EmergencyContact{}, err
	}
	return person.NewEmergencyContact(name, phone, relationship), nil
}

func tagStrings(s person.TagSet) []string {
	out := make([]string, 0, s.Len())
	for _, t := range s.Sorted() {
		out = append(out, t.String())
	}
	return out
}

func tagSet(tokens []string) (person.TagSet, error) {
	set := person.NewTagSet()
	for _, raw := range tokens {
		t, err := person.NewTag(raw)
		if err != nil {
			return nil, err
		}
		set[t] = struct{}{}
	}
	return set, nil
}
