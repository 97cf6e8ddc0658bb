package person

import "regexp"

// RelationshipMessageConstraints is the fixed constraint message for Relationship.
const RelationshipMessageConstraints = "Relationships should only contain alphanumeric characters and spaces, and it should not be blank"

var relationshipValid = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// Relationship is a short classifier such as "Father" or "Self".
// The zero value means no relationship was provided.
type Relationship struct {
	value string
}

// NoRelationship is the sentinel for an absent relationship label.
var NoRelationship = Relationship{}

// NewRelationship validates raw and returns it as a Relationship.
func NewRelationship(raw string) (Relationship, error) {
	if !IsValidRelationship(raw) {
		return Relationship{}, &ValidationError{Field: "Relationship", Message: RelationshipMessageConstraints}
	}
	return Relationship{value: raw}, nil
}

// IsValidRelationship reports whether raw is a valid relationship label.
func IsValidRelationship(raw string) bool {
	return relationshipValid.MatchString(raw)
}

// IsNone reports whether no relationship was provided.
func (r Relationship) IsNone() bool {
	return r.value == ""
}

func (r Relationship) String() string {
	return r.value
}

// Equal reports exact equality.
func (r Relationship) Equal(other Relationship) bool {
	return r.value == other.value
}
