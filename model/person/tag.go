package person

import (
	"regexp"
	"sort"
	"strings"
)

// TagMessageConstraints is the fixed constraint message for Tag.
const TagMessageConstraints = "Tags names should be alphanumeric"

var tagValid = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Tag is a case-sensitive alphanumeric token. A tag has no inherent category;
// category membership is a property of which set holds it.
type Tag struct {
	name string
}

// NewTag validates raw and returns it as a Tag.
func NewTag(raw string) (Tag, error) {
	if !IsValidTag(raw) {
		return Tag{}, &ValidationError{Field: "Tag", Message: TagMessageConstraints}
	}
	return Tag{name: raw}, nil
}

// IsValidTag reports whether raw is a valid tag token.
func IsValidTag(raw string) bool {
	return tagValid.MatchString(raw)
}

func (t Tag) String() string {
	return t.name
}

// TagSet is an unordered set of tags. Mutating helpers return copies; a
// TagSet held by a Person is never modified in place.
type TagSet map[Tag]struct{}

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports whether t is in the set.
func (s TagSet) Contains(t Tag) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	return len(s)
}

// Equal reports set equality, ignoring ordering.
func (s TagSet) Equal(other TagSet) bool {
	if len(s) != len(other) {
		return false
	}
	for t := range s {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s TagSet) Clone() TagSet {
	c := make(TagSet, len(s))
	for t := range s {
		c[t] = struct{}{}
	}
	return c
}

// Sorted returns the tags ordered by name, for deterministic rendering and
// serialization.
func (s TagSet) Sorted() []Tag {
	tags := make([]Tag, 0, len(s))
	for t := range s {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].name < tags[j].name })
	return tags
}

// String renders the set as a sorted, comma-separated list in brackets.
func (s TagSet) String() string {
	names := make([]string, 0, len(s))
	for _, t := range s.Sorted() {
		names = append(names, t.name)
	}
	return "[" + strings.Join(names, ", ") + "]"
}
