package person

import (
	"errors"
	"testing"
)

func TestNewName(t *testing.T) {
	valid := []string{
		"Alice",
		"Benson Meier",
		"Mary-Jane O'Neil",
		"David Roger Jackson Jr, 2nd",
		"Capital Tan",
	}
	for _, raw := range valid {
		if _, err := NewName(raw); err != nil {
			t.Errorf("NewName(%q) = %v, want valid", raw, err)
		}
	}

	invalid := []string{
		"",
		" ",
		"^",
		"R@.chel",
		"-leading punctuation",
		" leading space",
	}
	for _, raw := range invalid {
		_, err := NewName(raw)
		if err == nil {
			t.Errorf("NewName(%q) succeeded, want constraint violation", raw)
			continue
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("NewName(%q) error type = %T, want *ValidationError", raw, err)
			continue
		}
		if vErr.Message != NameMessageConstraints {
			t.Errorf("NewName(%q) message = %q, want %q", raw, vErr.Message, NameMessageConstraints)
		}
	}
}

func TestNewPhone(t *testing.T) {
	valid := []string{"911", "91234567", "124293842033123"}
	for _, raw := range valid {
		if _, err := NewPhone(raw); err != nil {
			t.Errorf("NewPhone(%q) = %v, want valid", raw, err)
		}
	}

	invalid := []string{"", " ", "91", "+651234", "phone", "9011p041", "9312 1534"}
	for _, raw := range invalid {
		_, err := NewPhone(raw)
		if err == nil {
			t.Errorf("NewPhone(%q) succeeded, want constraint violation", raw)
			continue
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Message != PhoneMessageConstraints {
			t.Errorf("NewPhone(%q) error = %v, want fixed phone constraint message", raw, err)
		}
	}
}

func TestNewEmail(t *testing.T) {
	valid := []string{
		"alice@e.com",
		"PeterJack_1190@example.com",
		"a@bc.de",
		"peter_jack@very-very-very-long-example.com",
		"if.you.dream.it_you.can.do.it@example.com",
	}
	for _, raw := range valid {
		if _, err := NewEmail(raw); err != nil {
			t.Errorf("NewEmail(%q) = %v, want valid", raw, err)
		}
	}

	invalid := []string{
		"",
		"example.com",          // missing local part and @
		"@example.com",         // missing local part
		"peterjack@",           // missing domain
		"peterjack@example",    // domain needs at least one dot
		"peterjack@example.c",  // final label too short
		".peterjack@example.com", // local part starts with a special
		"peterjack@-example.com", // label starts with hyphen
		"peter jack@example.com", // space
	}
	for _, raw := range invalid {
		if _, err := NewEmail(raw); err == nil {
			t.Errorf("NewEmail(%q) succeeded, want constraint violation", raw)
		}
	}
}

func TestNewAddress(t *testing.T) {
	if _, err := NewAddress("Blk 456, Den Road, #01-355"); err != nil {
		t.Errorf("NewAddress(valid) = %v, want valid", err)
	}
	if _, err := NewAddress("-"); err != nil {
		t.Errorf("NewAddress(%q) = %v, want valid", "-", err)
	}
	for _, raw := range []string{"", " ", "   "} {
		if _, err := NewAddress(raw); err == nil {
			t.Errorf("NewAddress(%q) succeeded, want constraint violation", raw)
		}
	}
}

func TestNewRelationship(t *testing.T) {
	for _, raw := range []string{"Father", "Self", "Legal Guardian 2"} {
		if _, err := NewRelationship(raw); err != nil {
			t.Errorf("NewRelationship(%q) = %v, want valid", raw, err)
		}
	}
	for _, raw := range []string{"", " ", "@father"} {
		if _, err := NewRelationship(raw); err == nil {
			t.Errorf("NewRelationship(%q) succeeded, want constraint violation", raw)
		}
	}
	if !NoRelationship.IsNone() {
		t.Error("NoRelationship.IsNone() = false, want true")
	}
}

func TestNewTag(t *testing.T) {
	for _, raw := range []string{"Peanuts", "asthma", "G1234X"} {
		if _, err := NewTag(raw); err != nil {
			t.Errorf("NewTag(%q) = %v, want valid", raw, err)
		}
	}
	for _, raw := range []string{"", "#friend", "two words", "semi;colon"} {
		if _, err := NewTag(raw); err == nil {
			t.Errorf("NewTag(%q) succeeded, want constraint violation", raw)
		}
	}
}

func TestTagSetEqualIgnoresOrdering(t *testing.T) {
	a, _ := NewTag("Peanuts")
	b, _ := NewTag("Shellfish")

	first := NewTagSet(a, b)
	second := NewTagSet(b, a)
	if !first.Equal(second) {
		t.Error("sets built in different orders should be equal")
	}
	if first.Equal(NewTagSet(a)) {
		t.Error("sets of different size should not be equal")
	}
}

func TestTagSetCloneIsIndependent(t *testing.T) {
	a, _ := NewTag("Peanuts")
	b, _ := NewTag("Shellfish")

	original := NewTagSet(a)
	clone := original.Clone()
	clone[b] = struct{}{}
	if original.Contains(b) {
		t.Error("mutating a clone should not affect the original set")
	}
}

// Textual round trip: every accepted value re-renders to a string the same
// factory accepts.
func TestFieldRoundTrip(t *testing.T) {
	name, _ := NewName("Alice Pauline")
	if _, err := NewName(name.String()); err != nil {
		t.Errorf("name round trip failed: %v", err)
	}
	phone, _ := NewPhone("91234567")
	if _, err := NewPhone(phone.String()); err != nil {
		t.Errorf("phone round trip failed: %v", err)
	}
	email, _ := NewEmail("alice@example.com")
	if _, err := NewEmail(email.String()); err != nil {
		t.Errorf("email round trip failed: %v", err)
	}
	tag, _ := NewTag("Peanuts")
	if _, err := NewTag(tag.String()); err != nil {
		t.Errorf("tag round trip failed: %v", err)
	}
}
