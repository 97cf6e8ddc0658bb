package person

import "testing"

func TestNewDateTime(t *testing.T) {
	valid := []string{"18-03-2025 10:00", "01-01-2000 00:00", "31-12-2099 23:59"}
	for _, raw := range valid {
		dt, err := NewDateTime(raw)
		if err != nil {
			t.Errorf("NewDateTime(%q) = %v, want valid", raw, err)
			continue
		}
		if dt.String() != raw {
			t.Errorf("NewDateTime(%q).String() = %q, want input back", raw, dt.String())
		}
	}

	invalid := []string{
		"",
		"2025-03-18 10:00", // wrong field order
		"18-03-2025",       // missing time
		"18-03-2025 10:00:00",
		"18/03/2025 10:00",
		"32-01-2025 10:00", // impossible day
		"18-13-2025 10:00", // impossible month
		"18-03-2025 24:01",
		"next tuesday",
	}
	for _, raw := range invalid {
		if _, err := NewDateTime(raw); err == nil {
			t.Errorf("NewDateTime(%q) succeeded, want %q", raw, DateTimeMessageConstraints)
		}
	}
}

func TestDateTimeOrdering(t *testing.T) {
	early, _ := NewDateTime("18-03-2025 10:00")
	late, _ := NewDateTime("18-03-2025 10:30")

	if !early.Before(late) {
		t.Error("10:00 should be before 10:30")
	}
	if early.Compare(late) >= 0 {
		t.Errorf("Compare(early, late) = %d, want negative", early.Compare(late))
	}
	if late.Compare(early) <= 0 {
		t.Errorf("Compare(late, early) = %d, want positive", late.Compare(early))
	}
	if early.Compare(early) != 0 {
		t.Error("Compare with itself should be 0")
	}
}

func TestDateTimeDiffMinutes(t *testing.T) {
	a, _ := NewDateTime("18-03-2025 10:00")
	b, _ := NewDateTime("18-03-2025 10:45")
	c, _ := NewDateTime("19-03-2025 10:00")

	if got := b.DiffMinutes(a); got != 45 {
		t.Errorf("DiffMinutes = %d, want 45", got)
	}
	if got := a.DiffMinutes(b); got != -45 {
		t.Errorf("DiffMinutes = %d, want -45", got)
	}
	if got := c.DiffMinutes(a); got != 24*60 {
		t.Errorf("DiffMinutes across a day = %d, want %d", got, 24*60)
	}
	if got := a.DiffMinutes(a); got != 0 {
		t.Errorf("DiffMinutes with itself = %d, want 0", got)
	}
}
