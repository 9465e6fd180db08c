package search

import "testing"

func TestKindIsValid(t *testing.T) {
	valid := []Kind{Term, Prefix, Fuzzy, Contact}
	for _, k := range valid {
		if !k.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", k)
		}
	}

	invalid := []Kind{"", "match", "TERM", "wildcard"}
	for _, k := range invalid {
		if k.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", k)
		}
	}
}

func TestNewCVRLookup(t *testing.T) {
	q := NewCVRLookup(28856636)

	if q.Kind() != Term {
		t.Errorf("Kind = %q, want %q", q.Kind(), Term)
	}
	if q.Field() != FieldCVRNumber {
		t.Errorf("Field = %q, want %q", q.Field(), FieldCVRNumber)
	}
	if v, ok := q.Value().(int); !ok || v != 28856636 {
		t.Errorf("Value = %v, want 28856636", q.Value())
	}
	if q.Size() != SingleResultSize {
		t.Errorf("Size = %d, want %d", q.Size(), SingleResultSize)
	}
	if q.FullRecord() {
		t.Error("FullRecord = true, want false")
	}
}

func TestNewNamePrefix(t *testing.T) {
	q := NewNamePrefix("Novo Nordisk")

	if q.Kind() != Prefix {
		t.Errorf("Kind = %q, want %q", q.Kind(), Prefix)
	}
	if q.Field() != FieldLatestName {
		t.Errorf("Field = %q, want %q", q.Field(), FieldLatestName)
	}
	if q.Size() != ListResultSize {
		t.Errorf("Size = %d, want %d", q.Size(), ListResultSize)
	}
	if q.Boost() != 0 {
		t.Errorf("Boost = %d, want 0", q.Boost())
	}
}

func TestNewNameFuzzy(t *testing.T) {
	q := NewNameFuzzy("Novo")

	if q.Kind() != Fuzzy {
		t.Errorf("Kind = %q, want %q", q.Kind(), Fuzzy)
	}
	if q.Boost() != NameBoost {
		t.Errorf("Boost = %d, want %d", q.Boost(), NameBoost)
	}
	if q.Size() != ListResultSize {
		t.Errorf("Size = %d, want %d", q.Size(), ListResultSize)
	}
}

func TestNewEmailMatch(t *testing.T) {
	q := NewEmailMatch("info@example.com")

	if q.Kind() != Contact {
		t.Errorf("Kind = %q, want %q", q.Kind(), Contact)
	}
	if q.Field() != FieldEmail {
		t.Errorf("Field = %q, want %q", q.Field(), FieldEmail)
	}
	if q.Value() != "info@example.com" {
		t.Errorf("Value = %v, want info@example.com", q.Value())
	}
	if !q.FullRecord() {
		t.Error("FullRecord = false, want true")
	}
}

func TestNewEmailDomainMatchPrefixesValue(t *testing.T) {
	q := NewEmailDomainMatch("example.com")

	if q.Value() != "@example.com" {
		t.Errorf("Value = %v, want @example.com", q.Value())
	}
	if q.Field() != FieldEmail {
		t.Errorf("Field = %q, want %q", q.Field(), FieldEmail)
	}
	if !q.FullRecord() {
		t.Error("FullRecord = false, want true")
	}
}

func TestNewPhoneMatch(t *testing.T) {
	q := NewPhoneMatch("33333333")

	if q.Kind() != Contact {
		t.Errorf("Kind = %q, want %q", q.Kind(), Contact)
	}
	if q.Field() != FieldPhone {
		t.Errorf("Field = %q, want %q", q.Field(), FieldPhone)
	}
	if !q.FullRecord() {
		t.Error("FullRecord = false, want true")
	}
}
