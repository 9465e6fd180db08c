package search

// Registry index field paths.
const (
	FieldCVRNumber  = "Vrvirksomhed.cvrNummer"
	FieldLatestName = "Vrvirksomhed.virksomhedMetadata.nyesteNavn.navn"
	FieldEmail      = "Vrvirksomhed.elektroniskPost.kontaktoplysning"
	FieldPhone      = "Vrvirksomhed.telefonNummer.kontaktoplysning"
)

// Result-size caps per query shape.
const (
	// SingleResultSize caps identifier lookups at one hit.
	SingleResultSize = 1
	// ListResultSize caps every list-producing search.
	ListResultSize = 100
)

// NameBoost is the relevance weight applied to the name field in fuzzy search.
const NameBoost = 2

// Query is one registry search query. Values are passed through verbatim;
// input validation, if any, is the caller's concern.
type Query struct {
	kind       Kind
	field      string
	value      any
	size       int
	boost      int
	fullRecord bool
}

// NewCVRLookup builds an exact lookup by registration number.
func NewCVRLookup(cvrNumber int) Query {
	return Query{
		kind:  Term,
		field: FieldCVRNumber,
		value: cvrNumber,
		size:  SingleResultSize,
	}
}

// NewNamePrefix builds a phrase-prefix search on the latest company name.
func NewNamePrefix(name string) Query {
	return Query{
		kind:  Prefix,
		field: FieldLatestName,
		value: name,
		size:  ListResultSize,
	}
}

// NewNameFuzzy builds a fuzzy search on the latest company name with a
// boosted relevance weight.
func NewNameFuzzy(name string) Query {
	return Query{
		kind:  Fuzzy,
		field: FieldLatestName,
		value: name,
		size:  ListResultSize,
		boost: NameBoost,
	}
}

// NewEmailMatch builds a contact search by email address.
func NewEmailMatch(email string) Query {
	return Query{
		kind:       Contact,
		field:      FieldEmail,
		value:      email,
		size:       ListResultSize,
		fullRecord: true,
	}
}

// NewEmailDomainMatch builds a contact search matching every address under
// a mail domain. The value is prefixed with "@" so the match stays on the
// domain portion of an address instead of any substring.
func NewEmailDomainMatch(domain string) Query {
	q := NewEmailMatch("@" + domain)
	return q
}

// NewPhoneMatch builds a contact search by phone number.
func NewPhoneMatch(phone string) Query {
	return Query{
		kind:       Contact,
		field:      FieldPhone,
		value:      phone,
		size:       ListResultSize,
		fullRecord: true,
	}
}

// Kind returns the query shape.
func (q *Query) Kind() Kind { return q.kind }

// Field returns the target index field path.
func (q *Query) Field() string { return q.field }

// Value returns the match value as passed by the caller.
func (q *Query) Value() any { return q.value }

// Size returns the result-size cap.
func (q *Query) Size() int { return q.size }

// Boost returns the name-field relevance weight (0 when unboosted).
func (q *Query) Boost() int { return q.boost }

// FullRecord reports whether the query requests the full source record.
// Contact searches do, because contact info may sit anywhere under the
// record's metadata; the rest project only the registry subtree.
func (q *Query) FullRecord() bool { return q.fullRecord }
