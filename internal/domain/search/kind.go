package search

// Kind is the query shape sent to the registry index.
type Kind string

// Query kind constants.
const (
	// Term matches a field against an exact value.
	Term Kind = "term"
	// Prefix matches names beginning with the query phrase.
	Prefix Kind = "prefix"
	// Fuzzy matches names within automatic edit-distance tolerance.
	Fuzzy Kind = "fuzzy"
	// Contact matches a contact-info field (email, phone).
	Contact Kind = "contact"
)

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Term || k == Prefix || k == Fuzzy || k == Contact
}
