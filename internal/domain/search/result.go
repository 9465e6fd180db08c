package search

// Record is the raw registry subtree for one company, as nested and as
// inconsistently typed as the index stores it. Records are owned by one
// normalization pass and are only ever read.
type Record map[string]any

// Result is one decoded search response envelope.
type Result struct {
	Total int
	Hits  []Record
}
