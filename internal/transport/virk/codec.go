package virk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kailas-cloud/cvrdex/internal/domain/search"
)

// Source projections. Contact searches pull the full record because
// contact info may sit anywhere under the record's metadata.
var (
	sourceRegistry = []string{"Vrvirksomhed"}
	sourceFull     = []string{"*"}
)

// encodeQuery builds the JSON request body for one query.
func encodeQuery(q *search.Query) ([]byte, error) {
	clause, err := queryClause(q)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"_source": sourceFor(q),
		"query":   clause,
		"size":    q.Size(),
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal query body: %w", err)
	}
	return data, nil
}

func sourceFor(q *search.Query) []string {
	if q.FullRecord() {
		return sourceFull
	}
	return sourceRegistry
}

func queryClause(q *search.Query) (map[string]any, error) {
	switch q.Kind() {
	case search.Term:
		return map[string]any{"term": map[string]any{q.Field(): q.Value()}}, nil
	case search.Prefix:
		return map[string]any{"match_phrase_prefix": map[string]any{q.Field(): q.Value()}}, nil
	case search.Fuzzy:
		return map[string]any{"multi_match": map[string]any{
			"query":     q.Value(),
			"fields":    []string{fmt.Sprintf("%s^%d", q.Field(), q.Boost())},
			"fuzziness": "AUTO",
		}}, nil
	case search.Contact:
		return map[string]any{"match": map[string]any{q.Field(): q.Value()}}, nil
	default:
		return nil, fmt.Errorf("unsupported query kind %q", q.Kind())
	}
}

// hitTotal decodes the hit count from either the bare-integer dialect the
// registry speaks or the object form of newer index versions.
type hitTotal int

func (t *hitTotal) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*t = hitTotal(n)
		return nil
	}
	var obj struct {
		Value int `json:"value"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		*t = hitTotal(obj.Value)
		return nil
	}
	return fmt.Errorf("unrecognized hits.total shape: %s", b)
}

type envelope struct {
	Hits struct {
		Total hitTotal `json:"total"`
		Hits  []struct {
			Source map[string]json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// decodeResponse parses a search response envelope. Each hit is unwrapped
// to its registry subtree; a hit without one yields an empty record so the
// failure surfaces during normalization, not here.
func decodeResponse(r io.Reader) (search.Result, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return search.Result{}, fmt.Errorf("decode response envelope: %w", err)
	}

	res := search.Result{
		Total: int(env.Hits.Total),
		Hits:  make([]search.Record, 0, len(env.Hits.Hits)),
	}
	for _, h := range env.Hits.Hits {
		rec := search.Record{}
		if raw, ok := h.Source["Vrvirksomhed"]; ok {
			dec := json.NewDecoder(bytes.NewReader(raw))
			dec.UseNumber()
			if err := dec.Decode(&rec); err != nil {
				return search.Result{}, fmt.Errorf("decode hit source: %w", err)
			}
		}
		res.Hits = append(res.Hits, rec)
	}
	return res, nil
}
