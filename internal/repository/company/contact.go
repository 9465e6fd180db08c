package company

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/mcnijman/go-emailaddress"
)

// contactKind selects which value extractContact pulls from a blob.
type contactKind int

const (
	contactPhone contactKind = iota
	contactEmail
	contactWebsite
)

var (
	phoneRegex   = regexp.MustCompile(`\b\d{8}\b`)
	websiteRegex = regexp.MustCompile(`\bhttp[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+\b`)
)

// extractContact pulls the first value of the given kind out of a
// serialized contact blob. The registry does not tag contact entries by
// type, so extraction is best-effort pattern matching: the first match in
// serialization order wins, and a look-alike token embedded in unrelated
// text is accepted as the value. Callers that need stricter semantics
// swap this function, not the normalizer.
func extractContact(kind contactKind, blob string) (string, bool) {
	if blob == "" {
		return "", false
	}

	switch kind {
	case contactPhone:
		m := phoneRegex.FindString(blob)
		return m, m != ""
	case contactWebsite:
		m := websiteRegex.FindString(blob)
		return m, m != ""
	case contactEmail:
		found := emailaddress.Find([]byte(blob), false)
		if len(found) == 0 {
			return "", false
		}
		return found[0].String(), true
	}
	return "", false
}

// contactBlob serializes the contact-info block to text for pattern
// scanning. The block nests arbitrarily, so the whole subtree is flattened
// rather than walked field by field.
func contactBlob(meta map[string]any) string {
	raw, ok := meta["nyesteKontaktoplysninger"]
	if !ok || raw == nil {
		return ""
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Sprint(raw)
	}
	return string(b)
}
