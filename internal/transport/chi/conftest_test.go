package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cvrdex/internal/domain/search"
	healthuc "github.com/kailas-cloud/cvrdex/internal/usecase/health"
	lookupuc "github.com/kailas-cloud/cvrdex/internal/usecase/lookup"
)

// fakeRegistry implements the consumer interface for tests and records
// the last query it was handed.
type fakeRegistry struct {
	result search.Result
	err    error
	lastQ  *search.Query
}

func (f *fakeRegistry) Search(_ context.Context, q *search.Query) (search.Result, error) {
	f.lastQ = q
	return f.result, f.err
}

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(_ context.Context) error { return p.err }

// companyHit builds a record carrying every field the normalizer requires.
func companyHit(cvr int, name string) search.Record {
	return search.Record{
		"cvrNummer": cvr,
		"virksomhedMetadata": map[string]any{
			"nyesteNavn":                map[string]any{"navn": name},
			"nyesteBeliggenhedsadresse": map[string]any{"vejnavn": "Testvej", "husnummerFra": 1},
			"nyesteHovedbranche":        map[string]any{"branchekode": "620100", "branchetekst": "IT"},
			"nyesteVirksomhedsform": map[string]any{
				"virksomhedsformkode": 80,
				"langBeskrivelse":     "Anpartsselskab",
				"kortBeskrivelse":     "APS",
			},
			"sammensatStatus": "NORMAL",
		},
	}
}

func newTestRouter(reg lookupuc.Registry, ping healthuc.RegistryPinger) http.Handler {
	r := chi.NewRouter()
	srv := NewServer(lookupuc.New(reg), healthuc.New(ping, nil), zap.NewNop())
	srv.Mount(r)
	return r
}

func doRequest(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}
