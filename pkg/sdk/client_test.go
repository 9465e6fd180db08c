package cvrdex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func apiStub(t *testing.T, wantPath string, status int, body string) (*httptest.Server, *http.Header) {
	t.Helper()
	var gotHeader http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		if wantPath != "" && r.URL.Path != wantPath {
			t.Errorf("path = %q, want %q", r.URL.Path, wantPath)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts, &gotHeader
}

func TestLookup(t *testing.T) {
	body := `{"vat": 28856636, "name": "Acme ApS", "address": "Storgade 10", "zipcode": 8000, "bankrupt": false, "version": 1}`
	ts, hdr := apiStub(t, "/api/v1/28856636", http.StatusOK, body)

	c := NewClient(ts.URL, WithAPIKey("k1"))
	got, err := c.Lookup(context.Background(), 28856636)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if got.VAT != 28856636 || got.Name != "Acme ApS" {
		t.Errorf("company = %+v", got)
	}
	if got.Zipcode == nil || *got.Zipcode != 8000 {
		t.Errorf("zipcode = %v, want 8000", got.Zipcode)
	}
	if hdr.Get("X-API-Key") != "k1" {
		t.Errorf("X-API-Key = %q, want k1", hdr.Get("X-API-Key"))
	}
}

func TestLookup_NotFound(t *testing.T) {
	ts, _ := apiStub(t, "", http.StatusNotFound, `{"code": "not_found", "message": "not found"}`)

	c := NewClient(ts.URL)
	_, err := c.Lookup(context.Background(), 99999999)

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("err is not an *APIError")
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Code != "not_found" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestLookup_Unauthorized(t *testing.T) {
	ts, _ := apiStub(t, "", http.StatusForbidden, `{"code": "unauthorized", "message": "unauthorized"}`)

	c := NewClient(ts.URL, WithAPIKey("wrong"))
	_, err := c.Lookup(context.Background(), 28856636)

	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestLookup_RateLimited(t *testing.T) {
	ts, _ := apiStub(t, "", http.StatusTooManyRequests, `{"code": "rate_limited", "message": "rate limited"}`)

	c := NewClient(ts.URL)
	_, err := c.Lookup(context.Background(), 28856636)

	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
}

func TestLookup_RegistryDown(t *testing.T) {
	ts, _ := apiStub(t, "", http.StatusBadGateway, `{"code": "registry_unavailable", "message": "registry unavailable"}`)

	c := NewClient(ts.URL)
	_, err := c.Lookup(context.Background(), 28856636)

	if !errors.Is(err, ErrRegistry) {
		t.Fatalf("err = %v, want ErrRegistry", err)
	}
}

func TestLookup_NonEnvelopeError(t *testing.T) {
	ts, _ := apiStub(t, "", http.StatusInternalServerError, "upstream proxy exploded")

	c := NewClient(ts.URL)
	_, err := c.Lookup(context.Background(), 28856636)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Code != "unknown" {
		t.Errorf("code = %q, want unknown for a non-envelope body", apiErr.Code)
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrRegistry) {
		t.Error("unknown codes must not map to a sentinel")
	}
}

func TestSearchName_EscapesPath(t *testing.T) {
	ts, _ := apiStub(t, "/api/v1/search/company/Novo Nordisk", http.StatusOK,
		`[{"vat": 11111111, "name": "Novo Nordisk A/S"}]`)

	c := NewClient(ts.URL)
	got, err := c.SearchName(context.Background(), "Novo Nordisk")
	if err != nil {
		t.Fatalf("SearchName: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Novo Nordisk A/S" {
		t.Errorf("companies = %+v", got)
	}
}

func TestSearchEmailDomain(t *testing.T) {
	ts, _ := apiStub(t, "/api/v1/email_domain/example.dk", http.StatusOK, `[]`)

	c := NewClient(ts.URL)
	got, err := c.SearchEmailDomain(context.Background(), "example.dk")
	if err != nil {
		t.Fatalf("SearchEmailDomain: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("companies = %#v, want empty non-nil slice", got)
	}
}

func TestVersion(t *testing.T) {
	ts, _ := apiStub(t, "/api/v1/version", http.StatusOK,
		`{"version": "1.2.3", "commit": "abc1234", "built_at": "2024-06-01T10:00:00Z"}`)

	c := NewClient(ts.URL)
	got, err := c.Version(context.Background())
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if got.Version != "1.2.3" || got.Commit != "abc1234" {
		t.Errorf("version = %+v", got)
	}
}

func TestHealth_Degraded(t *testing.T) {
	ts, _ := apiStub(t, "/health", http.StatusServiceUnavailable,
		`{"status": "degraded", "checks": {"registry": "error"}}`)

	c := NewClient(ts.URL)
	got, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: a degraded report is data, not an error: %v", err)
	}
	if got.Status != "degraded" || got.Checks["registry"] != "error" {
		t.Errorf("health = %+v", got)
	}
}

func TestNoAPIKey_HeaderAbsent(t *testing.T) {
	ts, hdr := apiStub(t, "", http.StatusOK, `{"vat": 1}`)

	c := NewClient(ts.URL)
	if _, err := c.Lookup(context.Background(), 1); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, ok := (*hdr)["X-Api-Key"]; ok {
		t.Error("X-API-Key header must be absent without WithAPIKey")
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	ts, _ := apiStub(t, "/api/v1/version", http.StatusOK, `{"version": "dev"}`)

	c := NewClient(ts.URL + "/")
	if _, err := c.Version(context.Background()); err != nil {
		t.Fatalf("Version: %v", err)
	}
}
