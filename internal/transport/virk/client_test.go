package virk

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cvrdex/internal/domain"
	"github.com/kailas-cloud/cvrdex/internal/domain/search"
	"github.com/kailas-cloud/cvrdex/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterRegistryMetrics()
	os.Exit(m.Run())
}

func newTestClient(url string) *Client {
	return NewClient(&Config{
		URL:      url,
		Username: "test-user",
		Password: "test-pass",
		Timeout:  5 * time.Second,
		Logger:   zap.NewNop(),
	})
}

func TestClientSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "test-user" || pass != "test-pass" {
			t.Errorf("basic auth = %q/%q/%v, want test-user/test-pass", user, pass, ok)
		}

		body, _ := io.ReadAll(r.Body)
		want := `{"_source":["Vrvirksomhed"],"query":{"term":{"Vrvirksomhed.cvrNummer":28856636}},"size":1}`
		if string(body) != want {
			t.Errorf("request body:\ngot:  %s\nwant: %s", body, want)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hits":{"total":1,"hits":[
			{"_source":{"Vrvirksomhed":{"cvrNummer":28856636,"reklamebeskyttet":false}}}
		]}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	q := search.NewCVRLookup(28856636)
	res, err := c.Search(context.Background(), &q)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if res.Total != 1 {
		t.Errorf("Total = %d, want 1", res.Total)
	}
	if len(res.Hits) != 1 {
		t.Fatalf("len(Hits) = %d, want 1", len(res.Hits))
	}
	if got := res.Hits[0]["reklamebeskyttet"]; got != false {
		t.Errorf("reklamebeskyttet = %v, want false", got)
	}
}

func TestClientSearch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	q := search.NewCVRLookup(99999999)
	_, err := c.Search(context.Background(), &q)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestClientSearch_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream choked"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	q := search.NewNamePrefix("Novo")
	_, err := c.Search(context.Background(), &q)
	if !errors.Is(err, domain.ErrBackend) {
		t.Fatalf("err = %v, want ErrBackend", err)
	}
	if !strings.Contains(err.Error(), "status 502") {
		t.Errorf("error %q does not mention the status", err)
	}
	if !strings.Contains(err.Error(), "upstream choked") {
		t.Errorf("error %q does not carry the response detail", err)
	}
}

func TestClientSearch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	q := search.NewPhoneMatch("33333333")
	_, err := c.Search(context.Background(), &q)
	if !errors.Is(err, domain.ErrBackend) {
		t.Fatalf("err = %v, want ErrBackend", err)
	}
}

func TestClientSearch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	c := newTestClient(server.URL)

	q := search.NewEmailMatch("info@example.com")
	_, err := c.Search(context.Background(), &q)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestClientSearch_ContextCancelled(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server's background read can notice the
		// client disconnect and cancel the request context.
		_, _ = io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	q := search.NewCVRLookup(28856636)
	_, err := c.Search(ctx, &q)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestClientPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hits":{"total":0,"hits":[]}}`))
	}))
	defer server.Close()

	if err := newTestClient(server.URL).Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestClientPing_TreatsNotFoundAsHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if err := newTestClient(server.URL).Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestClientPing_ReportsBackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if err := newTestClient(server.URL).Ping(context.Background()); err == nil {
		t.Fatal("expected error for failing registry")
	}
}
