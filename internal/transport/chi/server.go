package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cvrdex/internal/domain"
	healthuc "github.com/kailas-cloud/cvrdex/internal/usecase/health"
	lookupuc "github.com/kailas-cloud/cvrdex/internal/usecase/lookup"
	"github.com/kailas-cloud/cvrdex/internal/version"
)

type errorCode string

const (
	codeBadRequest          errorCode = "bad_request"
	codeNotFound            errorCode = "not_found"
	codeUnauthorized        errorCode = "unauthorized"
	codeRateLimited         errorCode = "rate_limited"
	codeRegistryUnavailable errorCode = "registry_unavailable"
	codeRegistryError       errorCode = "registry_error"
	codeMappingFailed       errorCode = "mapping_failed"
	codeInternalError       errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type versionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	BuiltAt string `json:"built_at"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes company lookups over HTTP.
type Server struct {
	lookup        *lookupuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(lookup *lookupuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		lookup: lookup,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrUnauthorized, http.StatusForbidden, codeUnauthorized),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, codeRateLimited),
		sentinelHandler(domain.ErrUnavailable, http.StatusBadGateway, codeRegistryUnavailable),
		sentinelHandler(domain.ErrBackend, http.StatusBadGateway, codeRegistryError),
		sentinelHandler(domain.ErrMapping, http.StatusBadGateway, codeMappingFailed),
	}
	return s
}

// Mount registers all routes on the given router.
func (s *Server) Mount(r chi.Router) {
	r.Get("/api/v1/version", s.Version)
	r.Get("/api/v1/search/company/{companyName}", s.SearchCompanyByName)
	r.Get("/api/v1/fuzzy_search/company/{companyName}", s.SearchCompanyByFuzzyName)
	r.Get("/api/v1/email/{email}", s.SearchCompanyByEmail)
	r.Get("/api/v1/email_domain/{domain}", s.SearchCompanyByEmailDomain)
	r.Get("/api/v1/phone/{phone}", s.SearchCompanyByPhone)
	r.Get("/api/v1/{cvrNumber}", s.LookupCompany)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// LookupCompany handles GET /api/v1/{cvrNumber}.
func (s *Server) LookupCompany(w http.ResponseWriter, r *http.Request) {
	cvr, err := strconv.Atoi(chi.URLParam(r, "cvrNumber"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "cvr number must be an integer")
		return
	}

	c, err := s.lookup.ByCVR(r.Context(), cvr)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// SearchCompanyByName handles GET /api/v1/search/company/{companyName}.
func (s *Server) SearchCompanyByName(w http.ResponseWriter, r *http.Request) {
	companies, err := s.lookup.ByName(r.Context(), chi.URLParam(r, "companyName"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, companies)
}

// SearchCompanyByFuzzyName handles GET /api/v1/fuzzy_search/company/{companyName}.
func (s *Server) SearchCompanyByFuzzyName(w http.ResponseWriter, r *http.Request) {
	companies, err := s.lookup.ByFuzzyName(r.Context(), chi.URLParam(r, "companyName"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, companies)
}

// SearchCompanyByEmail handles GET /api/v1/email/{email}.
func (s *Server) SearchCompanyByEmail(w http.ResponseWriter, r *http.Request) {
	companies, err := s.lookup.ByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, companies)
}

// SearchCompanyByEmailDomain handles GET /api/v1/email_domain/{domain}.
func (s *Server) SearchCompanyByEmailDomain(w http.ResponseWriter, r *http.Request) {
	companies, err := s.lookup.ByEmailDomain(r.Context(), chi.URLParam(r, "domain"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, companies)
}

// SearchCompanyByPhone handles GET /api/v1/phone/{phone}.
func (s *Server) SearchCompanyByPhone(w http.ResponseWriter, r *http.Request) {
	companies, err := s.lookup.ByPhone(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, companies)
}

// Version handles GET /api/v1/version.
func (s *Server) Version(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, versionResponse{
		Version: version.Version,
		Commit:  version.Commit,
		BuiltAt: version.Date,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrUnauthorized,
		domain.ErrRateLimited,
		domain.ErrUnavailable,
		domain.ErrBackend,
		domain.ErrMapping,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
