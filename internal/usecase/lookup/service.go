package lookup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cvrdex/internal/domain"
	"github.com/kailas-cloud/cvrdex/internal/domain/search"
	"github.com/kailas-cloud/cvrdex/internal/logger"
	"github.com/kailas-cloud/cvrdex/internal/metrics"
	"github.com/kailas-cloud/cvrdex/internal/repository/company"
)

// Lookup modes, used as metric labels for dropped hits.
const (
	modeName        = "name"
	modeFuzzyName   = "fuzzy_name"
	modeEmail       = "email"
	modeEmailDomain = "email_domain"
	modePhone       = "phone"
)

// Service answers company lookups against the CVR registry.
type Service struct {
	registry Registry
}

// New creates a lookup service.
func New(registry Registry) *Service {
	return &Service{registry: registry}
}

// ByCVR fetches a single company by its CVR number.
func (s *Service) ByCVR(ctx context.Context, cvr int) (domain.Company, error) {
	q := search.NewCVRLookup(cvr)
	res, err := s.registry.Search(ctx, &q)
	if err != nil {
		return domain.Company{}, fmt.Errorf("registry lookup: %w", err)
	}
	if len(res.Hits) == 0 {
		return domain.Company{}, fmt.Errorf("%w: cvr %d", domain.ErrNotFound, cvr)
	}

	c, err := company.Normalize(res.Hits[0], cvr)
	if err != nil {
		return domain.Company{}, fmt.Errorf("normalize company %d: %w", cvr, err)
	}
	return c, nil
}

// ByName lists companies whose current name starts with the given phrase.
func (s *Service) ByName(ctx context.Context, name string) ([]domain.Company, error) {
	return s.list(ctx, modeName, search.NewNamePrefix(name))
}

// ByFuzzyName lists companies whose current name approximately matches the query.
func (s *Service) ByFuzzyName(ctx context.Context, name string) ([]domain.Company, error) {
	return s.list(ctx, modeFuzzyName, search.NewNameFuzzy(name))
}

// ByEmail lists companies registered with the given email address.
func (s *Service) ByEmail(ctx context.Context, email string) ([]domain.Company, error) {
	return s.list(ctx, modeEmail, search.NewEmailMatch(email))
}

// ByEmailDomain lists companies with a registered email under the given domain.
func (s *Service) ByEmailDomain(ctx context.Context, emailDomain string) ([]domain.Company, error) {
	return s.list(ctx, modeEmailDomain, search.NewEmailDomainMatch(emailDomain))
}

// ByPhone lists companies registered with the given phone number.
func (s *Service) ByPhone(ctx context.Context, phone string) ([]domain.Company, error) {
	return s.list(ctx, modePhone, search.NewPhoneMatch(phone))
}

// list runs a list-shaped search and normalizes every usable hit. A hit
// missing required fields is dropped and counted, never fails the response.
func (s *Service) list(ctx context.Context, mode string, q search.Query) ([]domain.Company, error) {
	res, err := s.registry.Search(ctx, &q)
	if err != nil {
		return nil, fmt.Errorf("registry search: %w", err)
	}

	log := logger.FromContext(ctx)
	companies := make([]domain.Company, 0, len(res.Hits))
	for _, hit := range res.Hits {
		vat, ok := company.CVRNumber(hit)
		if !ok {
			metrics.SkippedHitsTotal.WithLabelValues(mode).Inc()
			log.Warn("skipping hit without cvr number", zap.String("mode", mode))
			continue
		}

		c, err := company.Normalize(hit, vat)
		if err != nil {
			metrics.SkippedHitsTotal.WithLabelValues(mode).Inc()
			log.Warn("skipping unmappable hit",
				zap.String("mode", mode), zap.Int("cvr", vat), zap.Error(err))
			continue
		}
		companies = append(companies, c)
	}
	return companies, nil
}
