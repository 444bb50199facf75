// Package backfill migrates legacy indirect product links (sale -> post ->
// product) into direct productId references. The dashboard keeps honoring
// the legacy path on the all-time view until a run against production data
// reports zero unresolved rows.
package backfill

import (
	"context"
	"time"

	"github.com/talentbms/talent-bms-api/infrastructure/repository"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/talentbms/talent-bms-api/pkg/log"
)

type Backfiller interface {
	ResolveProductLinks(ctx context.Context) (*domain.BackfillResult, error)
}

type Service struct {
	saleRepo repository.SaleRepository
}

func NewService(saleRepo repository.SaleRepository) Backfiller {
	return &Service{
		saleRepo: saleRepo,
	}
}

// ResolveProductLinks runs the one-shot migration in a single transaction
// and reports how many legacy rows were resolved and how many remain.
func (s *Service) ResolveProductLinks(ctx context.Context) (*domain.BackfillResult, error) {
	logger := log.ForContext(ctx)
	logger.Info("backfill: resolving legacy product links")

	resolved, unresolved, err := s.saleRepo.ResolveLegacyProductLinks(ctx)
	if err != nil {
		logger.WithError(err).Error("backfill: legacy link resolution failed")
		return nil, err
	}

	result := &domain.BackfillResult{
		Resolved:   resolved,
		Unresolved: unresolved,
		RanAt:      time.Now().UTC(),
	}

	logger.WithFields(log.Fields{
		"resolved":   result.Resolved,
		"unresolved": result.Unresolved,
	}).Info("backfill: legacy link resolution finished")

	if result.Unresolved > 0 {
		logger.Warnf("backfill: %d legacy rows cannot be resolved (post deleted or unlinked); the legacy attribution path must stay", result.Unresolved)
	}

	return result, nil
}
