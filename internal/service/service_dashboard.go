package service

import (
	"context"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
)

// dashboardService composes the landing-page summary from three read-only
// aggregation queries. Any failing query fails the whole summary; there is
// no partial dashboard.
type dashboardService struct {
	repository store.DashboardRepository
	logger     *logger.Logger
}

func NewDashboardService(repository store.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{repository: repository, logger: logger}
}

func (s *dashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	log := logger.FromContext(ctx)

	summary, err := s.repository.CountAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.Summary").Msg("entity counts failed")
		return models.DashboardSummary{}, err
	}

	summary.EventsByMonth, err = s.repository.EventsByMonth(ctx)
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.Summary").Msg("events grouping failed")
		return models.DashboardSummary{}, err
	}

	summary.ActionsByStatus, err = s.repository.ActionsByStatus(ctx)
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.Summary").Msg("actions grouping failed")
		return models.DashboardSummary{}, err
	}

	return summary, nil
}
