package store

import (
	"context"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/models"
)

// dashboardRepository serves the read-only aggregation queries behind the
// dashboard summary endpoint. It owns no table of its own.
type dashboardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDashboardRepository constructs a [DashboardRepository] backed by the
// provided database connection and logger.
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		db:     db,
		logger: logger,
	}
}

// CountAll fills the per-entity totals of the summary. The grouped slices
// are left empty for the caller to populate.
func (r *dashboardRepository) CountAll(ctx context.Context) (models.DashboardSummary, error) {
	log := logger.FromContext(ctx)

	var summary models.DashboardSummary
	counts := []struct {
		query string
		dest  *int64
	}{
		{countCommunities, &summary.Communities},
		{countPastorals, &summary.Pastorals},
		{countPeople, &summary.People},
		{countEvents, &summary.Events},
		{countActions, &summary.Actions},
	}

	for _, c := range counts {
		if err := r.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			log.Err(err).Str("func", "*dashboardRepository.CountAll").Msg("error: count failed")
			return models.DashboardSummary{}, r.db.wrapUnavailable("dashboard counts", err)
		}
	}

	return summary, nil
}

// EventsByMonth groups events by calendar month in ascending order.
func (r *dashboardRepository) EventsByMonth(ctx context.Context) ([]models.MonthCount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, eventsByMonth)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.EventsByMonth").Msg("error: query failed")
		return nil, r.db.wrapUnavailable("events by month", err)
	}
	defer rows.Close()

	buckets := make([]models.MonthCount, 0)
	for rows.Next() {
		var bucket models.MonthCount
		if err := rows.Scan(&bucket.Month, &bucket.Total); err != nil {
			log.Err(err).Str("func", "*dashboardRepository.EventsByMonth").Msg("error: scanning error")
			return nil, r.db.wrapUnavailable("events by month", err)
		}
		buckets = append(buckets, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.wrapUnavailable("events by month", err)
	}

	return buckets, nil
}

// ActionsByStatus groups actions by lifecycle status.
func (r *dashboardRepository) ActionsByStatus(ctx context.Context) ([]models.StatusCount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, actionsByStatus)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.ActionsByStatus").Msg("error: query failed")
		return nil, r.db.wrapUnavailable("actions by status", err)
	}
	defer rows.Close()

	buckets := make([]models.StatusCount, 0)
	for rows.Next() {
		var bucket models.StatusCount
		if err := rows.Scan(&bucket.Status, &bucket.Total); err != nil {
			log.Err(err).Str("func", "*dashboardRepository.ActionsByStatus").Msg("error: scanning error")
			return nil, r.db.wrapUnavailable("actions by status", err)
		}
		buckets = append(buckets, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.wrapUnavailable("actions by status", err)
	}

	return buckets, nil
}
