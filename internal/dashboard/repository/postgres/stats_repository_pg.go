package postgres

import (
	"context"
	"log/slog"

	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/domain"
	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/repository"
)

// Rates are not derivable from the stored schema (no per-message delivery
// reconciliation exists), so the dashboard shows fixed demo figures there.
const (
	demoResponseRate   = "68.5%"
	demoConversionRate = "24.8%"
)

type PgStatsRepository struct {
	db     repository.DB
	logger *slog.Logger
}

func NewPgStatsRepository(db repository.DB, logger *slog.Logger) *PgStatsRepository {
	return &PgStatsRepository{db: db, logger: logger.With("repository", "stats")}
}

// GetDashboardStats aggregates the headline numbers for one user: messages
// used plus campaign totals, and the count of contacts on file.
func (r *PgStatsRepository) GetDashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	query := `
		SELECT
			COALESCE((SELECT messages_used FROM users WHERE id = $1), 0)
				+ COALESCE((SELECT SUM(messages_sent) FROM campaigns WHERE user_id = $1), 0),
			(SELECT COUNT(*) FROM contacts WHERE user_id = $1)
	`
	stats := &domain.DashboardStats{
		ResponseRate:   demoResponseRate,
		ConversionRate: demoConversionRate,
	}
	err := r.db.QueryRow(ctx, query, userID).Scan(&stats.MessagesSent, &stats.ActiveContacts)
	if err != nil {
		r.logger.ErrorContext(ctx, "error aggregating dashboard stats", "error", err, "user_id", userID)
		return nil, err
	}
	return stats, nil
}
