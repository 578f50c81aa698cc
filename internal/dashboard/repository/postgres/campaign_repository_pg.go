package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/domain"
	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/repository"
	"github.com/google/uuid"
)

type PgCampaignRepository struct {
	db     repository.DB
	logger *slog.Logger
}

func NewPgCampaignRepository(db repository.DB, logger *slog.Logger) *PgCampaignRepository {
	return &PgCampaignRepository{db: db, logger: logger.With("repository", "campaigns")}
}

func (r *PgCampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if campaign.ID == "" {
		campaign.ID = uuid.NewString()
	}
	if campaign.Status == "" {
		campaign.Status = "draft"
	}
	if campaign.ResponseRate == "" {
		campaign.ResponseRate = "0%"
	}
	campaign.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO campaigns (id, user_id, name, status, messages_sent, response_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		campaign.ID, campaign.UserID, campaign.Name, campaign.Status,
		campaign.MessagesSent, campaign.ResponseRate, campaign.CreatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "error creating campaign", "error", err, "campaign_id", campaign.ID)
		return nil, err
	}
	r.logger.InfoContext(ctx, "campaign created", "campaign_id", campaign.ID, "user_id", campaign.UserID)
	return campaign, nil
}

func (r *PgCampaignRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Campaign, error) {
	query := `
		SELECT id, user_id, name, status, messages_sent, response_rate, created_at
		FROM campaigns
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.ErrorContext(ctx, "error listing campaigns", "error", err, "user_id", userID)
		return nil, err
	}
	defer rows.Close()

	var campaigns []*domain.Campaign
	for rows.Next() {
		c := &domain.Campaign{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Status, &c.MessagesSent, &c.ResponseRate, &c.CreatedAt); err != nil {
			r.logger.ErrorContext(ctx, "error scanning campaign row", "error", err, "user_id", userID)
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}
