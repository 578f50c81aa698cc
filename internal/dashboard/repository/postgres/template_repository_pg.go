package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/domain"
	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/repository"
	"github.com/google/uuid"
)

type PgTemplateRepository struct {
	db     repository.DB
	logger *slog.Logger
}

func NewPgTemplateRepository(db repository.DB, logger *slog.Logger) *PgTemplateRepository {
	return &PgTemplateRepository{db: db, logger: logger.With("repository", "templates")}
}

func (r *PgTemplateRepository) Create(ctx context.Context, tpl *domain.DashboardTemplate) (*domain.DashboardTemplate, error) {
	if tpl.ID == "" {
		tpl.ID = uuid.NewString()
	}
	if tpl.Status == "" {
		tpl.Status = "pending"
	}
	tpl.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO templates (id, user_id, name, content, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, tpl.ID, tpl.UserID, tpl.Name, tpl.Content, tpl.Status, tpl.CreatedAt)
	if err != nil {
		r.logger.ErrorContext(ctx, "error creating template", "error", err, "template_id", tpl.ID)
		return nil, err
	}
	r.logger.InfoContext(ctx, "template created", "template_id", tpl.ID, "user_id", tpl.UserID)
	return tpl, nil
}

func (r *PgTemplateRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.DashboardTemplate, error) {
	query := `
		SELECT id, user_id, name, content, status, created_at
		FROM templates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.ErrorContext(ctx, "error listing templates", "error", err, "user_id", userID)
		return nil, err
	}
	defer rows.Close()

	var templates []*domain.DashboardTemplate
	for rows.Next() {
		t := &domain.DashboardTemplate{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Content, &t.Status, &t.CreatedAt); err != nil {
			r.logger.ErrorContext(ctx, "error scanning template row", "error", err, "user_id", userID)
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}
