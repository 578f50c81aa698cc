package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/domain"
	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/repository"
	"github.com/google/uuid"
)

type PgContactRepository struct {
	db     repository.DB
	logger *slog.Logger
}

func NewPgContactRepository(db repository.DB, logger *slog.Logger) *PgContactRepository {
	return &PgContactRepository{db: db, logger: logger.With("repository", "contacts")}
}

func (r *PgContactRepository) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	if contact.UserID == "" {
		contact.UserID = "anonymous"
	}
	contact.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO contacts (id, user_id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		contact.ID, contact.UserID, contact.Name, contact.Email, contact.Message, contact.CreatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "error creating contact", "error", err, "contact_id", contact.ID)
		return nil, err
	}
	r.logger.InfoContext(ctx, "contact created", "contact_id", contact.ID)
	return contact, nil
}

func (r *PgContactRepository) List(ctx context.Context) ([]*domain.Contact, error) {
	query := `
		SELECT id, user_id, name, email, message, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "error listing contacts", "error", err)
		return nil, err
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		ct := &domain.Contact{}
		if err := rows.Scan(&ct.ID, &ct.UserID, &ct.Name, &ct.Email, &ct.Message, &ct.CreatedAt); err != nil {
			r.logger.ErrorContext(ctx, "error scanning contact row", "error", err)
			return nil, err
		}
		contacts = append(contacts, ct)
	}
	return contacts, rows.Err()
}
