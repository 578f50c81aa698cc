package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/domain"
	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, auth0_id, email, name, avatar, plan,
	twilio_account_sid, twilio_auth_token, twilio_phone_number,
	is_active, twilio_verified, messages_used, messages_limit,
	created_at, updated_at`

type PgUserRepository struct {
	db     repository.DB
	logger *slog.Logger
}

func NewPgUserRepository(db repository.DB, logger *slog.Logger) *PgUserRepository {
	return &PgUserRepository{db: db, logger: logger.With("repository", "users")}
}

func (r *PgUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Plan == "" {
		user.Plan = "starter"
	}
	if user.MessagesLimit == 0 {
		user.MessagesLimit = 1000
	}
	now := time.Now().UTC()
	user.IsActive = true
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, auth0_id, email, name, avatar, plan,
			twilio_account_sid, twilio_auth_token, twilio_phone_number,
			is_active, twilio_verified, messages_used, messages_limit,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Auth0ID, user.Email, user.Name, user.Avatar, user.Plan,
		user.TwilioAccountSID, user.TwilioAuthToken, user.TwilioPhoneNumber,
		user.IsActive, user.TwilioVerified, user.MessagesUsed, user.MessagesLimit,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.WarnContext(ctx, "duplicate user", "auth0_id", user.Auth0ID, "email", user.Email)
			return nil, domain.ErrDuplicateEntry
		}
		r.logger.ErrorContext(ctx, "error creating user", "error", err, "user_id", user.ID)
		return nil, err
	}
	r.logger.InfoContext(ctx, "user created", "user_id", user.ID)
	return user, nil
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

func (r *PgUserRepository) GetByAuth0ID(ctx context.Context, auth0ID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth0_id = $1`
	return r.scanOne(ctx, query, auth0ID)
}

// UpdateTwilioCredentials writes the credential triple and the verified flag
// in a single statement and returns the updated record.
func (r *PgUserRepository) UpdateTwilioCredentials(ctx context.Context, id, accountSID, authToken, phoneNumber string, verified bool) (*domain.User, error) {
	query := `
		UPDATE users
		SET twilio_account_sid = $2, twilio_auth_token = $3, twilio_phone_number = $4,
			twilio_verified = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + userColumns
	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, id, accountSID, authToken, phoneNumber, verified, time.Now().UTC()).Scan(
		&user.ID, &user.Auth0ID, &user.Email, &user.Name, &user.Avatar, &user.Plan,
		&user.TwilioAccountSID, &user.TwilioAuthToken, &user.TwilioPhoneNumber,
		&user.IsActive, &user.TwilioVerified, &user.MessagesUsed, &user.MessagesLimit,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "error updating twilio credentials", "error", err, "user_id", id)
		return nil, err
	}
	r.logger.InfoContext(ctx, "twilio credentials updated", "user_id", id, "verified", verified)
	return user, nil
}

func (r *PgUserRepository) IncrementMessagesUsed(ctx context.Context, id string, n int) error {
	query := `UPDATE users SET messages_used = messages_used + $2, updated_at = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, n, time.Now().UTC())
	if err != nil {
		r.logger.ErrorContext(ctx, "error incrementing messages used", "error", err, "user_id", id)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgUserRepository) scanOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Auth0ID, &user.Email, &user.Name, &user.Avatar, &user.Plan,
		&user.TwilioAccountSID, &user.TwilioAuthToken, &user.TwilioPhoneNumber,
		&user.IsActive, &user.TwilioVerified, &user.MessagesUsed, &user.MessagesLimit,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "error fetching user", "error", err)
		return nil, err
	}
	return user, nil
}
