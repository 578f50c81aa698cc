package repository

import (
	"context"

	"github.com/Navaneethan2112/SiteRevamp/internal/dashboard/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories use. pgxmock satisfies
// it too, so repository tests run without a database.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository persists tenant accounts and their messaging credentials.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByAuth0ID(ctx context.Context, auth0ID string) (*domain.User, error)
	// UpdateTwilioCredentials writes the credential triple together with the
	// verified flag in one statement, so a send can never observe verified
	// credentials that do not match the stored triple.
	UpdateTwilioCredentials(ctx context.Context, id, accountSID, authToken, phoneNumber string, verified bool) (*domain.User, error)
	// IncrementMessagesUsed adds n to the user's usage counter.
	IncrementMessagesUsed(ctx context.Context, id string, n int) error
}

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
}

// CampaignRepository persists dashboard campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.Campaign, error)
}

// TemplateRepository persists the per-user dashboard template records.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.DashboardTemplate) (*domain.DashboardTemplate, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.DashboardTemplate, error)
}

// StatsRepository aggregates the dashboard headline numbers.
type StatsRepository interface {
	GetDashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error)
}
