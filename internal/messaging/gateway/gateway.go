// Package gateway holds the messaging-provider client: an SDK-level handle
// scoped to one set of Twilio credentials, used to issue send, account and
// number-lookup calls.
package gateway

import (
	"context"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
)

// SendRequest carries one outbound WhatsApp message through the provider API.
// From and To are bare E.164 numbers; the adapter applies the provider's
// whatsapp: address scheme.
type SendRequest struct {
	From     string
	To       string
	Body     string
	MediaURL string // optional
}

// SendResponse is the provider's acknowledgement of a send.
type SendResponse struct {
	MessageSID string
	Status     string
}

// Account is the provider-side account record, fetched to confirm that a
// tenant's credentials actually resolve to a live account.
type Account struct {
	SID          string
	FriendlyName string
	Status       string
}

// IncomingPhoneNumber is a number provisioned on the provider account.
type IncomingPhoneNumber struct {
	SID         string
	PhoneNumber string
}

// Client is a gateway handle scoped to a single set of credentials.
type Client interface {
	SendMessage(ctx context.Context, req SendRequest) (*SendResponse, error)
	FetchAccount(ctx context.Context) (*Account, error)
	// ListIncomingPhoneNumbers returns the numbers provisioned on the
	// account, filtered by phoneNumber when non-empty.
	ListIncomingPhoneNumbers(ctx context.Context, phoneNumber string) ([]IncomingPhoneNumber, error)
}

// ClientFactory constructs a fresh Client for one tenant's credentials.
// Tenant-initiated operations always go through a per-tenant client; there is
// no shared client on this path.
type ClientFactory interface {
	ForCredentials(creds domain.TenantCredentials) Client
}
