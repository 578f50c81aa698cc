package gateway

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
	"github.com/google/uuid"
)

// MockClient is a test implementation of Client. It records every send so
// tests can assert on outbound traffic (including that none happened).
type MockClient struct {
	logger *slog.Logger

	FailSend       bool     // simulate provider rejecting sends
	FailAccount    bool     // simulate invalid credentials
	OwnedNumbers   []string // numbers the fake account has provisioned
	SimulatedDelay time.Duration

	mu   sync.Mutex
	sent []SendRequest
}

// NewMockClient creates a MockClient that succeeds by default.
func NewMockClient(logger *slog.Logger) *MockClient {
	return &MockClient{logger: logger.With("gateway", "mock")}
}

func (m *MockClient) SendMessage(ctx context.Context, req SendRequest) (*SendResponse, error) {
	if m.SimulatedDelay > 0 {
		time.Sleep(m.SimulatedDelay)
	}

	m.mu.Lock()
	m.sent = append(m.sent, req)
	m.mu.Unlock()

	if m.FailSend {
		m.logger.WarnContext(ctx, "mock gateway simulated send failure", "to", req.To)
		return nil, errors.New("mock gateway simulated send failure")
	}

	sid := "SM" + uuid.NewString()
	m.logger.InfoContext(ctx, "mock gateway message sent (simulated)", "to", req.To, "message_sid", sid)
	return &SendResponse{MessageSID: sid, Status: "queued"}, nil
}

func (m *MockClient) FetchAccount(ctx context.Context) (*Account, error) {
	if m.FailAccount {
		return nil, errors.New("mock gateway: authentication failed")
	}
	return &Account{SID: "ACmock", FriendlyName: "Mock Account", Status: "active"}, nil
}

func (m *MockClient) ListIncomingPhoneNumbers(_ context.Context, phoneNumber string) ([]IncomingPhoneNumber, error) {
	if m.FailAccount {
		return nil, errors.New("mock gateway: authentication failed")
	}
	var out []IncomingPhoneNumber
	for _, n := range m.OwnedNumbers {
		if phoneNumber == "" || normalizeLookup(n) == normalizeLookup(phoneNumber) {
			out = append(out, IncomingPhoneNumber{SID: "PN" + uuid.NewString(), PhoneNumber: n})
		}
	}
	return out, nil
}

// Sent returns a copy of all messages passed to SendMessage.
func (m *MockClient) Sent() []SendRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SendRequest, len(m.sent))
	copy(out, m.sent)
	return out
}

func normalizeLookup(n string) string {
	n = strings.TrimPrefix(n, whatsappScheme)
	return strings.TrimPrefix(n, "+")
}

// MockClientFactory hands out the same MockClient regardless of credentials,
// recording the credentials each construction was asked for.
type MockClientFactory struct {
	Client *MockClient

	mu    sync.Mutex
	creds []domain.TenantCredentials
}

func NewMockClientFactory(client *MockClient) *MockClientFactory {
	return &MockClientFactory{Client: client}
}

func (f *MockClientFactory) ForCredentials(creds domain.TenantCredentials) Client {
	f.mu.Lock()
	f.creds = append(f.creds, creds)
	f.mu.Unlock()
	return f.Client
}

// SeenCredentials returns the credentials passed to ForCredentials, in order.
func (f *MockClientFactory) SeenCredentials() []domain.TenantCredentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.TenantCredentials, len(f.creds))
	copy(out, f.creds)
	return out
}
