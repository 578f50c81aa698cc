package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/gateway"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCredentials() domain.TenantCredentials {
	return domain.TenantCredentials{
		AccountSID:  "AC1",
		AuthToken:   "secret",
		PhoneNumber: "+10000000000",
		Verified:    true,
	}
}

func newTestMessenger(t *testing.T) (*Messenger, *gateway.MockClient, *NopPacer) {
	t.Helper()
	logger := testLogger()
	client := gateway.NewMockClient(logger)
	pacer := &NopPacer{}
	m := NewMessenger(template.NewRegistry(), gateway.NewMockClientFactory(client), pacer, logger)
	return m, client, pacer
}

func TestSendDeliversRenderedTemplate(t *testing.T) {
	m, client, _ := newTestMessenger(t)

	messageID, err := m.Send(context.Background(), "+1 (555) 123-4567", "welcome_series",
		[]string{"https://app.aaraconnect.com"}, testCredentials())
	require.NoError(t, err)
	assert.NotEmpty(t, messageID)

	sent := client.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "+10000000000", sent[0].From)
	assert.Equal(t, "+15551234567", sent[0].To)
	assert.Contains(t, sent[0].Body, "https://app.aaraconnect.com")
	assert.NotContains(t, sent[0].Body, "{{1}}")
}

func TestSendRejectsInvalidDestinationBeforeNetwork(t *testing.T) {
	m, client, _ := newTestMessenger(t)

	_, err := m.Send(context.Background(), "12345", "welcome_series", nil, testCredentials())
	require.Error(t, err)

	var invalidErr *domain.InvalidPhoneNumberError
	assert.True(t, errors.As(err, &invalidErr))
	assert.Empty(t, client.Sent(), "no outbound call expected for an invalid number")
}

func TestSendUnknownTemplateListsRegisteredNames(t *testing.T) {
	m, client, _ := newTestMessenger(t)

	_, err := m.Send(context.Background(), "+15551234567", "nonexistent_template", nil, testCredentials())
	require.Error(t, err)

	var notFound *domain.TemplateNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "nonexistent_template", notFound.Name)
	assert.Contains(t, notFound.Available, "welcome_series")
	assert.Empty(t, client.Sent())
}

func TestSendWrapsProviderFailureWithDestination(t *testing.T) {
	m, client, _ := newTestMessenger(t)
	client.FailSend = true

	_, err := m.Send(context.Background(), "+15551234567", "welcome_series", nil, testCredentials())
	require.Error(t, err)

	var sendErr *domain.ProviderSendFailureError
	require.True(t, errors.As(err, &sendErr))
	assert.Equal(t, "+15551234567", sendErr.To)
	assert.Contains(t, err.Error(), "+15551234567")
	assert.Contains(t, err.Error(), "simulated send failure")
}

func TestSendProceedsWithPartiallyFilledTemplate(t *testing.T) {
	m, client, _ := newTestMessenger(t)

	// Permissive render contract: leftover placeholders stay literal and the
	// send still goes out.
	_, err := m.Send(context.Background(), "+15551234567", "feature_announcement",
		[]string{"Scheduled Campaigns"}, testCredentials())
	require.NoError(t, err)

	sent := client.Sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Body, "Scheduled Campaigns")
	assert.Contains(t, sent[0].Body, "{{2}}")
}

func TestSendBulkRejectsEmptyList(t *testing.T) {
	m, _, _ := newTestMessenger(t)

	_, err := m.SendBulk(context.Background(), nil, "welcome_series", nil, testCredentials())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestSendBulkReportsEveryDestinationOnce(t *testing.T) {
	m, client, pacer := newTestMessenger(t)

	input := []string{"+15551230001", "bogus", "+15551230002", "99", "+15551230003"}
	result, err := m.SendBulk(context.Background(), input, "welcome_series",
		[]string{"https://app.aaraconnect.com"}, testCredentials())
	require.NoError(t, err)

	assert.Len(t, result.Success, 3)
	assert.Len(t, result.Failed, 2)
	assert.Equal(t, len(input), result.TotalSent()+result.TotalFailed())

	// Input order preserved within each list.
	assert.Equal(t, []string{"+15551230001", "+15551230002", "+15551230003"}, result.Success)
	assert.Equal(t, "bogus", result.Failed[0].Phone)
	assert.Equal(t, "99", result.Failed[1].Phone)

	// Invalid numbers never reach the gateway.
	assert.Len(t, client.Sent(), 3)

	// Paced between consecutive attempts, not after the last.
	assert.Equal(t, len(input)-1, pacer.Waits)
}

func TestSendBulkContinuesPastProviderFailures(t *testing.T) {
	m, client, _ := newTestMessenger(t)
	client.FailSend = true

	input := []string{"+15551230001", "+15551230002"}
	result, err := m.SendBulk(context.Background(), input, "welcome_series", nil, testCredentials())
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalSent())
	assert.Equal(t, 2, result.TotalFailed())
	for i, failure := range result.Failed {
		assert.Equal(t, input[i], failure.Phone)
		assert.Contains(t, failure.Error, "simulated send failure")
	}
	// Every recipient was still attempted.
	assert.Len(t, client.Sent(), 2)
}

func TestSendBulkStopsBetweenIterationsOnCancel(t *testing.T) {
	m, _, _ := newTestMessenger(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := m.SendBulk(ctx, []string{"+15551230001", "+15551230002"}, "welcome_series", nil, testCredentials())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, result)
	// The first destination is processed before the pacer observes the
	// cancelled context.
	assert.Equal(t, 1, result.TotalSent()+result.TotalFailed())
}

func TestVerifyCredentials(t *testing.T) {
	t.Run("account and number both valid", func(t *testing.T) {
		m, client, _ := newTestMessenger(t)
		client.OwnedNumbers = []string{"+10000000000"}

		assert.True(t, m.VerifyCredentials(context.Background(), testCredentials()))
	})

	t.Run("authentication failure returns false", func(t *testing.T) {
		m, client, _ := newTestMessenger(t)
		client.FailAccount = true
		client.OwnedNumbers = []string{"+10000000000"}

		assert.False(t, m.VerifyCredentials(context.Background(), testCredentials()))
	})

	t.Run("number not provisioned on account returns false", func(t *testing.T) {
		m, client, _ := newTestMessenger(t)
		client.OwnedNumbers = []string{"+19999999999"}

		assert.False(t, m.VerifyCredentials(context.Background(), testCredentials()))
	})

	t.Run("account with no numbers returns false", func(t *testing.T) {
		m, _, _ := newTestMessenger(t)

		assert.False(t, m.VerifyCredentials(context.Background(), testCredentials()))
	})
}
