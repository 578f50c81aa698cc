package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/app"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/gateway"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/template"
	serverhttp "github.com/Navaneethan2112/SiteRevamp/internal/server/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCredentialsFixture(t *testing.T) *handlerFixture {
	t.Helper()
	logger := discardLogger()
	client := gateway.NewMockClient(logger)
	messenger := app.NewMessenger(template.NewRegistry(), gateway.NewMockClientFactory(client), &app.NopPacer{}, logger)
	users := new(MockUserRepository)

	router := chi.NewRouter()
	serverhttp.NewCredentialsHandler(messenger, users, logger, validator.New()).RegisterRoutes(router)
	return &handlerFixture{router: router, client: client, users: users}
}

func TestSetCredentialsVerifiesThenPersists(t *testing.T) {
	f := newCredentialsFixture(t)
	f.client.OwnedNumbers = []string{"+10000000000"}

	updated := verifiedUser()
	f.users.On("UpdateTwilioCredentials", mock.Anything, "u-1", "AC123", "token-456", "+10000000000", true).
		Return(updated, nil)

	body, _ := json.Marshal(serverhttp.CredentialsRequest{
		AccountSID:  "AC123",
		AuthToken:   "token-456",
		PhoneNumber: "+10000000000",
	})

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authenticatedRequest(http.MethodPost, "/twilio/credentials", body, verifiedUser()))

	require.Equal(t, http.StatusOK, rec.Code)
	// The auth token never appears in the serialized user.
	assert.NotContains(t, rec.Body.String(), "token-456")
	assert.Contains(t, rec.Body.String(), "AC123")
	f.users.AssertExpectations(t)
}

func TestSetCredentialsRejectsUnverifiable(t *testing.T) {
	f := newCredentialsFixture(t)
	f.client.FailAccount = true

	body, _ := json.Marshal(serverhttp.CredentialsRequest{
		AccountSID:  "AC123",
		AuthToken:   "wrong",
		PhoneNumber: "+10000000000",
	})

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authenticatedRequest(http.MethodPost, "/twilio/credentials", body, verifiedUser()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not verify")
	// Nothing persisted when verification fails.
	f.users.AssertNotCalled(t, "UpdateTwilioCredentials",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetCredentialsRejectsMissingFields(t *testing.T) {
	f := newCredentialsFixture(t)

	body, _ := json.Marshal(serverhttp.CredentialsRequest{AccountSID: "AC123"})

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authenticatedRequest(http.MethodPost, "/twilio/credentials", body, verifiedUser()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "all required")
}

func TestSetCredentialsRejectsNumberNotOnAccount(t *testing.T) {
	f := newCredentialsFixture(t)
	f.client.OwnedNumbers = []string{"+19999999999"}

	body, _ := json.Marshal(serverhttp.CredentialsRequest{
		AccountSID:  "AC123",
		AuthToken:   "token-456",
		PhoneNumber: "+10000000000",
	})

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, authenticatedRequest(http.MethodPost, "/twilio/credentials", body, verifiedUser()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
