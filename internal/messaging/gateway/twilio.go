package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
)

const whatsappScheme = "whatsapp:"

// TwilioClientFactory builds TwilioClients against a fixed API base URL.
// The base URL is configurable so tests can target a local server.
type TwilioClientFactory struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
}

func NewTwilioClientFactory(logger *slog.Logger, baseURL string, httpClient *http.Client) *TwilioClientFactory {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if baseURL == "" {
		baseURL = "https://api.twilio.com"
	}
	return &TwilioClientFactory{
		logger:     logger.With("gateway", "twilio"),
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// ForCredentials returns a fresh client scoped to one tenant's credentials.
func (f *TwilioClientFactory) ForCredentials(creds domain.TenantCredentials) Client {
	return &TwilioClient{
		logger:     f.logger,
		httpClient: f.httpClient,
		baseURL:    f.baseURL,
		accountSID: creds.AccountSID,
		authToken:  creds.AuthToken,
	}
}

// TwilioClient talks to the Twilio REST API (form-encoded requests, basic
// auth) for one account.
type TwilioClient struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	accountSID string
	authToken  string
}

type twilioMessageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type twilioAccountResponse struct {
	SID          string `json:"sid"`
	FriendlyName string `json:"friendly_name"`
	Status       string `json:"status"`
}

type twilioIncomingPhoneNumber struct {
	SID         string `json:"sid"`
	PhoneNumber string `json:"phone_number"`
}

type twilioIncomingPhoneNumberList struct {
	IncomingPhoneNumbers []twilioIncomingPhoneNumber `json:"incoming_phone_numbers"`
}

type twilioErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// SendMessage issues a POST to the account's Messages resource with the
// whatsapp: address scheme applied to both endpoints.
func (c *TwilioClient) SendMessage(ctx context.Context, req SendRequest) (*SendResponse, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, url.PathEscape(c.accountSID))

	form := url.Values{}
	form.Set("From", whatsappScheme+req.From)
	form.Set("To", whatsappScheme+req.To)
	form.Set("Body", req.Body)
	if req.MediaURL != "" {
		form.Set("MediaUrl", req.MediaURL)
	}

	var msg twilioMessageResponse
	if err := c.do(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()), &msg); err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "Twilio message accepted", "message_sid", msg.SID, "status", msg.Status)
	return &SendResponse{MessageSID: msg.SID, Status: msg.Status}, nil
}

// FetchAccount confirms the credentials resolve to a live account.
func (c *TwilioClient) FetchAccount(ctx context.Context) (*Account, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s.json", c.baseURL, url.PathEscape(c.accountSID))

	var acct twilioAccountResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &acct); err != nil {
		return nil, err
	}
	return &Account{SID: acct.SID, FriendlyName: acct.FriendlyName, Status: acct.Status}, nil
}

// ListIncomingPhoneNumbers returns numbers provisioned on the account. The
// filter is passed without scheme prefix or plus sign, matching the lookup
// format Twilio expects.
func (c *TwilioClient) ListIncomingPhoneNumbers(ctx context.Context, phoneNumber string) ([]IncomingPhoneNumber, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/IncomingPhoneNumbers.json", c.baseURL, url.PathEscape(c.accountSID))
	if phoneNumber != "" {
		filter := strings.TrimPrefix(phoneNumber, whatsappScheme)
		filter = strings.TrimPrefix(filter, "+")
		endpoint += "?PhoneNumber=" + url.QueryEscape(filter)
	}

	var list twilioIncomingPhoneNumberList
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &list); err != nil {
		return nil, err
	}

	numbers := make([]IncomingPhoneNumber, 0, len(list.IncomingPhoneNumbers))
	for _, n := range list.IncomingPhoneNumbers {
		numbers = append(numbers, IncomingPhoneNumber{SID: n.SID, PhoneNumber: n.PhoneNumber})
	}
	return numbers, nil
}

func (c *TwilioClient) do(ctx context.Context, method, endpoint string, body io.Reader, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create Twilio request: %w", err)
	}
	httpReq.SetBasicAuth(c.accountSID, c.authToken)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to reach Twilio API: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Twilio response (status %d): %w", httpResp.StatusCode, err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		var twErr twilioErrorResponse
		if jsonErr := json.Unmarshal(respBody, &twErr); jsonErr == nil && twErr.Message != "" {
			return fmt.Errorf("Twilio API error %d: %s", twErr.Code, twErr.Message)
		}
		return fmt.Errorf("Twilio API request failed with status %d", httpResp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode Twilio response: %w", err)
		}
	}
	return nil
}
