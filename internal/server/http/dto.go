package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
)

// SendMessageRequest DTO for POST /api/messages/send.
type SendMessageRequest struct {
	To           string   `json:"to" validate:"required"`
	TemplateName string   `json:"templateName" validate:"required"`
	Variables    []string `json:"variables"`
}

// SendMessageResponse DTO.
type SendMessageResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	To        string `json:"to"`
}

// BulkSendRequest DTO for POST /api/messages/bulk-send.
type BulkSendRequest struct {
	PhoneNumbers []string `json:"phoneNumbers" validate:"required,min=1"`
	TemplateName string   `json:"templateName" validate:"required"`
	Variables    []string `json:"variables"`
}

// BulkSendResponse DTO. Bulk sends respond 200 even with per-recipient
// failures; partial failure is not an operation failure.
type BulkSendResponse struct {
	TotalSent   int                  `json:"totalSent"`
	TotalFailed int                  `json:"totalFailed"`
	Success     []string             `json:"success"`
	Failed      []domain.BulkFailure `json:"failed"`
}

// PreviewTemplateRequest DTO for POST /api/messages/templates/preview.
type PreviewTemplateRequest struct {
	TemplateName string   `json:"templateName" validate:"required"`
	Variables    []string `json:"variables"`
}

// PreviewTemplateResponse DTO.
type PreviewTemplateResponse struct {
	Body                 string   `json:"body"`
	UnfilledPlaceholders []string `json:"unfilledPlaceholders"`
}

// CredentialsRequest DTO for POST /api/twilio/credentials.
type CredentialsRequest struct {
	AccountSID  string `json:"accountSid" validate:"required"`
	AuthToken   string `json:"authToken" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// WebhookResponse DTO for inbound webhook acknowledgements.
type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CreateContactRequest DTO for POST /api/contacts. Anonymous submissions
// leave UserID empty.
type CreateContactRequest struct {
	UserID  string `json:"userId"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// CreateUserRequest DTO for POST /api/users.
type CreateUserRequest struct {
	Auth0ID string  `json:"auth0Id" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Name    string  `json:"name" validate:"required"`
	Avatar  *string `json:"avatar"`
	Plan    string  `json:"plan"`
}

// CreateCampaignRequest DTO for POST /api/campaigns.
type CreateCampaignRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateTemplateRequest DTO for POST /api/templates (persisted dashboard
// templates, not the send registry).
type CreateTemplateRequest struct {
	Name    string `json:"name" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "message", message)
	}
	respondJSON(w, status, ErrorResponse{Message: message})
}
