package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dashrepo "github.com/Navaneethan2112/SiteRevamp/internal/dashboard/repository"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/app"
	msgdomain "github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/phone"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/template"
	"github.com/Navaneethan2112/SiteRevamp/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// MessageHandler serves the tenant-facing send endpoints.
type MessageHandler struct {
	messenger *app.Messenger
	users     dashrepo.UserRepository
	logger    *slog.Logger
	validate  *validator.Validate
}

func NewMessageHandler(messenger *app.Messenger, users dashrepo.UserRepository, logger *slog.Logger, validate *validator.Validate) *MessageHandler {
	return &MessageHandler{
		messenger: messenger,
		users:     users,
		logger:    logger.With("handler", "message"),
		validate:  validate,
	}
}

// RegisterRoutes registers message routes with the given router.
func (h *MessageHandler) RegisterRoutes(r chi.Router) {
	r.Post("/messages/send", h.handleSend)
	r.Post("/messages/bulk-send", h.handleBulkSend)
	r.Get("/messages/templates", h.handleListTemplates)
	r.Post("/messages/templates/preview", h.handlePreviewTemplate)
}

// tenantCredentials gates the multi-tenant send path: credentials must be on
// file and verified before any network call is attempted.
func (h *MessageHandler) tenantCredentials(user *middleware.AuthenticatedUser) (msgdomain.TenantCredentials, error) {
	u := user.User
	if !u.HasTwilioCredentials() {
		return msgdomain.TenantCredentials{}, msgdomain.ErrCredentialsNotConfigured
	}
	if !u.TwilioVerified {
		return msgdomain.TenantCredentials{}, msgdomain.ErrCredentialsUnverified
	}
	return msgdomain.TenantCredentials{
		AccountSID:  *u.TwilioAccountSID,
		AuthToken:   *u.TwilioAuthToken,
		PhoneNumber: *u.TwilioPhoneNumber,
		Verified:    u.TwilioVerified,
	}, nil
}

func (h *MessageHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	authUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		respondError(w, logger, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.validate.StructCtx(ctx, req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	creds, err := h.tenantCredentials(authUser)
	if err != nil {
		logger.WarnContext(ctx, "send rejected before dispatch", "user_id", authUser.User.ID, "error", err)
		respondError(w, logger, http.StatusBadRequest, credentialGateMessage(err))
		return
	}

	messageID, err := h.messenger.Send(ctx, req.To, req.TemplateName, req.Variables, creds)
	if err != nil {
		logger.WarnContext(ctx, "send failed", "user_id", authUser.User.ID, "to", req.To, "error", err)
		respondError(w, logger, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.users.IncrementMessagesUsed(ctx, authUser.User.ID, 1); err != nil {
		logger.ErrorContext(ctx, "failed to record message usage", "user_id", authUser.User.ID, "error", err)
	}

	formatted, _ := phone.Normalize(req.To)
	respondJSON(w, http.StatusOK, SendMessageResponse{
		Success:   true,
		MessageID: messageID,
		To:        formatted,
	})
}

func (h *MessageHandler) handleBulkSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	authUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		respondError(w, logger, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req BulkSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.validate.StructCtx(ctx, req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	creds, err := h.tenantCredentials(authUser)
	if err != nil {
		logger.WarnContext(ctx, "bulk send rejected before dispatch", "user_id", authUser.User.ID, "error", err)
		respondError(w, logger, http.StatusBadRequest, credentialGateMessage(err))
		return
	}

	result, err := h.messenger.SendBulk(ctx, req.PhoneNumbers, req.TemplateName, req.Variables, creds)
	if err != nil {
		if errors.Is(err, msgdomain.ErrInvalidArgument) {
			respondError(w, logger, http.StatusBadRequest, err.Error())
			return
		}
		// Context cancellation mid-batch: the client is gone, but log the
		// partial outcome for the operator.
		sent, failed := 0, 0
		if result != nil {
			sent, failed = result.TotalSent(), result.TotalFailed()
		}
		logger.WarnContext(ctx, "bulk send interrupted",
			"user_id", authUser.User.ID, "sent", sent, "failed", failed, "error", err)
		respondError(w, logger, http.StatusInternalServerError, "Bulk send interrupted: "+err.Error())
		return
	}

	if result.TotalSent() > 0 {
		if err := h.users.IncrementMessagesUsed(ctx, authUser.User.ID, result.TotalSent()); err != nil {
			logger.ErrorContext(ctx, "failed to record bulk usage", "user_id", authUser.User.ID, "error", err)
		}
	}

	respondJSON(w, http.StatusOK, BulkSendResponse{
		TotalSent:   result.TotalSent(),
		TotalFailed: result.TotalFailed(),
		Success:     result.Success,
		Failed:      result.Failed,
	})
}

func (h *MessageHandler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.messenger.Registry().All())
}

func (h *MessageHandler) handlePreviewTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	var req PreviewTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.validate.StructCtx(ctx, req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	tpl, err := h.messenger.Registry().Get(req.TemplateName)
	if err != nil {
		respondError(w, logger, http.StatusBadRequest, err.Error())
		return
	}

	rendered := template.Render(tpl, req.Variables)
	unfilled := rendered.Unfilled
	if unfilled == nil {
		unfilled = []string{}
	}
	respondJSON(w, http.StatusOK, PreviewTemplateResponse{
		Body:                 rendered.Body,
		UnfilledPlaceholders: unfilled,
	})
}

func credentialGateMessage(err error) string {
	switch {
	case errors.Is(err, msgdomain.ErrCredentialsNotConfigured):
		return "WhatsApp messaging is not configured for this account. Add your Twilio credentials first."
	case errors.Is(err, msgdomain.ErrCredentialsUnverified):
		return "Your Twilio credentials have not been verified. Verify them before sending."
	default:
		return err.Error()
	}
}
