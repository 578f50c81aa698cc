package http

import (
	"log/slog"
	"net/http"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/app"
	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
)

// WebhookHandler receives inbound provider callbacks. These routes are not
// behind tenant auth; Twilio posts to them directly.
type WebhookHandler struct {
	messenger *app.Messenger
	logger    *slog.Logger
}

func NewWebhookHandler(messenger *app.Messenger, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		messenger: messenger,
		logger:    logger.With("handler", "webhook"),
	}
}

func (h *WebhookHandler) RegisterRoutes(r chi.Router) {
	r.Post("/webhooks/whatsapp", h.handleInboundWhatsApp)
}

// handleInboundWhatsApp normalizes the form-encoded provider payload. The
// normalized record is logged; persistence and business reaction are out of
// scope for the webhook boundary.
func (h *WebhookHandler) handleInboundWhatsApp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	if err := r.ParseForm(); err != nil {
		logger.WarnContext(ctx, "failed to parse webhook form", "error", err)
		respondJSON(w, http.StatusBadRequest, WebhookResponse{Success: false, Message: "invalid form payload"})
		return
	}

	msg, err := h.messenger.ParseInboundMessage(r.PostForm)
	if err != nil {
		logger.WarnContext(ctx, "rejected inbound webhook", "error", err)
		respondJSON(w, http.StatusBadRequest, WebhookResponse{Success: false, Message: err.Error()})
		return
	}

	logger.InfoContext(ctx, "inbound WhatsApp message received",
		"from", msg.From, "to", msg.To, "message_id", msg.MessageID, "has_media", msg.MediaURL != nil)

	respondJSON(w, http.StatusOK, WebhookResponse{Success: true})
}
