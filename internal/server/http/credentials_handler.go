package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	dashrepo "github.com/Navaneethan2112/SiteRevamp/internal/dashboard/repository"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/app"
	msgdomain "github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
	"github.com/Navaneethan2112/SiteRevamp/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// CredentialsHandler serves the tenant Twilio credential setup flow:
// verify first, persist only what verified.
type CredentialsHandler struct {
	messenger *app.Messenger
	users     dashrepo.UserRepository
	logger    *slog.Logger
	validate  *validator.Validate
}

func NewCredentialsHandler(messenger *app.Messenger, users dashrepo.UserRepository, logger *slog.Logger, validate *validator.Validate) *CredentialsHandler {
	return &CredentialsHandler{
		messenger: messenger,
		users:     users,
		logger:    logger.With("handler", "credentials"),
		validate:  validate,
	}
}

func (h *CredentialsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/twilio/credentials", h.handleSetCredentials)
}

func (h *CredentialsHandler) handleSetCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	authUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		respondError(w, logger, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.validate.StructCtx(ctx, req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Account SID, auth token and phone number are all required")
		return
	}

	creds := msgdomain.TenantCredentials{
		AccountSID:  req.AccountSID,
		AuthToken:   req.AuthToken,
		PhoneNumber: req.PhoneNumber,
	}

	if !h.messenger.VerifyCredentials(ctx, creds) {
		logger.WarnContext(ctx, "credential verification rejected",
			"user_id", authUser.User.ID, "account_sid", req.AccountSID)
		respondError(w, logger, http.StatusBadRequest,
			"Could not verify Twilio credentials. Check the account SID, auth token and that the phone number belongs to your account.")
		return
	}

	user, err := h.users.UpdateTwilioCredentials(ctx, authUser.User.ID, req.AccountSID, req.AuthToken, req.PhoneNumber, true)
	if err != nil {
		respondError(w, logger, http.StatusInternalServerError, "Failed to save credentials")
		return
	}

	logger.InfoContext(ctx, "tenant credentials verified and saved", "user_id", user.ID)
	// The auth token field is never serialized; the response is already
	// redacted by the domain type.
	respondJSON(w, http.StatusOK, user)
}
