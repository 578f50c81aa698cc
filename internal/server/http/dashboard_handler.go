package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dashdomain "github.com/Navaneethan2112/SiteRevamp/internal/dashboard/domain"
	dashrepo "github.com/Navaneethan2112/SiteRevamp/internal/dashboard/repository"
	"github.com/Navaneethan2112/SiteRevamp/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// DashboardHandler serves the dashboard CRUD surface: contacts, users,
// campaigns, persisted templates and the stats block.
type DashboardHandler struct {
	users     dashrepo.UserRepository
	contacts  dashrepo.ContactRepository
	campaigns dashrepo.CampaignRepository
	templates dashrepo.TemplateRepository
	stats     dashrepo.StatsRepository
	logger    *slog.Logger
	validate  *validator.Validate
}

func NewDashboardHandler(
	users dashrepo.UserRepository,
	contacts dashrepo.ContactRepository,
	campaigns dashrepo.CampaignRepository,
	templates dashrepo.TemplateRepository,
	stats dashrepo.StatsRepository,
	logger *slog.Logger,
	validate *validator.Validate,
) *DashboardHandler {
	return &DashboardHandler{
		users:     users,
		contacts:  contacts,
		campaigns: campaigns,
		templates: templates,
		stats:     stats,
		logger:    logger.With("handler", "dashboard"),
		validate:  validate,
	}
}

// RegisterPublicRoutes registers the routes that take no tenant auth:
// contact-form submission and account bootstrap.
func (h *DashboardHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/contacts", h.handleCreateContact)
	r.Post("/users", h.handleCreateUser)
	r.Get("/users/{auth0ID}", h.handleGetUserByAuth0ID)
}

// RegisterProtectedRoutes registers the authenticated dashboard routes.
func (h *DashboardHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/contacts", h.handleListContacts)
	r.Get("/campaigns", h.handleListCampaigns)
	r.Post("/campaigns", h.handleCreateCampaign)
	r.Get("/templates", h.handleListTemplates)
	r.Post("/templates", h.handleCreateTemplate)
	r.Get("/dashboard/stats", h.handleDashboardStats)
}

func (h *DashboardHandler) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	var req CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.validate.StructCtx(ctx, req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	contact, err := h.contacts.Create(ctx, &dashdomain.Contact{
		UserID:  req.UserID,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		respondError(w, logger, http.StatusInternalServerError, "Failed to save contact")
		return
	}
	respondJSON(w, http.StatusOK, contact)
}

func (h *DashboardHandler) handleListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	contacts, err := h.contacts.List(ctx)
	if err != nil {
		respondError(w, logger, http.StatusInternalServerError, "Failed to list contacts")
		return
	}
	if contacts == nil {
		contacts = []*dashdomain.Contact{}
	}
	respondJSON(w, http.StatusOK, contacts)
}

func (h *DashboardHandler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.validate.StructCtx(ctx, req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	user, err := h.users.Create(ctx, &dashdomain.User{
		Auth0ID: req.Auth0ID,
		Email:   req.Email,
		Name:    req.Name,
		Avatar:  req.Avatar,
		Plan:    req.Plan,
	})
	if err != nil {
		if errors.Is(err, dashdomain.ErrDuplicateEntry) {
			respondError(w, logger, http.StatusBadRequest, "User already exists")
			return
		}
		respondError(w, logger, http.StatusInternalServerError, "Failed to create user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *DashboardHandler) handleGetUserByAuth0ID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	user, err := h.users.GetByAuth0ID(ctx, chi.URLParam(r, "auth0ID"))
	if err != nil {
		if errors.Is(err, dashdomain.ErrNotFound) {
			respondError(w, logger, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, logger, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *DashboardHandler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	authUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		respondError(w, logger, http.StatusUnauthorized, "User not authenticated")
		return
	}

	campaigns, err := h.campaigns.ListByUserID(ctx, authUser.User.ID)
	if err != nil {
		respondError(w, logger, http.StatusInternalServerError, "Failed to list campaigns")
		return
	}
	if campaigns == nil {
		campaigns = []*dashdomain.Campaign{}
	}
	respondJSON(w, http.StatusOK, campaigns)
}

func (h *DashboardHandler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	authUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		respondError(w, logger, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.validate.StructCtx(ctx, req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	campaign, err := h.campaigns.Create(ctx, &dashdomain.Campaign{
		UserID: authUser.User.ID,
		Name:   req.Name,
	})
	if err != nil {
		respondError(w, logger, http.StatusInternalServerError, "Failed to create campaign")
		return
	}
	respondJSON(w, http.StatusOK, campaign)
}

func (h *DashboardHandler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	authUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		respondError(w, logger, http.StatusUnauthorized, "User not authenticated")
		return
	}

	templates, err := h.templates.ListByUserID(ctx, authUser.User.ID)
	if err != nil {
		respondError(w, logger, http.StatusInternalServerError, "Failed to list templates")
		return
	}
	if templates == nil {
		templates = []*dashdomain.DashboardTemplate{}
	}
	respondJSON(w, http.StatusOK, templates)
}

func (h *DashboardHandler) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	authUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		respondError(w, logger, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.validate.StructCtx(ctx, req); err != nil {
		respondError(w, logger, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	tpl, err := h.templates.Create(ctx, &dashdomain.DashboardTemplate{
		UserID:  authUser.User.ID,
		Name:    req.Name,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, logger, http.StatusInternalServerError, "Failed to create template")
		return
	}
	respondJSON(w, http.StatusOK, tpl)
}

func (h *DashboardHandler) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	authUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		respondError(w, logger, http.StatusUnauthorized, "User not authenticated")
		return
	}

	stats, err := h.stats.GetDashboardStats(ctx, authUser.User.ID)
	if err != nil {
		respondError(w, logger, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
