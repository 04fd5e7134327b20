package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/felixgeelhaar/launchkit/internal/waitlists/application/commands"
	"github.com/felixgeelhaar/launchkit/internal/waitlists/application/queries"
	"github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
)

// WaitlistHandler handles the public waitlist signup API.
type WaitlistHandler struct {
	addSubscriber *commands.AddSubscriberHandler
	getWaitlist   *queries.GetWaitlistHandler
	getStats      *queries.WaitlistStatsHandler
	logger        *slog.Logger
}

// NewWaitlistHandler creates a new waitlist handler.
func NewWaitlistHandler(
	addSubscriber *commands.AddSubscriberHandler,
	getWaitlist *queries.GetWaitlistHandler,
	getStats *queries.WaitlistStatsHandler,
	logger *slog.Logger,
) *WaitlistHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WaitlistHandler{
		addSubscriber: addSubscriber,
		getWaitlist:   getWaitlist,
		getStats:      getStats,
		logger:        logger,
	}
}

type signupRequest struct {
	Email      string `json:"email"`
	ReferredBy string `json:"referredBy,omitempty"`
}

type signupResponse struct {
	Position       int    `json:"position"`
	ReferralCode   string `json:"referralCode"`
	SuccessMessage string `json:"successMessage,omitempty"`
}

// AddSubscriber handles POST /w/{slug}/subscribers
func (h *WaitlistHandler) AddSubscriber(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.addSubscriber.Handle(r.Context(), commands.AddSubscriberCommand{
		WaitlistIDOrSlug: slug,
		Email:            req.Email,
		ReferredBy:       req.ReferredBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWaitlistNotFound):
			writeError(w, http.StatusNotFound, "waitlist not found")
		case errors.Is(err, domain.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "invalid email address")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			writeError(w, http.StatusConflict, "email already registered")
		default:
			h.logger.Error("signup failed", "slug", slug, "error", err)
			writeError(w, http.StatusInternalServerError, "signup failed")
		}
		return
	}

	resp := signupResponse{
		Position:     result.Position,
		ReferralCode: result.ReferralCode,
	}
	if wl, err := h.getWaitlist.Handle(r.Context(), queries.GetWaitlistQuery{IDOrSlug: slug}); err == nil && wl != nil {
		resp.SuccessMessage = wl.Settings.SuccessMessage
	}

	writeJSON(w, http.StatusCreated, resp)
}

// GetStats handles GET /w/{slug}/stats
func (h *WaitlistHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	stats, err := h.getStats.Handle(r.Context(), queries.WaitlistStatsQuery{IDOrSlug: slug})
	if err != nil {
		h.logger.Error("stats query failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "stats query failed")
		return
	}
	if stats == nil {
		writeError(w, http.StatusNotFound, "waitlist not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"name":             stats.Name,
		"slug":             stats.Slug,
		"totalSubscribers": stats.TotalSubscribers,
		"referredSignups":  stats.ReferredSignups,
		"signupsToday":     stats.SignupsToday,
		"referralRate":     stats.ReferralRate,
	})
}
