package api

import (
	"log/slog"
	"net/http"

	"github.com/felixgeelhaar/launchkit/internal/subscriptions/application/queries"
)

// SubscriptionHandler handles read-only subscription API requests.
type SubscriptionHandler struct {
	listSubscriptions *queries.ListSubscriptionsHandler
	spendingSummary   *queries.SpendingSummaryHandler
	logger            *slog.Logger
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(
	listSubscriptions *queries.ListSubscriptionsHandler,
	spendingSummary *queries.SpendingSummaryHandler,
	logger *slog.Logger,
) *SubscriptionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubscriptionHandler{
		listSubscriptions: listSubscriptions,
		spendingSummary:   spendingSummary,
		logger:            logger,
	}
}

// ListSubscriptions handles GET /api/v1/subscriptions
func (h *SubscriptionHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	query := queries.ListSubscriptionsQuery{
		Category: r.URL.Query().Get("category"),
	}

	subs, err := h.listSubscriptions.Handle(r.Context(), query)
	if err != nil {
		h.logger.Error("list subscriptions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list subscriptions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"subscriptions": subs,
		"count":         len(subs),
	})
}

// GetSummary handles GET /api/v1/subscriptions/summary
func (h *SubscriptionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.spendingSummary.Handle(r.Context(), queries.SpendingSummaryQuery{})
	if err != nil {
		h.logger.Error("spending summary failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
