package queries

import (
	"context"
	"math"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
)

// WaitlistStatsQuery contains the parameters for computing waitlist stats.
type WaitlistStatsQuery struct {
	IDOrSlug string
}

// WaitlistStats summarizes signup and referral activity for a waitlist.
type WaitlistStats struct {
	Name             string
	Slug             string
	TotalSubscribers int
	ReferredSignups  int
	SignupsToday     int
	ReferralRate     int // percentage of signups that came via a referral
}

// WaitlistStatsHandler handles the WaitlistStatsQuery.
type WaitlistStatsHandler struct {
	wlRepo domain.Repository
}

// NewWaitlistStatsHandler creates a new WaitlistStatsHandler.
func NewWaitlistStatsHandler(wlRepo domain.Repository) *WaitlistStatsHandler {
	return &WaitlistStatsHandler{wlRepo: wlRepo}
}

// Handle executes the WaitlistStatsQuery. Returns nil when no waitlist
// matches.
func (h *WaitlistStatsHandler) Handle(ctx context.Context, query WaitlistStatsQuery) (*WaitlistStats, error) {
	wl, err := h.wlRepo.FindByIDOrSlug(ctx, query.IDOrSlug)
	if err != nil {
		return nil, err
	}
	if wl == nil {
		return nil, nil
	}

	return computeStats(wl, time.Now()), nil
}

func computeStats(wl *domain.Waitlist, now time.Time) *WaitlistStats {
	stats := &WaitlistStats{
		Name:             wl.Name(),
		Slug:             wl.Slug(),
		TotalSubscribers: len(wl.Subscribers()),
	}

	today := now.Format("2006-01-02")
	for _, sub := range wl.Subscribers() {
		if sub.ReferredBy() != "" {
			stats.ReferredSignups++
		}
		if sub.CreatedAt().Local().Format("2006-01-02") == today {
			stats.SignupsToday++
		}
	}

	if stats.TotalSubscribers > 0 {
		pct := float64(stats.ReferredSignups) / float64(stats.TotalSubscribers) * 100
		stats.ReferralRate = int(math.Round(pct))
	}

	return stats
}
