package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	sharedDomain "github.com/felixgeelhaar/launchkit/internal/shared/domain"
	"github.com/google/uuid"
)

var (
	ErrSubscriptionEmptyName    = errors.New("subscription name cannot be empty")
	ErrSubscriptionInvalidPrice = errors.New("subscription price must be positive")
	ErrSubscriptionInvalidCycle = errors.New("invalid billing cycle")
	ErrSubscriptionNotFound     = errors.New("subscription not found")
)

// BillingCycle represents how often a subscription renews.
type BillingCycle string

const (
	CycleWeekly    BillingCycle = "weekly"
	CycleMonthly   BillingCycle = "monthly"
	CycleQuarterly BillingCycle = "quarterly"
	CycleYearly    BillingCycle = "yearly"
)

// IsValid checks if the billing cycle is valid.
func (c BillingCycle) IsValid() bool {
	switch c {
	case CycleWeekly, CycleMonthly, CycleQuarterly, CycleYearly:
		return true
	default:
		return false
	}
}

// Subscription represents a recurring service the user pays for.
type Subscription struct {
	sharedDomain.BaseEntity
	name            string
	price           float64
	cycle           BillingCycle
	category        string
	startDate       time.Time
	nextBillingDate time.Time
	logoURL         string
	color           string
	cancelURL       string
	notes           string
	reminded        bool
}

// NewSubscription creates a new subscription. The next billing date is
// derived from the start date and cycle relative to now.
func NewSubscription(name string, price float64, cycle BillingCycle, category string, startDate, now time.Time) (*Subscription, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrSubscriptionEmptyName
	}
	if price <= 0 {
		return nil, ErrSubscriptionInvalidPrice
	}
	if !cycle.IsValid() {
		return nil, ErrSubscriptionInvalidCycle
	}

	return &Subscription{
		BaseEntity:      sharedDomain.NewBaseEntity(),
		name:            name,
		price:           price,
		cycle:           cycle,
		category:        category,
		startDate:       startDate,
		nextBillingDate: NextBillingDate(startDate, cycle, now),
		reminded:        false,
	}, nil
}

// RehydrateSubscription recreates a subscription from persisted state.
func RehydrateSubscription(
	id uuid.UUID,
	name string,
	price float64,
	cycle BillingCycle,
	category string,
	startDate, nextBillingDate time.Time,
	logoURL, color, cancelURL, notes string,
	reminded bool,
	createdAt, updatedAt time.Time,
) *Subscription {
	return &Subscription{
		BaseEntity:      sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		name:            name,
		price:           price,
		cycle:           cycle,
		category:        category,
		startDate:       startDate,
		nextBillingDate: nextBillingDate,
		logoURL:         logoURL,
		color:           color,
		cancelURL:       cancelURL,
		notes:           notes,
		reminded:        reminded,
	}
}

// Getters
func (s *Subscription) Name() string               { return s.name }
func (s *Subscription) Price() float64             { return s.price }
func (s *Subscription) Cycle() BillingCycle        { return s.cycle }
func (s *Subscription) Category() string           { return s.category }
func (s *Subscription) StartDate() time.Time       { return s.startDate }
func (s *Subscription) NextBillingDate() time.Time { return s.nextBillingDate }
func (s *Subscription) LogoURL() string            { return s.logoURL }
func (s *Subscription) Color() string              { return s.color }
func (s *Subscription) CancelURL() string          { return s.cancelURL }
func (s *Subscription) Notes() string              { return s.notes }

// Reminded reports whether a renewal reminder was already sent. The flag is
// persisted but nothing reads it back yet; it is kept for the reminder flow.
func (s *Subscription) Reminded() bool { return s.reminded }

// SetName updates the subscription name.
func (s *Subscription) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrSubscriptionEmptyName
	}
	s.name = name
	s.Touch()
	return nil
}

// SetPrice updates the price.
func (s *Subscription) SetPrice(price float64) error {
	if price <= 0 {
		return ErrSubscriptionInvalidPrice
	}
	s.price = price
	s.Touch()
	return nil
}

// SetCycle updates the billing cycle and re-derives the next billing date.
func (s *Subscription) SetCycle(cycle BillingCycle, now time.Time) error {
	if !cycle.IsValid() {
		return ErrSubscriptionInvalidCycle
	}
	s.cycle = cycle
	s.nextBillingDate = NextBillingDate(s.startDate, cycle, now)
	s.Touch()
	return nil
}

// SetCategory updates the category label. Categories are free text; no
// canonicalization happens here.
func (s *Subscription) SetCategory(category string) {
	s.category = category
	s.Touch()
}

// SetStartDate updates the start date and re-derives the next billing date.
func (s *Subscription) SetStartDate(startDate, now time.Time) {
	s.startDate = startDate
	s.nextBillingDate = NextBillingDate(startDate, s.cycle, now)
	s.Touch()
}

// SetLogoURL updates the logo URL.
func (s *Subscription) SetLogoURL(url string) {
	s.logoURL = url
	s.Touch()
}

// SetColor updates the display color.
func (s *Subscription) SetColor(color string) {
	s.color = color
	s.Touch()
}

// SetCancelURL updates the cancellation URL.
func (s *Subscription) SetCancelURL(url string) {
	s.cancelURL = url
	s.Touch()
}

// SetNotes updates the notes.
func (s *Subscription) SetNotes(notes string) {
	s.notes = notes
	s.Touch()
}

// MarkReminded records that a renewal reminder was sent.
func (s *Subscription) MarkReminded() {
	s.reminded = true
	s.Touch()
}

// NextBillingDate advances from start one cycle at a time until the result
// is strictly after now. A start date already in the future is returned
// unchanged. Month and year steps are calendar-aware, not fixed day counts.
func NextBillingDate(start time.Time, cycle BillingCycle, now time.Time) time.Time {
	next := start
	for !next.After(now) {
		switch cycle {
		case CycleWeekly:
			next = next.AddDate(0, 0, 7)
		case CycleMonthly:
			next = next.AddDate(0, 1, 0)
		case CycleQuarterly:
			next = next.AddDate(0, 3, 0)
		case CycleYearly:
			next = next.AddDate(1, 0, 0)
		default:
			return next
		}
	}
	return next
}

// MonthlyAmount normalizes the price to a per-month figure. The weekly
// factor 4.33 is the average number of weeks per month, an intentional
// approximation rather than exact calendar math.
func (s *Subscription) MonthlyAmount() float64 {
	switch s.cycle {
	case CycleWeekly:
		return s.price * 4.33
	case CycleMonthly:
		return s.price
	case CycleQuarterly:
		return s.price / 3
	case CycleYearly:
		return s.price / 12
	default:
		return s.price
	}
}

// YearlyAmount normalizes the price to a per-year figure.
func (s *Subscription) YearlyAmount() float64 {
	switch s.cycle {
	case CycleWeekly:
		return s.price * 52
	case CycleMonthly:
		return s.price * 12
	case CycleQuarterly:
		return s.price * 4
	case CycleYearly:
		return s.price
	default:
		return s.price
	}
}

// DaysUntil returns the whole number of days from now until date, rounding
// partial days up. The result is negative when the date is already past.
func DaysUntil(date, now time.Time) int {
	return int(math.Ceil(date.Sub(now).Hours() / 24))
}
