package domain

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"

	sharedDomain "github.com/felixgeelhaar/launchkit/internal/shared/domain"
	"github.com/google/uuid"
)

var (
	ErrWaitlistEmptyName = errors.New("waitlist name cannot be empty")
	ErrWaitlistEmptySlug = errors.New("waitlist slug cannot be empty")
	ErrWaitlistSlugTaken = errors.New("waitlist slug is already taken")
	ErrWaitlistNotFound  = errors.New("waitlist not found")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrAlreadyRegistered = errors.New("email already registered")
)

// Settings holds the per-waitlist signup page configuration.
type Settings struct {
	PrimaryColor   string
	CollectName    bool
	SuccessMessage string
}

// DefaultSettings returns the settings applied to newly created waitlists.
func DefaultSettings() Settings {
	return Settings{
		PrimaryColor:   "#7B2D42",
		CollectName:    false,
		SuccessMessage: "You're on the list! Check your email for confirmation.",
	}
}

var slugDisallowed = regexp.MustCompile(`[^a-z0-9-]`)

// NormalizeSlug lowercases s and replaces every character outside
// [a-z0-9-] with a hyphen. Note this differs from the CLI-level sanitizer,
// which strips disallowed characters instead of replacing them.
func NormalizeSlug(s string) string {
	return slugDisallowed.ReplaceAllString(strings.ToLower(s), "-")
}

// Waitlist is an ordered list of subscribers for one product launch.
// Subscriber order is signup order is position order.
type Waitlist struct {
	sharedDomain.BaseEntity
	name        string
	description string
	slug        string
	settings    Settings
	subscribers []*Subscriber
}

// NewWaitlist creates a new waitlist with default settings and no
// subscribers. The slug is normalized before storage.
func NewWaitlist(name, description, slug string) (*Waitlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrWaitlistEmptyName
	}

	slug = NormalizeSlug(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrWaitlistEmptySlug
	}

	return &Waitlist{
		BaseEntity:  sharedDomain.NewBaseEntity(),
		name:        name,
		description: description,
		slug:        slug,
		settings:    DefaultSettings(),
		subscribers: make([]*Subscriber, 0),
	}, nil
}

// RehydrateWaitlist recreates a waitlist from persisted state.
func RehydrateWaitlist(
	id uuid.UUID,
	name, description, slug string,
	settings Settings,
	subscribers []*Subscriber,
	createdAt time.Time,
) *Waitlist {
	if subscribers == nil {
		subscribers = make([]*Subscriber, 0)
	}
	return &Waitlist{
		BaseEntity:  sharedDomain.RehydrateBaseEntity(id, createdAt, createdAt),
		name:        name,
		description: description,
		slug:        slug,
		settings:    settings,
		subscribers: subscribers,
	}
}

// Getters
func (w *Waitlist) Name() string               { return w.name }
func (w *Waitlist) Description() string        { return w.description }
func (w *Waitlist) Slug() string               { return w.slug }
func (w *Waitlist) Settings() Settings         { return w.settings }
func (w *Waitlist) Subscribers() []*Subscriber { return w.subscribers }

// SetSettings replaces the signup page settings.
func (w *Waitlist) SetSettings(settings Settings) {
	w.settings = settings
	w.Touch()
}

// Matches reports whether idOrSlug refers to this waitlist by either its
// ID or its slug.
func (w *Waitlist) Matches(idOrSlug string) bool {
	return w.ID().String() == idOrSlug || w.slug == idOrSlug
}

// AddSubscriber signs email up. When referredBy names an existing
// subscriber's referral code, that subscriber's referral count is
// incremented; an unknown code is silently ignored. The new subscriber's
// position is the current count plus one and is never renumbered later.
func (w *Waitlist) AddSubscriber(email, referredBy string, now time.Time) (*Subscriber, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	// Duplicate check is a case-sensitive exact match, as the signup
	// form always submits the address verbatim.
	for _, s := range w.subscribers {
		if s.email == email {
			return nil, ErrAlreadyRegistered
		}
	}

	sub := &Subscriber{
		BaseEntity:   sharedDomain.NewBaseEntityAt(now.UTC()),
		email:        email,
		referralCode: w.uniqueReferralCode(),
		referredBy:   referredBy,
		position:     len(w.subscribers) + 1,
	}

	if referredBy != "" {
		for _, s := range w.subscribers {
			if s.referralCode == referredBy {
				s.incrementReferralCount()
				break
			}
		}
	}

	w.subscribers = append(w.subscribers, sub)
	w.Touch()

	return sub, nil
}

// FindSubscriberByCode returns the subscriber owning a referral code, or
// nil when the code matches nobody.
func (w *Waitlist) FindSubscriberByCode(code string) *Subscriber {
	for _, s := range w.subscribers {
		if s.referralCode == code {
			return s
		}
	}
	return nil
}

// uniqueReferralCode re-rolls until the code is unused within this
// waitlist. Collision odds are tiny; the loop almost never iterates.
func (w *Waitlist) uniqueReferralCode() string {
	for {
		code := generateReferralCode()
		if w.FindSubscriberByCode(code) == nil {
			return code
		}
	}
}
