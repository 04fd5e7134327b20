package domain

import (
	"crypto/rand"
	"time"

	sharedDomain "github.com/felixgeelhaar/launchkit/internal/shared/domain"
	"github.com/google/uuid"
)

// Subscriber is a signup on a waitlist. Subscribers are owned by their
// waitlist and never referenced across waitlists.
type Subscriber struct {
	sharedDomain.BaseEntity
	email         string
	referralCode  string
	referredBy    string
	referralCount int
	position      int
}

// RehydrateSubscriber recreates a subscriber from persisted state.
func RehydrateSubscriber(
	id uuid.UUID,
	email, referralCode, referredBy string,
	referralCount, position int,
	createdAt time.Time,
) *Subscriber {
	return &Subscriber{
		BaseEntity:    sharedDomain.RehydrateBaseEntity(id, createdAt, createdAt),
		email:         email,
		referralCode:  referralCode,
		referredBy:    referredBy,
		referralCount: referralCount,
		position:      position,
	}
}

// Getters
func (s *Subscriber) Email() string        { return s.email }
func (s *Subscriber) ReferralCode() string { return s.referralCode }

// ReferredBy returns the referral code that brought this subscriber in, or
// an empty string for an organic signup.
func (s *Subscriber) ReferredBy() string { return s.referredBy }

// ReferralCount is the number of other subscribers who signed up with this
// subscriber's referral code.
func (s *Subscriber) ReferralCount() int { return s.referralCount }

// Position is the 1-based signup position. Positions are assigned at
// insertion time and never renumbered, even after deletions.
func (s *Subscriber) Position() int { return s.position }

func (s *Subscriber) incrementReferralCount() {
	s.referralCount++
}

const referralCodeLength = 6
const referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateReferralCode returns a short random token. Codes are not
// cryptographically unique; collisions are handled by the caller re-rolling.
func generateReferralCode() string {
	buf := make([]byte, referralCodeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; fall back to a UUID-derived code.
		id := uuid.New().String()
		return referralCodeFromString(id)
	}
	for i := range buf {
		buf[i] = referralCodeAlphabet[int(buf[i])%len(referralCodeAlphabet)]
	}
	return string(buf)
}

func referralCodeFromString(s string) string {
	code := make([]byte, 0, referralCodeLength)
	for i := 0; i < len(s) && len(code) < referralCodeLength; i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z':
			code = append(code, c-'a'+'A')
		case '0' <= c && c <= '9':
			code = append(code, c)
		}
	}
	return string(code)
}
