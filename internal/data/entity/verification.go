package entity

import (
	"time"

	"github.com/google/uuid"
)

// Verification is the single active OTP of a user. NewContact is set when the
// code confirms a change of email rather than the account itself.
type Verification struct {
	BaseSimple
	UserID     uuid.UUID `db:"user_id"`
	Code       string    `db:"code"`
	NewContact *string   `db:"new_contact"`
	ExpiresAt  time.Time `db:"expires_at"`
}

func (v *Verification) IsExpired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
