package domain

import "time"

// User represents a user account in the system
type User struct {
	ID               uint
	Name             string
	Email            string
	PasswordHash     string `gorm:"column:password"`
	EmailVerified    bool
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasResetToken reports whether a reset token has been issued and not yet
// consumed. A non-nil token always has a non-nil expiry (both are set in the
// same write).
func (u *User) HasResetToken() bool {
	return u.ResetToken != nil && u.ResetTokenExpiry != nil
}

// ResetTokenValidAt reports whether the pending reset token may still be used
// at the given instant. The token is valid up to and including its expiry.
func (u *User) ResetTokenValidAt(now time.Time) bool {
	if !u.HasResetToken() {
		return false
	}
	return !now.After(*u.ResetTokenExpiry)
}

// ClearResetToken removes the pending reset token and its expiry.
func (u *User) ClearResetToken() {
	u.ResetToken = nil
	u.ResetTokenExpiry = nil
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User        *User
	AccessToken string
	ExpiresIn   int64
}
