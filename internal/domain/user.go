package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the account row backing a user aggregate.
type User struct {
	ID          uuid.UUID
	Email       string
	Username    *string
	Active      bool
	ConfirmedAt *time.Time
	VerifiedAt  *time.Time
	BlockedAt   *time.Time
	Domain      string
	Preferences UserPreferences
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserPreferences holds the user-controlled visibility and locale settings.
type UserPreferences struct {
	Visibility      Visibility `json:"visibility"`
	EmailVisibility Visibility `json:"email_visibility"`
	Locale          string     `json:"locale,omitempty"`
	Timezone        string     `json:"timezone,omitempty"`
}

// DefaultUserPreferences returns preferences for a freshly created account.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		Visibility:      VisibilityRestricted,
		EmailVisibility: VisibilityRestricted,
		Locale:          "en",
		Timezone:        "UTC",
	}
}

// IsBlocked reports whether the account is currently blocked.
func (u *User) IsBlocked() bool {
	return u.BlockedAt != nil
}

// IsVerified reports whether a moderator has approved the account.
func (u *User) IsVerified() bool {
	return u.VerifiedAt != nil
}

// IsConfirmed reports whether the user confirmed their email address.
func (u *User) IsConfirmed() bool {
	return u.ConfirmedAt != nil
}

// Block deactivates the account and stamps it as blocked.
func (u *User) Block(now time.Time) {
	u.Active = false
	u.BlockedAt = &now
	u.VerifiedAt = nil
}

// Activate lifts a block and re-enables the account. An unconfirmed account is
// confirmed as part of activation.
func (u *User) Activate(now time.Time) {
	u.Active = true
	u.BlockedAt = nil
	if u.ConfirmedAt == nil {
		u.ConfirmedAt = &now
	}
}

// Verify marks the account as approved by a moderator.
func (u *User) Verify(now time.Time) {
	u.VerifiedAt = &now
	u.BlockedAt = nil
	u.Active = true
}

// Deactivate disables the account without blocking it.
func (u *User) Deactivate() {
	u.Active = false
}

// EmailDomain returns the lower-cased domain part of an email address,
// or "" when the address has no '@'.
func EmailDomain(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[at+1:]))
}

// UserProfile is a row owned by a user. Changing it changes the user aggregate.
type UserProfile struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	FullName     string
	Affiliations string
	UpdatedAt    time.Time
}

// OwnerID returns the owning user, if the row carries it.
func (p *UserProfile) OwnerID() (uuid.UUID, bool) {
	return p.UserID, p.UserID != uuid.Nil
}
