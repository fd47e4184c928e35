package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is the persisted identity record. PasswordHash is nullable: an
// account without one (e.g. provisioned externally) can exist but can never
// pass credential login.
type Account struct {
	ID              string     `json:"id" gorm:"primaryKey;size:36"`
	Email           string     `json:"email" gorm:"uniqueIndex;not null"`
	DisplayName     string     `json:"display_name"`
	PasswordHash    *string    `json:"-"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	Role            Role       `json:"role" gorm:"size:32;not null;default:user"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

func newAccountID() string {
	return uuid.NewString()
}

func (a *Account) Verified() bool {
	return a.EmailVerifiedAt != nil
}

// AccountView is the sanitized projection returned by the service. It has no
// hash field at all, so the credential hash cannot leak through serialization.
type AccountView struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	DisplayName     string     `json:"display_name"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	Role            Role       `json:"role"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (a *Account) View() *AccountView {
	return &AccountView{
		ID:              a.ID,
		Email:           a.Email,
		DisplayName:     a.DisplayName,
		EmailVerifiedAt: a.EmailVerifiedAt,
		Role:            a.Role,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// VerificationToken is a single-use email verification token. Identifier is
// the normalized email it was issued for, not a foreign key. Tokens are
// immutable until deleted: deletion is consumption.
type VerificationToken struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	Identifier string    `json:"identifier" gorm:"index;not null"`
	Token      string    `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt  time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (VerificationToken) TableName() string {
	return "verification_tokens"
}

// NormalizeEmail performs case-insensitive canonicalization. Emails are
// normalized before every comparison, lookup, and write.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
