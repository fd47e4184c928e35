package identity

import "time"

// AccountStore is the durable keyed storage for accounts. Implementations
// perform only mechanical persistence and enforce no business rules, with
// one contractual exception: Create must return ErrConflict when a
// concurrent insert violates email uniqueness, because the service-level
// existence check alone cannot close that race.
type AccountStore interface {
	Create(account *Account) error
	FindByID(id string) (*Account, error)
	// FindByEmail expects a normalized email and matches case-insensitively.
	FindByEmail(email string) (*Account, error)
	ExistsByEmail(email string) (bool, error)
	MarkEmailVerified(id string, at time.Time) error
	Update(account *Account) error
	Delete(id string) error
}

// VerificationTokenStore is the durable keyed storage for outstanding
// verification tokens. The service exclusively owns creation and deletion
// policy. Delete operations report the number of rows removed so callers
// can detect a token that was already claimed by a concurrent consumer.
type VerificationTokenStore interface {
	Create(token *VerificationToken) error
	FindByToken(token string) (*VerificationToken, error)
	FindByIdentifierAndToken(identifier, token string) (*VerificationToken, error)
	DeleteByToken(token string) (int64, error)
	DeleteAllForIdentifier(identifier string) (int64, error)
	DeleteAllExpired(now time.Time) (int64, error)
}
