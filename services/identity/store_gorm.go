package identity

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type GormAccountStore struct {
	db *gorm.DB
}

func NewGormAccountStore(db *gorm.DB) *GormAccountStore {
	return &GormAccountStore{db: db}
}

func (s *GormAccountStore) Create(account *Account) error {
	if err := s.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (s *GormAccountStore) FindByID(id string) (*Account, error) {
	var account Account
	if err := s.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by id: %w", err)
	}
	return &account, nil
}

func (s *GormAccountStore) FindByEmail(email string) (*Account, error) {
	var account Account
	if err := s.db.Where("email = ?", NormalizeEmail(email)).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by email: %w", err)
	}
	return &account, nil
}

func (s *GormAccountStore) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&Account{}).Where("email = ?", NormalizeEmail(email)).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

func (s *GormAccountStore) MarkEmailVerified(id string, at time.Time) error {
	result := s.db.Model(&Account{}).Where("id = ?", id).Update("email_verified_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to mark email verified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormAccountStore) Update(account *Account) error {
	if err := s.db.Save(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

func (s *GormAccountStore) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&Account{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type GormVerificationTokenStore struct {
	db *gorm.DB
}

func NewGormVerificationTokenStore(db *gorm.DB) *GormVerificationTokenStore {
	return &GormVerificationTokenStore{db: db}
}

func (s *GormVerificationTokenStore) Create(token *VerificationToken) error {
	if err := s.db.Create(token).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create verification token: %w", err)
	}
	return nil
}

func (s *GormVerificationTokenStore) FindByToken(tokenValue string) (*VerificationToken, error) {
	var token VerificationToken
	if err := s.db.Where("token = ?", tokenValue).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find verification token: %w", err)
	}
	return &token, nil
}

func (s *GormVerificationTokenStore) FindByIdentifierAndToken(identifier, tokenValue string) (*VerificationToken, error) {
	var token VerificationToken
	err := s.db.Where("identifier = ? AND token = ?", NormalizeEmail(identifier), tokenValue).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find verification token: %w", err)
	}
	return &token, nil
}

func (s *GormVerificationTokenStore) DeleteByToken(tokenValue string) (int64, error) {
	result := s.db.Where("token = ?", tokenValue).Delete(&VerificationToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete verification token: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *GormVerificationTokenStore) DeleteAllForIdentifier(identifier string) (int64, error) {
	result := s.db.Where("identifier = ?", NormalizeEmail(identifier)).Delete(&VerificationToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete verification tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *GormVerificationTokenStore) DeleteAllExpired(now time.Time) (int64, error) {
	result := s.db.Where("expires_at < ?", now).Delete(&VerificationToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired verification tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
