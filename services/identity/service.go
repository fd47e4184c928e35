package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tech-arch1tect/idkit/config"
	"github.com/tech-arch1tect/idkit/services/logging"
	"go.uber.org/zap"
)

// MailSender is the outbound collaborator that delivers the verification
// link. The raw token never leaves the service any other way.
type MailSender interface {
	SendVerificationEmail(email, verificationURL string, expiry time.Duration) error
}

// Service orchestrates registration, login, email verification and token
// resend. It is stateless between calls; all durable state lives in the
// injected stores.
type Service struct {
	config     *config.Config
	accounts   AccountStore
	tokens     VerificationTokenStore
	hasher     *PasswordHasher
	generator  *TokenGenerator
	mailSender MailSender
	logger     *logging.Service
}

func NewService(cfg *config.Config, accounts AccountStore, tokens VerificationTokenStore, hasher *PasswordHasher, generator *TokenGenerator, logger *logging.Service) *Service {
	return &Service{
		config:    cfg,
		accounts:  accounts,
		tokens:    tokens,
		hasher:    hasher,
		generator: generator,
		logger:    logger,
	}
}

func (s *Service) SetMailSender(mailSender MailSender) {
	s.mailSender = mailSender
}

// Register creates an unverified account and issues its first verification
// token. The returned string is the raw token; callers hand it to the email
// collaborator and must not persist it.
func (s *Service) Register(email, displayName, secret string) (*AccountView, string, error) {
	email = NormalizeEmail(email)

	if s.logger != nil {
		s.logger.Info("registering account", zap.String("email", email))
	}

	exists, err := s.accounts.ExistsByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check for existing account: %w", err)
	}
	if exists {
		if s.logger != nil {
			s.logger.Warn("registration rejected: email already registered", zap.String("email", email))
		}
		return nil, "", ErrAccountConflict
	}

	hash, err := s.hasher.Hash(secret)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("password hashing failed during registration", zap.Error(err))
		}
		return nil, "", err
	}

	account := &Account{
		ID:           newAccountID(),
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: &hash,
		Role:         RoleUser,
	}

	if err := s.accounts.Create(account); err != nil {
		// The existence check above is only a friendlier error; the store's
		// uniqueness constraint is the safety net for concurrent registration.
		if errors.Is(err, ErrConflict) {
			if s.logger != nil {
				s.logger.Warn("registration lost creation race", zap.String("email", email))
			}
			return nil, "", ErrAccountConflict
		}
		return nil, "", err
	}

	rawToken, err := s.issueToken(email)
	if err != nil {
		return nil, "", err
	}

	if s.logger != nil {
		s.logger.Info("account registered", zap.String("email", email), zap.String("account_id", account.ID))
	}

	if err := s.sendVerification(email, rawToken); err != nil {
		return nil, "", err
	}

	return account.View(), rawToken, nil
}

// Login validates credentials and the verification gate. Unknown email,
// missing credential hash and wrong secret all return ErrInvalidCredentials;
// ErrEmailNotVerified is only reachable once the secret has been proven.
func (s *Service) Login(email, secret string) (*AccountView, error) {
	email = NormalizeEmail(email)

	account, err := s.accounts.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if s.logger != nil {
				s.logger.Warn("login failed: unknown email", zap.String("email", email))
			}
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if account.PasswordHash == nil {
		if s.logger != nil {
			s.logger.Warn("login failed: account has no credential", zap.String("email", email))
		}
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Verify(secret, *account.PasswordHash); err != nil {
		if s.logger != nil {
			s.logger.Warn("login failed: password mismatch", zap.String("email", email))
		}
		return nil, ErrInvalidCredentials
	}

	if !account.Verified() {
		if s.logger != nil {
			s.logger.Warn("login blocked: email not verified", zap.String("email", email))
		}
		return nil, ErrEmailNotVerified
	}

	if s.logger != nil {
		s.logger.Info("login successful", zap.String("email", email), zap.String("account_id", account.ID))
	}
	return account.View(), nil
}

// VerifyEmail consumes a token and marks the account verified. Tokens are
// located by value alone; deleting the token is the atomic claim, so of two
// concurrent consumers only one can transition the account.
func (s *Service) VerifyEmail(token string) (*AccountView, error) {
	verificationToken, err := s.tokens.FindByToken(token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if s.logger != nil {
				s.logger.Warn("verification attempted with unknown token")
			}
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, err
	}

	if s.generator.Expired(verificationToken.ExpiresAt) {
		// Expired tokens are garbage-collected lazily, on the first failed
		// consumption attempt.
		if _, err := s.tokens.DeleteByToken(token); err != nil {
			return nil, err
		}
		if s.logger != nil {
			s.logger.Warn("verification attempted with expired token",
				zap.String("identifier", verificationToken.Identifier),
				zap.Time("expired_at", verificationToken.ExpiresAt))
		}
		return nil, ErrInvalidOrExpiredToken
	}

	account, err := s.accounts.FindByEmail(verificationToken.Identifier)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// A token outlived its account: surfaced distinctly so callers can
			// tell data corruption from a bad token.
			if s.logger != nil {
				s.logger.Error("verification token references missing account",
					zap.String("identifier", verificationToken.Identifier))
			}
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	claimed, err := s.tokens.DeleteByToken(token)
	if err != nil {
		return nil, err
	}
	if claimed == 0 {
		return nil, ErrInvalidOrExpiredToken
	}

	now := time.Now()
	if err := s.accounts.MarkEmailVerified(account.ID, now); err != nil {
		return nil, err
	}
	account.EmailVerifiedAt = &now

	if s.logger != nil {
		s.logger.Info("email verified",
			zap.String("email", account.Email),
			zap.String("account_id", account.ID))
	}
	return account.View(), nil
}

// ResendVerification invalidates every outstanding token for the email and
// issues a fresh one, so a previously sent link becomes unusable immediately.
func (s *Service) ResendVerification(email string) (string, error) {
	email = NormalizeEmail(email)

	account, err := s.accounts.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrAccountNotFound
		}
		return "", err
	}

	if account.Verified() {
		if s.logger != nil {
			s.logger.Warn("resend rejected: email already verified", zap.String("email", email))
		}
		return "", ErrAlreadyVerified
	}

	removed, err := s.tokens.DeleteAllForIdentifier(email)
	if err != nil {
		return "", err
	}
	if s.logger != nil && removed > 0 {
		s.logger.Debug("invalidated outstanding verification tokens",
			zap.String("email", email),
			zap.Int64("tokens_removed", removed))
	}

	rawToken, err := s.issueToken(email)
	if err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.Info("verification token reissued", zap.String("email", email))
	}

	if err := s.sendVerification(email, rawToken); err != nil {
		return "", err
	}

	return rawToken, nil
}

func (s *Service) GetAccountByID(id string) (*AccountView, error) {
	account, err := s.accounts.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account.View(), nil
}

func (s *Service) GetAccountByEmail(email string) (*AccountView, error) {
	account, err := s.accounts.FindByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account.View(), nil
}

// CleanupExpiredTokens is the maintenance sweep. The service never schedules
// it; wire it to a cron or timer at the composition layer if needed.
func (s *Service) CleanupExpiredTokens() (int64, error) {
	removed, err := s.tokens.DeleteAllExpired(time.Now())
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to cleanup expired verification tokens", zap.Error(err))
		}
		return 0, err
	}
	if s.logger != nil {
		s.logger.Info("expired verification tokens cleaned up", zap.Int64("tokens_removed", removed))
	}
	return removed, nil
}

func (s *Service) issueToken(email string) (string, error) {
	rawToken, err := s.generator.Generate()
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to generate verification token", zap.Error(err), zap.String("email", email))
		}
		return "", err
	}

	verificationToken := &VerificationToken{
		Identifier: email,
		Token:      rawToken,
		ExpiresAt:  s.generator.ComputeExpiry(s.config.Identity.TokenExpiry),
	}

	if err := s.tokens.Create(verificationToken); err != nil {
		return "", err
	}
	return rawToken, nil
}

// sendVerification delivers the verification link when a mailer is wired.
// State mutations stay applied even if delivery fails; the resend path is
// the recovery mechanism.
func (s *Service) sendVerification(email, rawToken string) error {
	if s.mailSender == nil {
		return nil
	}

	verificationURL := fmt.Sprintf("%s%s?token=%s",
		strings.TrimRight(s.config.App.URL, "/"),
		s.config.Identity.VerifyURLPath,
		rawToken)

	if err := s.mailSender.SendVerificationEmail(email, verificationURL, s.config.Identity.TokenExpiry); err != nil {
		if s.logger != nil {
			s.logger.Error("failed to send verification email", zap.Error(err), zap.String("email", email))
		}
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}
