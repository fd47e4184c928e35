package identity

import (
	"github.com/tech-arch1tect/idkit/config"
	"github.com/tech-arch1tect/idkit/services/logging"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func ProvideIdentityService(cfg *config.Config, db *gorm.DB, logger *logging.Service) *Service {
	accounts := NewGormAccountStore(db)
	tokens := NewGormVerificationTokenStore(db)
	hasher := NewPasswordHasher(cfg.Identity.BcryptCost)
	generator := NewTokenGenerator(cfg.Identity.TokenLength)
	return NewService(cfg, accounts, tokens, hasher, generator, logger)
}

var Module = fx.Options(
	fx.Provide(ProvideIdentityService),
)
