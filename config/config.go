package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig      `envPrefix:"IDKIT_APP_"`
	Log      LogConfig      `envPrefix:"IDKIT_LOG_"`
	Identity IdentityConfig `envPrefix:"IDKIT_IDENTITY_"`
	Database DatabaseConfig `envPrefix:"IDKIT_DATABASE_"`
	Mail     MailConfig     `envPrefix:"IDKIT_MAIL_"`
}

type AppConfig struct {
	Name string `env:"NAME" envDefault:"idkit Application"`
	URL  string `env:"URL" envDefault:"http://localhost:8080"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
	Output string `env:"OUTPUT" envDefault:"stdout"`
}

type IdentityConfig struct {
	BcryptCost    int           `env:"BCRYPT_COST" envDefault:"10"`
	TokenLength   int           `env:"TOKEN_LENGTH" envDefault:"32"`
	TokenExpiry   time.Duration `env:"TOKEN_EXPIRY" envDefault:"24h"`
	VerifyURLPath string        `env:"VERIFY_URL_PATH" envDefault:"/auth/verify-email"`
}

type DatabaseConfig struct {
	Driver      string `env:"DRIVER" envDefault:"sqlite"`
	DSN         string `env:"DSN" envDefault:"idkit.db"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
}

type MailConfig struct {
	Enabled      bool   `env:"ENABLED" envDefault:"false"`
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         int    `env:"PORT" envDefault:"587"`
	Username     string `env:"USERNAME"`
	Password     string `env:"PASSWORD"`
	Encryption   string `env:"ENCRYPTION" envDefault:"starttls"`
	FromAddress  string `env:"FROM_ADDRESS"`
	FromName     string `env:"FROM_NAME"`
	TemplatesDir string `env:"TEMPLATES_DIR"`
}

func LoadConfig(cfg any) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	return env.Parse(cfg)
}
