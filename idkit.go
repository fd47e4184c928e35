// Package idkit is a credential and identity lifecycle module: it registers
// accounts, authenticates them, and gates login behind an email-verification
// step using single-use, time-limited tokens. The HTTP or RPC boundary is
// intentionally left to the caller; idkit exposes a library-level contract.
package idkit

import (
	"github.com/tech-arch1tect/idkit/app"
	"github.com/tech-arch1tect/idkit/config"
	"github.com/tech-arch1tect/idkit/internal/options"
)

type App = app.App

func New(opts ...options.Option) *App {
	return app.New(opts...)
}

func WithConfig(cfg *config.Config) options.Option {
	return options.WithConfig(cfg)
}

func WithModels(models ...any) options.Option {
	return options.WithModels(models...)
}

func WithMail() options.Option {
	return options.WithMail()
}

func WithFxOptions(fxOpts ...any) options.Option {
	return options.WithFxOptions(fxOpts...)
}
