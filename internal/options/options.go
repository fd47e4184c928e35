package options

import (
	"github.com/tech-arch1tect/idkit/config"
)

type Options struct {
	Config         *config.Config
	ExtraModels    []any
	EnableMail     bool
	ExtraFxOptions []any
}

type Option func(*Options)

func WithConfig(cfg *config.Config) Option {
	return func(opts *Options) {
		opts.Config = cfg
	}
}

// WithModels registers additional models to auto-migrate alongside the
// identity models.
func WithModels(models ...any) Option {
	return func(opts *Options) {
		opts.ExtraModels = append(opts.ExtraModels, models...)
	}
}

func WithMail() Option {
	return func(opts *Options) {
		opts.EnableMail = true
	}
}

func WithFxOptions(fxOpts ...any) Option {
	return func(opts *Options) {
		opts.ExtraFxOptions = append(opts.ExtraFxOptions, fxOpts...)
	}
}
