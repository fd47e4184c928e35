package app

import (
	"github.com/tech-arch1tect/idkit/config"
	"github.com/tech-arch1tect/idkit/database"
	"github.com/tech-arch1tect/idkit/internal/options"
	"github.com/tech-arch1tect/idkit/services/identity"
	"github.com/tech-arch1tect/idkit/services/logging"
	"github.com/tech-arch1tect/idkit/services/mail"
	"go.uber.org/fx"
)

func New(opts ...options.Option) *App {
	buildOpts := &options.Options{}
	for _, opt := range opts {
		opt(buildOpts)
	}

	app := &App{}

	models := []any{&identity.Account{}, &identity.VerificationToken{}}
	models = append(models, buildOpts.ExtraModels...)

	fxOptions := []fx.Option{
		config.NewProvider(buildOpts.Config),
		logging.Module,
		fx.Supply(database.WithModels(models...)),
		database.Module,
		identity.Module,
		fx.NopLogger,
	}

	if buildOpts.EnableMail {
		fxOptions = append(fxOptions,
			mail.Module,
			fx.Invoke(func(svc *identity.Service, sender *mail.Service) {
				svc.SetMailSender(sender)
			}),
		)
	}

	for _, extra := range buildOpts.ExtraFxOptions {
		if fxOpt, ok := extra.(fx.Option); ok {
			fxOptions = append(fxOptions, fxOpt)
		}
	}

	fxOptions = append(fxOptions, fx.Populate(&app.config, &app.logger, &app.db, &app.identity))

	app.fx = fx.New(fxOptions...)
	return app
}
