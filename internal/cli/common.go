package cli

//
// common.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/config"
	"gitlab.com/kabes/go-podcatcher/internal/db"
	"gitlab.com/kabes/go-podcatcher/internal/infra"
	"gitlab.com/kabes/go-podcatcher/internal/service"
)

// wrap build the standard command environment: logger, configuration,
// injector and an open database connection.
func wrap(
	cmdfunc func(ctx context.Context, clicmd *cli.Command, i do.Injector) error,
) func(ctx context.Context, clicmd *cli.Command) error {
	return func(ctx context.Context, clicmd *cli.Command) error {
		if err := initializeLogger(clicmd.String("log.level"), clicmd.String("log.format")); err != nil {
			return err
		}

		ctx = log.Logger.WithContext(ctx)

		dbconf := config.DBConfig{Connstr: clicmd.String("database")}
		if err := dbconf.Validate(); err != nil {
			return aerr.Wrapf(err, "invalid database configuration")
		}

		syncconf := config.NewSyncConfig()
		syncconf.Workers = int(clicmd.Int("sync.workers"))
		syncconf.MaxRetries = int(clicmd.Int("sync.max-retries"))

		if err := syncconf.Validate(); err != nil {
			return aerr.Wrapf(err, "invalid sync configuration")
		}

		injector := createInjector(ctx)
		do.ProvideValue(injector, dbconf)
		do.ProvideValue(injector, &syncconf)

		database := do.MustInvoke[*db.Database](injector)
		if err := database.Connect(ctx); err != nil {
			return aerr.Wrapf(err, "connect to database failed")
		}

		defer shutdownInjector(ctx, injector)

		return cmdfunc(ctx, clicmd, injector)
	}
}

func createInjector(ctx context.Context) do.Injector {
	injector := do.New(
		db.Package,
		infra.Package,
		service.Package,
	)

	logger := log.Ctx(ctx)
	logger.Debug().Msgf("Available services: %v", injector.ListProvidedServices())

	return injector
}

func errMissingArgument(name string) error {
	return aerr.New("missing argument").WithUserMsg("missing required argument: " + name)
}

func shutdownInjector(ctx context.Context, injector do.Injector) {
	logger := log.Ctx(ctx)

	if report := injector.Shutdown(); report != nil && !report.Succeed {
		logger.Warn().Msgf("shutdown services error: %s", report.Error())
	}
}
