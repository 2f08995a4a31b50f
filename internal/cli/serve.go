package cli

//
// serve.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//
import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Merovius/systemd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/config"
	"gitlab.com/kabes/go-podcatcher/internal/db"
	"gitlab.com/kabes/go-podcatcher/internal/server"
	"gitlab.com/kabes/go-podcatcher/internal/service"
)

func newStartServerCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run as a daemon: periodic feed refresh plus a status http server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Value:   "127.0.0.1:8080",
				Usage:   "listen address",
				Aliases: []string{"a"},
				Sources: cli.EnvVars("GOPODCATCHER_SERVER_ADDRESS"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.BoolFlag{
				Name:    "enable-metrics",
				Usage:   "enable prometheus metrics (/metrics endpoint)",
				Sources: cli.EnvVars("GOPODCATCHER_SERVER_METRICS"),
			},
			&cli.DurationFlag{
				Name:    "refresh-interval",
				Usage:   "how often all subscriptions are synced; 0 disables the background refresh",
				Value:   time.Hour,
				Sources: cli.EnvVars("GOPODCATCHER_REFRESH_INTERVAL"),
			},
		},
		Action: wrap(startServerCmd),
	}
}

func startServerCmd(ctx context.Context, clicmd *cli.Command, rootInjector do.Injector) error {
	injector := rootInjector.Scope("server", server.Package)

	serverConf := server.Configuration{
		Address:       strings.TrimSpace(clicmd.String("address")),
		EnableMetrics: clicmd.Bool("enable-metrics"),
	}
	do.ProvideValue(injector, &serverConf)

	// background refresh runs next to the ui; keep the pool small unless
	// the user asked for a specific size
	if !clicmd.IsSet("sync.workers") {
		do.MustInvoke[*config.SyncConfig](injector).Workers = config.DefaultRefreshWorkers
	}

	d := daemon{}

	return d.start(ctx, injector, clicmd.Duration("refresh-interval"))
}

type daemon struct{}

func (d *daemon) start(ctx context.Context, injector do.Injector, refreshInterval time.Duration,
) error {
	logger := log.Ctx(ctx)
	logger.Log().Msgf("Starting go-podcatcher (%s)...", config.VersionString)

	d.startSystemdWatchdog(logger)

	do.MustInvoke[*db.Database](injector).RegisterMetrics()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	srv := do.MustInvoke[*server.Server](injector)
	if err := srv.Start(ctx); err != nil {
		return aerr.Wrapf(err, "failed start server")
	}

	if refreshInterval > 0 {
		syncSrv := do.MustInvoke[*service.SyncSrv](injector)
		go d.refreshTask(ctx, syncSrv, refreshInterval)
	}

	systemd.NotifyReady()           //nolint:errcheck
	systemd.NotifyStatus("running") //nolint:errcheck

	<-ctx.Done()

	systemd.NotifyStatus("stopped") //nolint:errcheck

	return nil
}

func (*daemon) startSystemdWatchdog(logger *zerolog.Logger) {
	if ok, dur, err := systemd.AutoWatchdog(); ok {
		logger.Info().Msgf("Systemd: autowatchdog started; duration=%s", dur)
	} else if err != nil {
		logger.Warn().Err(err).Msgf("Systemd: autowatchdog start error=%q", err)
	}
}

func (*daemon) refreshTask(ctx context.Context, syncSrv *service.SyncSrv,
	interval time.Duration,
) {
	logger := log.Ctx(ctx)
	logger.Info().Msgf("Refresh: background feed refresh started; interval=%s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Refresh: stopped")

			return

		case <-ticker.C:
			summary, err := syncSrv.RefreshAll(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("Refresh: sync failed")

				continue
			}

			logger.Info().Int("added", summary.Added).Int("updated", summary.Updated).
				Int("failed", len(summary.Failed)).Msg("Refresh: sync finished")
		}
	}
}
