package cli

//
// main.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//
import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/config"
)

//nolint:forbidigo
func Main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "print-version",
		Aliases: []string{"V"},
		Usage:   "Print version.",
	}

	cli := &cli.Command{
		Name:    "go-podcatcher",
		Version: config.VersionString,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "database",
				Value:     "podcasts.db",
				Usage:     "Database file",
				Aliases:   []string{"D"},
				Sources:   cli.EnvVars("GOPODCATCHER_DB"),
				Validator: dbConnstrValidator,
				Config:    cli.StringConfig{TrimSpace: true},
			},
			&cli.IntFlag{
				Name:    "sync.workers",
				Value:   config.DefaultSyncWorkers,
				Usage:   "Number of concurrent feed downloads",
				Sources: cli.EnvVars("GOPODCATCHER_SYNC_WORKERS"),
			},
			&cli.IntFlag{
				Name:    "sync.max-retries",
				Value:   config.DefaultMaxRetries,
				Usage:   "Download attempts per feed",
				Sources: cli.EnvVars("GOPODCATCHER_SYNC_RETRIES"),
			},
			&cli.StringFlag{
				Name:    "log.level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("GOPODCATCHER_LOGLEVEL"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "log.format",
				Value:   "console",
				Usage:   "Log format (console, logfmt, json, journald, syslog)",
				Sources: cli.EnvVars("GOPODCATCHER_LOGFORMAT"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
		},
		Commands: []*cli.Command{
			newSyncCmd(),
			newImportCmd(),
			newExportCmd(),
			newStartServerCmd(),
			podcastSubCmd(),
			episodeSubCmd(),
			databaseSubCmd(),
		},
	}

	if err := cli.Run(context.Background(), os.Args); err != nil {
		if h := aerr.GetUserMessage(err); h != "" {
			fmt.Printf("Error: %s\n", h)
		} else {
			fmt.Printf("Error: %s\n", err.Error())
		}

		if cli.String("log.level") == "debug" {
			fmt.Printf("Error: %#+v\n", err)
		}
	}
}

func podcastSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "podcast",
		Usage: "manage podcasts",
		Commands: []*cli.Command{
			newAddPodcastCmd(),
			newListPodcastsCmd(),
			newListEpisodesCmd(),
			newRemovePodcastCmd(),
		},
	}
}

func episodeSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "episode",
		Usage: "manage episodes",
		Commands: []*cli.Command{
			newMarkPlayedCmd(),
			newHideEpisodeCmd(),
			newSetPositionCmd(),
		},
	}
}

func databaseSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "database",
		Usage: "manage database",
		Commands: []*cli.Command{
			newMigrateCmd(),
			newMaintenanceCmd(),
		},
	}
}

//---------------------------------------------------------------------

func dbConnstrValidator(connstr string) error {
	if connstr == "" {
		return aerr.New("database connection string cannot be empty")
	}

	return nil
}
