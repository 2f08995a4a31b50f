package service

//
// testhelpers_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	stdlog "log"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcatcher/internal/config"
	"gitlab.com/kabes/go-podcatcher/internal/db"
	"gitlab.com/kabes/go-podcatcher/internal/infra"
	"gitlab.com/kabes/go-podcatcher/internal/model"
)

func prepareTests(t *testing.T) (context.Context, *do.RootScope) {
	t.Helper()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Caller().Stack().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	ctx := log.Logger.WithContext(context.Background())
	i := do.New(Package, db.Package, infra.Package)

	do.ProvideValue(i, config.DBConfig{Connstr: ":memory:"})

	syncconf := config.NewSyncConfig()
	syncconf.MaxRetries = 1
	syncconf.RetryDelay = time.Millisecond
	do.ProvideValue(i, &syncconf)

	database := do.MustInvoke[*db.Database](i)
	if err := database.Connect(ctx); err != nil {
		t.Fatalf("connect to db error: %#+v", err)
	}

	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("prepare db error: %#+v", err)
	}

	return ctx, i
}

func preparePodcastMeta(title, url string, episodes ...model.EpisodeMeta) *model.PodcastMeta {
	return &model.PodcastMeta{
		Title:       title,
		URL:         url,
		Description: "description of " + title,
		LastChecked: time.Now().UTC(),
		Episodes:    episodes,
	}
}

func episodeMeta(title, url, guid string, pubdate *time.Time) model.EpisodeMeta {
	return model.EpisodeMeta{
		Title:       title,
		URL:         url,
		GUID:        guid,
		Description: "description of " + title,
		Pubdate:     pubdate,
	}
}

func timePtr(t time.Time) *time.Time { return &t }
