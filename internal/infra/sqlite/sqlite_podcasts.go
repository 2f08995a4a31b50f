package sqlite

//
// sqlite_podcasts.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/db"
	"gitlab.com/kabes/go-podcatcher/internal/model"
	"gitlab.com/kabes/go-podcatcher/internal/repository"
)

const podcastColumns = "p.id, p.title, p.url, p.description, p.author, p.explicit, " +
	"p.last_checked, p.image_url"

func (s Repository) ListPodcasts(ctx context.Context) (model.Podcasts, error) {
	logger := log.Ctx(ctx)
	logger.Debug().Msg("list podcasts")

	res := []PodcastDB{}
	dbctx := db.MustCtx(ctx)

	err := dbctx.SelectContext(ctx, &res,
		"SELECT "+podcastColumns+" FROM podcasts p ORDER BY p.id")
	if err != nil {
		return nil, aerr.Wrapf(err, "query podcasts failed").WithTag(aerr.StorageError)
	}

	logger.Debug().Msgf("list podcasts - found %d", len(res))

	return podcastsFromDb(res), nil
}

func (s Repository) GetPodcastByID(ctx context.Context, podcastid int64) (*model.Podcast, error) {
	logger := log.Ctx(ctx)
	logger.Debug().Int64("podcast_id", podcastid).Msg("get podcast")

	res := PodcastDB{}
	dbctx := db.MustCtx(ctx)

	err := dbctx.GetContext(ctx, &res,
		"SELECT "+podcastColumns+" FROM podcasts p WHERE p.id = ?", podcastid)

	switch {
	case err == nil:
		return res.toModel(), nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, repository.ErrNoData
	default:
		return nil, aerr.Wrapf(err, "query podcast failed").WithTag(aerr.StorageError)
	}
}

func (s Repository) GetPodcastByURL(ctx context.Context, url string) (*model.Podcast, error) {
	logger := log.Ctx(ctx)
	logger.Debug().Str("podcast_url", url).Msg("get podcast by url")

	res := PodcastDB{}
	dbctx := db.MustCtx(ctx)

	err := dbctx.GetContext(ctx, &res,
		"SELECT "+podcastColumns+" FROM podcasts p WHERE p.url = ?", url)

	switch {
	case err == nil:
		return res.toModel(), nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, repository.ErrNoData
	default:
		return nil, aerr.Wrapf(err, "query podcast by url failed").WithTag(aerr.StorageError)
	}
}

func (s Repository) InsertPodcast(ctx context.Context, podcast *model.PodcastMeta) (int64, error) {
	logger := log.Ctx(ctx)
	logger.Debug().Str("podcast_url", podcast.URL).Msg("insert podcast")

	dbctx := db.MustCtx(ctx)

	res, err := dbctx.ExecContext(ctx,
		"INSERT INTO podcasts (title, url, description, author, explicit, last_checked, image_url) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?)",
		podcast.Title,
		podcast.URL,
		podcast.Description,
		podcast.Author,
		boolOrNull(podcast.Explicit),
		podcast.LastChecked.Unix(),
		podcast.ImageURL,
	)
	if err != nil {
		return 0, aerr.Wrapf(err, "insert podcast failed").WithTag(aerr.StorageError).
			WithMeta("url", podcast.URL)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, aerr.Wrapf(err, "insert podcast - get id failed").WithTag(aerr.StorageError)
	}

	return id, nil
}

func (s Repository) UpdatePodcastMeta(
	ctx context.Context,
	podcastid int64,
	podcast *model.PodcastMeta,
) error {
	logger := log.Ctx(ctx)
	logger.Debug().Int64("podcast_id", podcastid).Msg("update podcast meta")

	dbctx := db.MustCtx(ctx)

	_, err := dbctx.ExecContext(ctx,
		"UPDATE podcasts SET title = ?, url = ?, description = ?, author = ?, "+
			"explicit = ?, last_checked = ?, image_url = ? WHERE id = ?",
		podcast.Title,
		podcast.URL,
		podcast.Description,
		podcast.Author,
		boolOrNull(podcast.Explicit),
		podcast.LastChecked.Unix(),
		podcast.ImageURL,
		podcastid,
	)
	if err != nil {
		return aerr.Wrapf(err, "update podcast failed").WithTag(aerr.StorageError).
			WithMeta("podcast_id", podcastid)
	}

	return nil
}

// DeletePodcast remove the podcast row; episodes and file rows are removed
// by the cascading foreign keys.
func (s Repository) DeletePodcast(ctx context.Context, podcastid int64) error {
	logger := log.Ctx(ctx)
	logger.Debug().Int64("podcast_id", podcastid).Msg("delete podcast")

	dbctx := db.MustCtx(ctx)

	_, err := dbctx.ExecContext(ctx, "DELETE FROM podcasts WHERE id = ?", podcastid)
	if err != nil {
		return aerr.Wrapf(err, "delete podcast failed").WithTag(aerr.StorageError).
			WithMeta("podcast_id", podcastid)
	}

	return nil
}
