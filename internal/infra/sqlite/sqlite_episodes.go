package sqlite

//
// sqlite_episodes.go
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

// ListEpisodes return episodes for podcast, most recent first, local file
// path joined from files. Sqlite sorts NULL pubdates last with DESC.
func (s Repository) ListEpisodes(
	ctx context.Context,
	podcastid int64,
	includeHidden bool,
) ([]model.Episode, error) {
	logger := log.Ctx(ctx)
	logger.Debug().Int64("podcast_id", podcastid).Bool("include_hidden", includeHidden).
		Msg("list episodes")

	query := `
		SELECT e.id, e.podcast_id, e.title, e.url, e.guid, e.description, e.pubdate,
			e.duration, e.played, e.hidden, e.last_position, e.image_url,
			f.path AS file_path
		FROM episodes e
		LEFT JOIN files f ON f.episode_id = e.id
		WHERE e.podcast_id = ?`

	if !includeHidden {
		query += " AND e.hidden = 0"
	}

	query += " ORDER BY e.pubdate DESC"

	res := []EpisodeDB{}
	dbctx := db.MustCtx(ctx)

	err := dbctx.SelectContext(ctx, &res, query, podcastid)
	if err != nil {
		return nil, aerr.Wrapf(err, "query episodes failed").WithTag(aerr.StorageError).
			WithMeta("podcast_id", podcastid)
	}

	logger.Debug().Msgf("list episodes - found %d", len(res))

	return episodesFromDb(res), nil
}

// InsertEpisode create a new episode row with clean playback state.
func (s Repository) InsertEpisode(
	ctx context.Context,
	podcastid int64,
	episode *model.EpisodeMeta,
) (int64, error) {
	dbctx := db.MustCtx(ctx)

	res, err := dbctx.ExecContext(ctx,
		"INSERT INTO episodes (podcast_id, title, url, guid, description, pubdate, "+
			"duration, played, hidden, last_position, image_url) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, 0, 0, 0, ?)",
		podcastid,
		episode.Title,
		episode.URL,
		episode.GUID,
		episode.Description,
		timestampOrNull(episode.Pubdate),
		int64OrNull(episode.Duration),
		episode.ImageURL,
	)
	if err != nil {
		return 0, aerr.Wrapf(err, "insert episode failed").WithTag(aerr.StorageError).
			WithMeta("podcast_id", podcastid)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, aerr.Wrapf(err, "insert episode - get id failed").WithTag(aerr.StorageError)
	}

	return id, nil
}

// UpdateEpisodeMeta rewrite feed-sourced columns only; played, hidden,
// last_position and the file association stay as they are.
func (s Repository) UpdateEpisodeMeta(
	ctx context.Context,
	episodeid int64,
	episode *model.EpisodeMeta,
) error {
	dbctx := db.MustCtx(ctx)

	_, err := dbctx.ExecContext(ctx,
		"UPDATE episodes SET title = ?, url = ?, guid = ?, description = ?, "+
			"pubdate = ?, duration = ? WHERE id = ?",
		episode.Title,
		episode.URL,
		episode.GUID,
		episode.Description,
		timestampOrNull(episode.Pubdate),
		int64OrNull(episode.Duration),
		episodeid,
	)
	if err != nil {
		return aerr.Wrapf(err, "update episode failed").WithTag(aerr.StorageError).
			WithMeta("episode_id", episodeid)
	}

	return nil
}

func (s Repository) SetPlayed(ctx context.Context, episodeid int64, played bool) error {
	logger := log.Ctx(ctx)
	logger.Debug().Int64("episode_id", episodeid).Bool("played", played).Msg("set played")

	dbctx := db.MustCtx(ctx)

	_, err := dbctx.ExecContext(ctx,
		"UPDATE episodes SET played = ? WHERE id = ?", played, episodeid)
	if err != nil {
		return aerr.Wrapf(err, "update played status failed").WithTag(aerr.StorageError).
			WithMeta("episode_id", episodeid)
	}

	return nil
}

// HideEpisode mark episode as removed without deleting its row; the row has
// to stay so the episode is not re-added on the next sync.
func (s Repository) HideEpisode(ctx context.Context, episodeid int64, hidden bool) error {
	logger := log.Ctx(ctx)
	logger.Debug().Int64("episode_id", episodeid).Bool("hidden", hidden).Msg("hide episode")

	dbctx := db.MustCtx(ctx)

	_, err := dbctx.ExecContext(ctx,
		"UPDATE episodes SET hidden = ? WHERE id = ?", hidden, episodeid)
	if err != nil {
		return aerr.Wrapf(err, "update hidden status failed").WithTag(aerr.StorageError).
			WithMeta("episode_id", episodeid)
	}

	return nil
}

func (s Repository) SetLastPosition(ctx context.Context, episodeid int64, position int64) error {
	dbctx := db.MustCtx(ctx)

	_, err := dbctx.ExecContext(ctx,
		"UPDATE episodes SET last_position = ? WHERE id = ?", position, episodeid)
	if err != nil {
		return aerr.Wrapf(err, "update last position failed").WithTag(aerr.StorageError).
			WithMeta("episode_id", episodeid)
	}

	return nil
}

func (s Repository) GetLastPosition(ctx context.Context, episodeurl string) (int64, error) {
	dbctx := db.MustCtx(ctx)

	var position int64

	err := dbctx.GetContext(ctx, &position,
		"SELECT last_position FROM episodes WHERE url = ?", episodeurl)

	switch {
	case err == nil:
		return position, nil
	case errors.Is(err, sql.ErrNoRows):
		return 0, repository.ErrNoData
	default:
		return 0, aerr.Wrapf(err, "query last position failed").WithTag(aerr.StorageError)
	}
}
