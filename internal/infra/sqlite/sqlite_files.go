package sqlite

//
// sqlite_files.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/db"
)

func (s Repository) InsertFile(ctx context.Context, episodeid int64, path string) error {
	logger := log.Ctx(ctx)
	logger.Debug().Int64("episode_id", episodeid).Str("path", path).Msg("insert file")

	dbctx := db.MustCtx(ctx)

	_, err := dbctx.ExecContext(ctx,
		"INSERT INTO files (episode_id, path) VALUES (?, ?)", episodeid, path)
	if err != nil {
		return aerr.Wrapf(err, "insert file failed").WithTag(aerr.StorageError).
			WithMeta("episode_id", episodeid)
	}

	return nil
}

func (s Repository) RemoveFile(ctx context.Context, episodeid int64) error {
	logger := log.Ctx(ctx)
	logger.Debug().Int64("episode_id", episodeid).Msg("remove file")

	dbctx := db.MustCtx(ctx)

	_, err := dbctx.ExecContext(ctx,
		"DELETE FROM files WHERE episode_id = ?", episodeid)
	if err != nil {
		return aerr.Wrapf(err, "remove file failed").WithTag(aerr.StorageError).
			WithMeta("episode_id", episodeid)
	}

	return nil
}

func (s Repository) RemoveFiles(ctx context.Context, episodeids []int64) error {
	if len(episodeids) == 0 {
		return nil
	}

	logger := log.Ctx(ctx)
	logger.Debug().Ints64("episode_ids", episodeids).Msg("remove files")

	query, args, err := sqlx.In("DELETE FROM files WHERE episode_id IN (?)", episodeids)
	if err != nil {
		return aerr.Wrapf(err, "prepare remove files query failed").WithTag(aerr.StorageError)
	}

	dbctx := db.MustCtx(ctx)

	if _, err := dbctx.ExecContext(ctx, query, args...); err != nil {
		return aerr.Wrapf(err, "remove files failed").WithTag(aerr.StorageError)
	}

	return nil
}
