package service

//
// episodes.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/common"
	"gitlab.com/kabes/go-podcatcher/internal/db"
	"gitlab.com/kabes/go-podcatcher/internal/model"
	"gitlab.com/kabes/go-podcatcher/internal/repository"
)

type EpisodesSrv struct {
	db           *db.Database
	episodesRepo repository.Episodes
	filesRepo    repository.Files
}

func NewEpisodesSrv(i do.Injector) (*EpisodesSrv, error) {
	return &EpisodesSrv{
		db:           do.MustInvoke[*db.Database](i),
		episodesRepo: do.MustInvoke[repository.Episodes](i),
		filesRepo:    do.MustInvoke[repository.Files](i),
	}, nil
}

// GetEpisodes list episodes for one podcast, newest first, hidden ones
// excluded unless requested.
func (e *EpisodesSrv) GetEpisodes(ctx context.Context, podcastid int64, includeHidden bool,
) ([]model.Episode, error) {
	//nolint:wrapcheck
	return db.InConnectionR(ctx, e.db, func(ctx context.Context) ([]model.Episode, error) {
		episodes, err := e.episodesRepo.ListEpisodes(ctx, podcastid, includeHidden)
		if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		return episodes, nil
	})
}

func (e *EpisodesSrv) SetPlayed(ctx context.Context, episodeid int64, played bool) error {
	//nolint:wrapcheck
	return db.InTransaction(ctx, e.db, func(ctx context.Context) error {
		if err := e.episodesRepo.SetPlayed(ctx, episodeid, played); err != nil {
			return aerr.ApplyFor(ErrRepositoryError, err)
		}

		return nil
	})
}

// SetAllPlayed flip the played flag on every episode of a podcast in one
// transaction.
func (e *EpisodesSrv) SetAllPlayed(ctx context.Context, podcastid int64, played bool) error {
	//nolint:wrapcheck
	return db.InTransaction(ctx, e.db, func(ctx context.Context) error {
		episodes, err := e.episodesRepo.ListEpisodes(ctx, podcastid, true)
		if err != nil {
			return aerr.ApplyFor(ErrRepositoryError, err)
		}

		for idx := range episodes {
			if err := e.episodesRepo.SetPlayed(ctx, episodes[idx].ID, played); err != nil {
				return aerr.ApplyFor(ErrRepositoryError, err)
			}
		}

		log.Ctx(ctx).Debug().Int64(common.LogKeyPodcastID, podcastid).
			Int("episodes", len(episodes)).Bool("played", played).Msg("played flag set")

		return nil
	})
}

// Hide exclude an episode from default listings. The row stays in
// storage so a later sync will not re-add it.
func (e *EpisodesSrv) Hide(ctx context.Context, episodeid int64, hidden bool) error {
	//nolint:wrapcheck
	return db.InTransaction(ctx, e.db, func(ctx context.Context) error {
		if err := e.episodesRepo.HideEpisode(ctx, episodeid, hidden); err != nil {
			return aerr.ApplyFor(ErrRepositoryError, err)
		}

		return nil
	})
}

func (e *EpisodesSrv) SetLastPosition(ctx context.Context, episodeid, position int64) error {
	//nolint:wrapcheck
	return db.InTransaction(ctx, e.db, func(ctx context.Context) error {
		if err := e.episodesRepo.SetLastPosition(ctx, episodeid, position); err != nil {
			return aerr.ApplyFor(ErrRepositoryError, err)
		}

		return nil
	})
}

func (e *EpisodesSrv) GetLastPosition(ctx context.Context, episodeurl string) (int64, error) {
	//nolint:wrapcheck
	return db.InConnectionR(ctx, e.db, func(ctx context.Context) (int64, error) {
		position, err := e.episodesRepo.GetLastPosition(ctx, episodeurl)
		if errors.Is(err, common.ErrNoData) {
			return 0, common.ErrUnknownEpisode
		} else if err != nil {
			return 0, aerr.ApplyFor(ErrRepositoryError, err)
		}

		return position, nil
	})
}

// AddFile record the local path of a downloaded copy.
func (e *EpisodesSrv) AddFile(ctx context.Context, episodeid int64, path string) error {
	//nolint:wrapcheck
	return db.InTransaction(ctx, e.db, func(ctx context.Context) error {
		if err := e.filesRepo.InsertFile(ctx, episodeid, path); err != nil {
			return aerr.ApplyFor(ErrRepositoryError, err)
		}

		return nil
	})
}

// RemoveFile drop the local file association; the episode row stays.
func (e *EpisodesSrv) RemoveFile(ctx context.Context, episodeid int64) error {
	//nolint:wrapcheck
	return db.InTransaction(ctx, e.db, func(ctx context.Context) error {
		if err := e.filesRepo.RemoveFile(ctx, episodeid); err != nil {
			return aerr.ApplyFor(ErrRepositoryError, err)
		}

		return nil
	})
}

func (e *EpisodesSrv) RemoveFiles(ctx context.Context, episodeids []int64) error {
	//nolint:wrapcheck
	return db.InTransaction(ctx, e.db, func(ctx context.Context) error {
		if err := e.filesRepo.RemoveFiles(ctx, episodeids); err != nil {
			return aerr.ApplyFor(ErrRepositoryError, err)
		}

		return nil
	})
}
