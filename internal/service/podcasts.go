package service

//
// podcasts.go
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

type PodcastsSrv struct {
	db           *db.Database
	podcastsRepo repository.Podcasts
	episodesRepo repository.Episodes
}

func NewPodcastsSrv(i do.Injector) (*PodcastsSrv, error) {
	return &PodcastsSrv{
		db:           do.MustInvoke[*db.Database](i),
		podcastsRepo: do.MustInvoke[repository.Podcasts](i),
		episodesRepo: do.MustInvoke[repository.Episodes](i),
	}, nil
}

// GetPodcasts return all podcasts with full episode lists attached,
// ordered for display by the article-stripped title.
func (p *PodcastsSrv) GetPodcasts(ctx context.Context) (model.Podcasts, error) {
	//nolint:wrapcheck
	return db.InConnectionR(ctx, p.db, func(ctx context.Context) (model.Podcasts, error) {
		podcasts, err := p.podcastsRepo.ListPodcasts(ctx)
		if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		for idx := range podcasts {
			episodes, err := p.episodesRepo.ListEpisodes(ctx, podcasts[idx].ID, true)
			if err != nil {
				return nil, aerr.ApplyFor(ErrRepositoryError, err)
			}

			podcasts[idx].Episodes = episodes
		}

		podcasts.SortForDisplay()

		return podcasts, nil
	})
}

func (p *PodcastsSrv) GetPodcast(ctx context.Context, podcastid int64) (*model.Podcast, error) {
	//nolint:wrapcheck
	return db.InConnectionR(ctx, p.db, func(ctx context.Context) (*model.Podcast, error) {
		podcast, err := p.podcastsRepo.GetPodcastByID(ctx, podcastid)
		if errors.Is(err, common.ErrNoData) {
			return nil, common.ErrUnknownPodcast
		} else if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		episodes, err := p.episodesRepo.ListEpisodes(ctx, podcastid, true)
		if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		podcast.Episodes = episodes

		return podcast, nil
	})
}

// InsertPodcast store a feed not seen before: the podcast row plus all
// episodes, oldest first, in one transaction.
func (p *PodcastsSrv) InsertPodcast(ctx context.Context, meta *model.PodcastMeta,
) (*model.SyncResult, error) {
	//nolint:wrapcheck
	return db.InTransactionR(ctx, p.db, func(ctx context.Context) (*model.SyncResult, error) {
		if _, err := p.podcastsRepo.GetPodcastByURL(ctx, meta.URL); err == nil {
			return nil, common.ErrPodcastExists
		} else if !errors.Is(err, common.ErrNoData) {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		podcastid, err := p.podcastsRepo.InsertPodcast(ctx, meta)
		if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		result := &model.SyncResult{}

		for idx := len(meta.Episodes) - 1; idx >= 0; idx-- {
			episode := meta.Episodes[idx]

			episodeid, err := p.episodesRepo.InsertEpisode(ctx, podcastid, &episode)
			if err != nil {
				return nil, aerr.ApplyFor(ErrRepositoryError, err)
			}

			result.Added = append(result.Added, model.NewEpisode{
				ID:           episodeid,
				PodcastID:    podcastid,
				Title:        episode.Title,
				PodcastTitle: meta.Title,
			})
		}

		log.Ctx(ctx).Debug().Int64(common.LogKeyPodcastID, podcastid).
			Int("episodes", len(result.Added)).Msg("podcast inserted")

		return result, nil
	})
}

// UpdatePodcast rewrite podcast metadata and reconcile its episodes
// against the stored snapshot, all in one transaction.
func (p *PodcastsSrv) UpdatePodcast(ctx context.Context, podcastid int64,
	meta *model.PodcastMeta,
) (*model.SyncResult, error) {
	//nolint:wrapcheck
	return db.InTransactionR(ctx, p.db, func(ctx context.Context) (*model.SyncResult, error) {
		if err := p.podcastsRepo.UpdatePodcastMeta(ctx, podcastid, meta); err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		// hidden episodes stay in the match pool
		existing, err := p.episodesRepo.ListEpisodes(ctx, podcastid, true)
		if err != nil {
			return nil, aerr.ApplyFor(ErrRepositoryError, err)
		}

		plan := reconcileEpisodes(existing, meta.Episodes)
		result := &model.SyncResult{}

		for idx := range plan.inserts {
			episode := &plan.inserts[idx]

			episodeid, err := p.episodesRepo.InsertEpisode(ctx, podcastid, episode)
			if err != nil {
				return nil, aerr.ApplyFor(ErrRepositoryError, err)
			}

			result.Added = append(result.Added, model.NewEpisode{
				ID:           episodeid,
				PodcastID:    podcastid,
				Title:        episode.Title,
				PodcastTitle: meta.Title,
			})
		}

		for _, update := range plan.updates {
			if err := p.episodesRepo.UpdateEpisodeMeta(ctx, update.id, &update.meta); err != nil {
				return nil, aerr.ApplyFor(ErrRepositoryError, err)
			}

			result.Updated = append(result.Updated, update.id)
		}

		log.Ctx(ctx).Debug().Int64(common.LogKeyPodcastID, podcastid).
			Int("added", len(result.Added)).Int("updated", len(result.Updated)).
			Msg("podcast reconciled")

		return result, nil
	})
}

// RemovePodcast delete the podcast; episodes and file associations are
// removed by cascading foreign keys.
func (p *PodcastsSrv) RemovePodcast(ctx context.Context, podcastid int64) error {
	//nolint:wrapcheck
	return db.InTransaction(ctx, p.db, func(ctx context.Context) error {
		if _, err := p.podcastsRepo.GetPodcastByID(ctx, podcastid); errors.Is(err, common.ErrNoData) {
			return common.ErrUnknownPodcast
		} else if err != nil {
			return aerr.ApplyFor(ErrRepositoryError, err)
		}

		if err := p.podcastsRepo.DeletePodcast(ctx, podcastid); err != nil {
			return aerr.ApplyFor(ErrRepositoryError, err)
		}

		return nil
	})
}
