package service

//
// sync.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcatcher/internal/common"
	"gitlab.com/kabes/go-podcatcher/internal/config"
	"gitlab.com/kabes/go-podcatcher/internal/feed"
	"gitlab.com/kabes/go-podcatcher/internal/model"
	"gitlab.com/kabes/go-podcatcher/internal/worker"
)

//nolint:gochecknoglobals
var (
	syncedFeedsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_feeds_total",
			Help: "Feeds processed by sync, by result.",
		},
		[]string{"result"},
	)
	syncedEpisodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_episodes_total",
			Help: "Episodes written by sync, by kind.",
		},
		[]string{"kind"},
	)
)

// syncOutcome is one completion message for a single feed.
type syncOutcome struct {
	feed    model.Feed
	podcast *model.PodcastMeta
	err     error
}

type SyncSrv struct {
	podcastsSrv *PodcastsSrv
	client      *feed.Client
	conf        *config.SyncConfig
}

func NewSyncSrv(i do.Injector) (*SyncSrv, error) {
	conf := do.MustInvoke[*config.SyncConfig](i)

	return &SyncSrv{
		podcastsSrv: do.MustInvoke[*PodcastsSrv](i),
		client:      feed.NewClient(conf),
		conf:        conf,
	}, nil
}

// SyncFeeds fetch, parse and reconcile a batch of feeds concurrently.
// Failures are isolated per feed; every feed that succeeded is committed
// regardless of its siblings.
func (s *SyncSrv) SyncFeeds(ctx context.Context, feeds []model.Feed) (*model.SyncSummary, error) {
	logger := log.Ctx(ctx).With().Str(common.LogKeySyncID, xid.New().String()).Logger()
	ctx = logger.WithContext(ctx)

	logger.Info().Int("feeds", len(feeds)).Msg("sync started")

	summary := &model.SyncSummary{}
	if len(feeds) == 0 {
		return summary, nil
	}

	pool := worker.NewPool(s.conf.Workers)
	defer pool.Shutdown()

	// buffered to the batch size so no worker ever blocks on report
	results := make(chan syncOutcome, len(feeds))

	for _, f := range feeds {
		pool.Submit(func() { results <- s.fetchFeed(ctx, f) })
	}

	// drain exactly one completion per submitted feed
	for range feeds {
		outcome := <-results
		s.commitOutcome(ctx, &outcome, summary)
	}

	logger.Info().Int("added", summary.Added).Int("updated", summary.Updated).
		Int("failed", len(summary.Failed)).Msg("sync finished")

	return summary, nil
}

// RefreshAll sync every stored podcast.
func (s *SyncSrv) RefreshAll(ctx context.Context) (*model.SyncSummary, error) {
	podcasts, err := s.podcastsSrv.GetPodcasts(ctx)
	if err != nil {
		return nil, err
	}

	feeds := make([]model.Feed, len(podcasts))
	for idx := range podcasts {
		feeds[idx] = model.NewFeed(&podcasts[idx].ID, podcasts[idx].URL, &podcasts[idx].Title)
	}

	return s.SyncFeeds(ctx, feeds)
}

func (s *SyncSrv) fetchFeed(ctx context.Context, f model.Feed) syncOutcome {
	logger := log.Ctx(ctx)
	logger.Debug().Object(common.LogKeyFeed, f).Msg("fetching feed")

	body, err := s.client.Fetch(ctx, f.URL)
	if err != nil {
		return syncOutcome{feed: f, err: err}
	}

	podcast, err := feed.Parse(body, f.URL)
	if err != nil {
		return syncOutcome{feed: f, err: err}
	}

	podcast.LastChecked = time.Now().UTC()

	return syncOutcome{feed: f, podcast: podcast}
}

func (s *SyncSrv) commitOutcome(ctx context.Context, outcome *syncOutcome,
	summary *model.SyncSummary,
) {
	logger := log.Ctx(ctx)
	f := outcome.feed

	if outcome.err == nil {
		var result *model.SyncResult

		var err error

		if f.ID == nil {
			result, err = s.podcastsSrv.InsertPodcast(ctx, outcome.podcast)
		} else {
			result, err = s.podcastsSrv.UpdatePodcast(ctx, *f.ID, outcome.podcast)
		}

		if err == nil {
			summary.Added += len(result.Added)
			summary.Updated += len(result.Updated)

			syncedFeedsTotal.WithLabelValues("success").Inc()
			syncedEpisodesTotal.WithLabelValues("added").Add(float64(len(result.Added)))
			syncedEpisodesTotal.WithLabelValues("updated").Add(float64(len(result.Updated)))

			return
		}

		outcome.err = err
	}

	logger.Warn().Err(outcome.err).Object(common.LogKeyFeed, f).Msg("feed sync failed")
	syncedFeedsTotal.WithLabelValues("failed").Inc()
	summary.Failed = append(summary.Failed, f)
}
