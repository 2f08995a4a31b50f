package service

//
// expimp.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/formats"
	"gitlab.com/kabes/go-podcatcher/internal/model"
)

// ExpImpSrv import and export subscription lists as OPML documents.
type ExpImpSrv struct {
	podcastsSrv *PodcastsSrv
	syncSrv     *SyncSrv
}

func NewExpImpSrv(i do.Injector) (*ExpImpSrv, error) {
	return &ExpImpSrv{
		podcastsSrv: do.MustInvoke[*PodcastsSrv](i),
		syncSrv:     do.MustInvoke[*SyncSrv](i),
	}, nil
}

// Import subscribe to feeds listed in an OPML document. Urls already in
// the catalog are skipped, the rest is fetched and stored; return the
// sync summary and the number of skipped feeds.
func (s *ExpImpSrv) Import(ctx context.Context, data []byte) (*model.SyncSummary, int, error) {
	opml, err := formats.NewOPMLFromBytes(data)
	if err != nil {
		return nil, 0, aerr.ApplyFor(aerr.ErrInvalidConf, err, "read opml failed")
	}

	podcasts, err := s.podcastsSrv.GetPodcasts(ctx)
	if err != nil {
		return nil, 0, err
	}

	known := make(map[string]struct{}, len(podcasts))
	for idx := range podcasts {
		known[podcasts[idx].URL] = struct{}{}
	}

	var feeds []model.Feed

	skipped := 0

	for _, f := range opml.Feeds() {
		if _, ok := known[f.URL]; ok {
			skipped++

			continue
		}

		feeds = append(feeds, f)
	}

	log.Ctx(ctx).Info().Int("feeds", len(feeds)).Int("skipped", skipped).
		Msg("importing subscriptions")

	summary, err := s.syncSrv.SyncFeeds(ctx, feeds)
	if err != nil {
		return nil, skipped, err
	}

	return summary, skipped, nil
}

// Export write the whole catalog as an OPML document.
func (s *ExpImpSrv) Export(ctx context.Context) ([]byte, error) {
	podcasts, err := s.podcastsSrv.GetPodcasts(ctx)
	if err != nil {
		return nil, err
	}

	opml := formats.NewOPML("podcasts")
	for idx := range podcasts {
		opml.AddRSS(podcasts[idx].URL, podcasts[idx].Title)
	}

	data, err := opml.XML()
	if err != nil {
		return nil, aerr.Wrapf(err, "serialize opml failed")
	}

	return data, nil
}
