package service

//
// podcasts_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"
	"time"

	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcatcher/internal/assert"
	"gitlab.com/kabes/go-podcatcher/internal/common"
)

func TestInsertPodcast(t *testing.T) {
	ctx, i := prepareTests(t)
	srv := do.MustInvoke[*PodcastsSrv](i)

	meta := preparePodcastMeta("Test Cast", "http://cast.example.com/feed",
		episodeMeta("two", "http://e/2.mp3", "g2",
			timePtr(time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC))),
		episodeMeta("one", "http://e/1.mp3", "g1",
			timePtr(time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC))),
	)

	res, err := srv.InsertPodcast(ctx, meta)
	assert.NoErr(t, err)
	assert.Equal(t, len(res.Added), 2)
	assert.Equal(t, len(res.Updated), 0)
	// oldest first
	assert.Equal(t, res.Added[0].Title, "one")
	assert.Equal(t, res.Added[0].PodcastTitle, "Test Cast")

	// second insert with the same url must fail
	_, err = srv.InsertPodcast(ctx, meta)
	assert.ErrSpec(t, err, common.ErrPodcastExists)

	podcasts, err := srv.GetPodcasts(ctx)
	assert.NoErr(t, err)
	assert.Equal(t, len(podcasts), 1)
	assert.Equal(t, len(podcasts[0].Episodes), 2)
	// listings are newest first
	assert.Equal(t, podcasts[0].Episodes[0].Title, "two")
}

func TestUpdatePodcastReconciles(t *testing.T) {
	ctx, i := prepareTests(t)
	srv := do.MustInvoke[*PodcastsSrv](i)

	date := timePtr(time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC))
	meta := preparePodcastMeta("Test Cast", "http://cast.example.com/feed",
		episodeMeta("one", "http://e/1.mp3", "g1", date))

	_, err := srv.InsertPodcast(ctx, meta)
	assert.NoErr(t, err)

	podcast, err := srv.GetPodcasts(ctx)
	assert.NoErr(t, err)

	podcastid := podcast[0].ID

	// same feed again: nothing to do
	res, err := srv.UpdatePodcast(ctx, podcastid, meta)
	assert.NoErr(t, err)
	assert.Equal(t, len(res.Added), 0)
	assert.Equal(t, len(res.Updated), 0)

	// new episode plus corrected description on the old one
	changed := episodeMeta("one", "http://e/1.mp3", "g1", date)
	changed.Description = "corrected"
	update := preparePodcastMeta("Test Cast", "http://cast.example.com/feed",
		episodeMeta("two", "http://e/2.mp3", "g2",
			timePtr(time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC))),
		changed)

	res, err = srv.UpdatePodcast(ctx, podcastid, update)
	assert.NoErr(t, err)
	assert.Equal(t, len(res.Added), 1)
	assert.Equal(t, res.Added[0].Title, "two")
	assert.Equal(t, len(res.Updated), 1)
}

func TestUpdatePodcastKeepsPlaybackState(t *testing.T) {
	ctx, i := prepareTests(t)
	srv := do.MustInvoke[*PodcastsSrv](i)
	episodesSrv := do.MustInvoke[*EpisodesSrv](i)

	date := timePtr(time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC))
	meta := preparePodcastMeta("Test Cast", "http://cast.example.com/feed",
		episodeMeta("one", "http://e/1.mp3", "g1", date))

	_, err := srv.InsertPodcast(ctx, meta)
	assert.NoErr(t, err)

	podcasts, err := srv.GetPodcasts(ctx)
	assert.NoErr(t, err)

	podcastid := podcasts[0].ID
	episodeid := podcasts[0].Episodes[0].ID

	assert.NoErr(t, episodesSrv.SetPlayed(ctx, episodeid, true))
	assert.NoErr(t, episodesSrv.SetLastPosition(ctx, episodeid, 123))

	// metadata correction must not reset playback state
	changed := episodeMeta("one retitled", "http://e/1.mp3", "g1", date)
	_, err = srv.UpdatePodcast(ctx, podcastid,
		preparePodcastMeta("Test Cast", "http://cast.example.com/feed", changed))
	assert.NoErr(t, err)

	episodes, err := episodesSrv.GetEpisodes(ctx, podcastid, true)
	assert.NoErr(t, err)
	assert.Equal(t, len(episodes), 1)
	assert.Equal(t, episodes[0].Title, "one retitled")
	assert.True(t, episodes[0].Played)
	assert.Equal(t, episodes[0].LastPosition, 123)
}

func TestGetPodcastsDisplayOrder(t *testing.T) {
	ctx, i := prepareTests(t)
	srv := do.MustInvoke[*PodcastsSrv](i)

	for _, title := range []string{"The Zebra Show", "Anomaly", "a beta cast"} {
		_, err := srv.InsertPodcast(ctx,
			preparePodcastMeta(title, "http://cast.example.com/"+title))
		assert.NoErr(t, err)
	}

	podcasts, err := srv.GetPodcasts(ctx)
	assert.NoErr(t, err)
	assert.Equal(t, len(podcasts), 3)
	assert.Equal(t, podcasts[0].Title, "Anomaly")
	assert.Equal(t, podcasts[1].Title, "a beta cast")
	assert.Equal(t, podcasts[2].Title, "The Zebra Show")
}

func TestRemovePodcast(t *testing.T) {
	ctx, i := prepareTests(t)
	srv := do.MustInvoke[*PodcastsSrv](i)
	episodesSrv := do.MustInvoke[*EpisodesSrv](i)

	meta := preparePodcastMeta("Test Cast", "http://cast.example.com/feed",
		episodeMeta("one", "http://e/1.mp3", "g1", nil))

	_, err := srv.InsertPodcast(ctx, meta)
	assert.NoErr(t, err)

	podcasts, err := srv.GetPodcasts(ctx)
	assert.NoErr(t, err)

	podcastid := podcasts[0].ID

	assert.NoErr(t, srv.RemovePodcast(ctx, podcastid))

	// episodes went with the podcast
	episodes, err := episodesSrv.GetEpisodes(ctx, podcastid, true)
	assert.NoErr(t, err)
	assert.Equal(t, len(episodes), 0)

	assert.ErrSpec(t, srv.RemovePodcast(ctx, podcastid), common.ErrUnknownPodcast)

	_, err = srv.GetPodcast(ctx, podcastid)
	assert.ErrSpec(t, err, common.ErrUnknownPodcast)
}

func TestHiddenEpisodeNotResurrectedBySync(t *testing.T) {
	ctx, i := prepareTests(t)
	srv := do.MustInvoke[*PodcastsSrv](i)
	episodesSrv := do.MustInvoke[*EpisodesSrv](i)

	date := timePtr(time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC))
	meta := preparePodcastMeta("Test Cast", "http://cast.example.com/feed",
		episodeMeta("one", "http://e/1.mp3", "g1", date))

	_, err := srv.InsertPodcast(ctx, meta)
	assert.NoErr(t, err)

	podcasts, err := srv.GetPodcasts(ctx)
	assert.NoErr(t, err)

	podcastid := podcasts[0].ID
	assert.NoErr(t, episodesSrv.Hide(ctx, podcasts[0].Episodes[0].ID, true))

	// episode reappears verbatim in the next fetch
	res, err := srv.UpdatePodcast(ctx, podcastid, meta)
	assert.NoErr(t, err)
	assert.Equal(t, len(res.Added), 0)
	assert.Equal(t, len(res.Updated), 0)

	visible, err := episodesSrv.GetEpisodes(ctx, podcastid, false)
	assert.NoErr(t, err)
	assert.Equal(t, len(visible), 0)

	all, err := episodesSrv.GetEpisodes(ctx, podcastid, true)
	assert.NoErr(t, err)
	assert.Equal(t, len(all), 1)
}
