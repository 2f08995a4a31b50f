package service

//
// episodes_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"testing"
	"time"

	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcatcher/internal/assert"
	"gitlab.com/kabes/go-podcatcher/internal/common"
	"gitlab.com/kabes/go-podcatcher/internal/model"
)

func prepareTestPodcast(ctx context.Context, t *testing.T, i do.Injector) *model.Podcast {
	t.Helper()

	srv := do.MustInvoke[*PodcastsSrv](i)

	meta := preparePodcastMeta("Test Cast", "http://cast.example.com/feed",
		episodeMeta("two", "http://e/2.mp3", "g2",
			timePtr(time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC))),
		episodeMeta("one", "http://e/1.mp3", "g1",
			timePtr(time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC))),
	)

	if _, err := srv.InsertPodcast(ctx, meta); err != nil {
		t.Fatalf("insert test podcast failed: %#+v", err)
	}

	podcasts, err := srv.GetPodcasts(ctx)
	if err != nil || len(podcasts) == 0 {
		t.Fatalf("load test podcast failed: %#+v", err)
	}

	return &podcasts[0]
}

func TestSetAllPlayed(t *testing.T) {
	ctx, i := prepareTests(t)
	podcast := prepareTestPodcast(ctx, t, i)
	srv := do.MustInvoke[*EpisodesSrv](i)

	assert.NoErr(t, srv.SetAllPlayed(ctx, podcast.ID, true))

	episodes, err := srv.GetEpisodes(ctx, podcast.ID, true)
	assert.NoErr(t, err)

	for _, e := range episodes {
		assert.True(t, e.Played)
	}

	assert.NoErr(t, srv.SetAllPlayed(ctx, podcast.ID, false))

	episodes, err = srv.GetEpisodes(ctx, podcast.ID, true)
	assert.NoErr(t, err)

	for _, e := range episodes {
		assert.True(t, !e.Played)
	}
}

func TestLastPosition(t *testing.T) {
	ctx, i := prepareTests(t)
	podcast := prepareTestPodcast(ctx, t, i)
	srv := do.MustInvoke[*EpisodesSrv](i)

	episode := podcast.Episodes[0]

	assert.NoErr(t, srv.SetLastPosition(ctx, episode.ID, 321))

	position, err := srv.GetLastPosition(ctx, episode.URL)
	assert.NoErr(t, err)
	assert.Equal(t, position, 321)

	_, err = srv.GetLastPosition(ctx, "http://e/unknown.mp3")
	assert.ErrSpec(t, err, common.ErrUnknownEpisode)
}

func TestFileAssociations(t *testing.T) {
	ctx, i := prepareTests(t)
	podcast := prepareTestPodcast(ctx, t, i)
	srv := do.MustInvoke[*EpisodesSrv](i)

	first := podcast.Episodes[0].ID
	second := podcast.Episodes[1].ID

	assert.NoErr(t, srv.AddFile(ctx, first, "/media/podcasts/two.mp3"))
	assert.NoErr(t, srv.AddFile(ctx, second, "/media/podcasts/one.mp3"))

	episodes, err := srv.GetEpisodes(ctx, podcast.ID, true)
	assert.NoErr(t, err)
	assert.NotNil(t, episodes[0].File)
	assert.Equal(t, *episodes[0].File, "/media/podcasts/two.mp3")

	assert.NoErr(t, srv.RemoveFiles(ctx, []int64{first, second}))

	episodes, err = srv.GetEpisodes(ctx, podcast.ID, true)
	assert.NoErr(t, err)
	assert.Nil(t, episodes[0].File)
	assert.Nil(t, episodes[1].File)
}
