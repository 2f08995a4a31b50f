// Package repository define interfaces for data persistence.
package repository

//
// mod.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"

	"gitlab.com/kabes/go-podcatcher/internal/common"
	"gitlab.com/kabes/go-podcatcher/internal/model"
)

// ErrNoData is returned when a query matched no rows.
var ErrNoData = common.ErrNoData

// All methods run on the database context carried in ctx (connection or
// transaction); callers own transaction boundaries.

type Podcasts interface {
	// ListPodcasts return all podcasts without episodes attached.
	ListPodcasts(ctx context.Context) (model.Podcasts, error)
	GetPodcastByID(ctx context.Context, podcastid int64) (*model.Podcast, error)
	GetPodcastByURL(ctx context.Context, url string) (*model.Podcast, error)
	// InsertPodcast create the podcast row only; return new id.
	InsertPodcast(ctx context.Context, podcast *model.PodcastMeta) (int64, error)
	// UpdatePodcastMeta rewrite podcast metadata columns for an existing row.
	UpdatePodcastMeta(ctx context.Context, podcastid int64, podcast *model.PodcastMeta) error
	// DeletePodcast remove the podcast row; episodes and file associations
	// go with it via foreign keys.
	DeletePodcast(ctx context.Context, podcastid int64) error
}

type Episodes interface {
	// ListEpisodes return episodes for podcast ordered by pubdate desc,
	// local file path joined in.
	ListEpisodes(ctx context.Context, podcastid int64, includeHidden bool) ([]model.Episode, error)
	InsertEpisode(ctx context.Context, podcastid int64, episode *model.EpisodeMeta) (int64, error)
	// UpdateEpisodeMeta rewrite title/url/guid/description/pubdate/duration
	// only; playback state columns are left alone.
	UpdateEpisodeMeta(ctx context.Context, episodeid int64, episode *model.EpisodeMeta) error
	SetPlayed(ctx context.Context, episodeid int64, played bool) error
	HideEpisode(ctx context.Context, episodeid int64, hidden bool) error
	SetLastPosition(ctx context.Context, episodeid int64, position int64) error
	GetLastPosition(ctx context.Context, episodeurl string) (int64, error)
}

type Files interface {
	InsertFile(ctx context.Context, episodeid int64, path string) error
	RemoveFile(ctx context.Context, episodeid int64) error
	RemoveFiles(ctx context.Context, episodeids []int64) error
}

type Repository interface {
	Podcasts
	Episodes
	Files
}
