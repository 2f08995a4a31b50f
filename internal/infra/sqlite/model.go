package sqlite

// model.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-podcatcher/internal/model"
)

//------------------------------------------------------------------------------

// Timestamps are stored as unix seconds; explicit as NULL / 0 / 1.

type PodcastDB struct {
	ID          int64         `db:"id"`
	Title       string        `db:"title"`
	URL         string        `db:"url"`
	Description string        `db:"description"`
	Author      string        `db:"author"`
	Explicit    sql.NullBool  `db:"explicit"`
	LastChecked int64         `db:"last_checked"`
	ImageURL    string        `db:"image_url"`
}

func (p *PodcastDB) toModel() *model.Podcast {
	var explicit *bool
	if p.Explicit.Valid {
		explicit = &p.Explicit.Bool
	}

	return &model.Podcast{
		ID:          p.ID,
		Title:       p.Title,
		URL:         p.URL,
		Description: p.Description,
		Author:      p.Author,
		Explicit:    explicit,
		ImageURL:    p.ImageURL,
		LastChecked: time.Unix(p.LastChecked, 0).UTC(),
	}
}

func (p *PodcastDB) MarshalZerologObject(event *zerolog.Event) {
	event.Int64("id", p.ID).
		Str("title", p.Title).
		Str("url", p.URL)
}

func podcastsFromDb(rows []PodcastDB) model.Podcasts {
	podcasts := make(model.Podcasts, len(rows))
	for i, row := range rows {
		podcasts[i] = *row.toModel()
	}

	return podcasts
}

//------------------------------------------------------------------------------

type EpisodeDB struct {
	ID           int64          `db:"id"`
	PodcastID    int64          `db:"podcast_id"`
	Title        string         `db:"title"`
	URL          string         `db:"url"`
	GUID         string         `db:"guid"`
	Description  string         `db:"description"`
	Pubdate      sql.NullInt64  `db:"pubdate"`
	Duration     sql.NullInt64  `db:"duration"`
	Played       bool           `db:"played"`
	Hidden       bool           `db:"hidden"`
	LastPosition int64          `db:"last_position"`
	ImageURL     string         `db:"image_url"`
	FilePath     sql.NullString `db:"file_path"`
}

func (e *EpisodeDB) toModel() *model.Episode {
	var pubdate *time.Time

	if e.Pubdate.Valid {
		t := time.Unix(e.Pubdate.Int64, 0).UTC()
		pubdate = &t
	}

	var duration *int64
	if e.Duration.Valid {
		duration = &e.Duration.Int64
	}

	var file *string
	if e.FilePath.Valid {
		file = &e.FilePath.String
	}

	return &model.Episode{
		ID:           e.ID,
		PodcastID:    e.PodcastID,
		Title:        e.Title,
		URL:          e.URL,
		GUID:         e.GUID,
		Description:  e.Description,
		Pubdate:      pubdate,
		Duration:     duration,
		Played:       e.Played,
		Hidden:       e.Hidden,
		LastPosition: e.LastPosition,
		ImageURL:     e.ImageURL,
		File:         file,
	}
}

func episodesFromDb(rows []EpisodeDB) []model.Episode {
	episodes := make([]model.Episode, len(rows))
	for i, row := range rows {
		episodes[i] = *row.toModel()
	}

	return episodes
}

//------------------------------------------------------------------------------

func timestampOrNull(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func int64OrNull(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: *v, Valid: true}
}

func boolOrNull(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}

	return sql.NullBool{Bool: *v, Valid: true}
}
