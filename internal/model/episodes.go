package model

//
// episodes.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Episode is a persisted episode. Played, Hidden and LastPosition are
// playback state; sync never touches them. File is the path of a local
// copy when one exists.
type Episode struct {
	ID           int64
	PodcastID    int64
	Title        string
	URL          string
	GUID         string
	Description  string
	Pubdate      *time.Time
	Duration     *int64
	Played       bool
	Hidden       bool
	LastPosition int64
	ImageURL     string
	File         *string
}

// FormatDuration render duration as HH:MM:SS, or a placeholder when the
// feed did not provide one.
func (e *Episode) FormatDuration() string {
	if e.Duration == nil {
		return "--:--:--"
	}

	seconds := *e.Duration
	hours := seconds / 3600
	seconds -= hours * 3600
	minutes := seconds / 60
	seconds -= minutes * 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func (e *Episode) MarshalZerologObject(event *zerolog.Event) {
	event.Int64("id", e.ID).
		Int64("podcast_id", e.PodcastID).
		Str("title", e.Title).
		Str("url", e.URL).
		Str("guid", e.GUID).
		Bool("played", e.Played).
		Bool("hidden", e.Hidden)
}

// EpisodeMeta hold feed content for an episode before it got a database
// identity. Before persistence an episode is identified only by the
// (guid, url, title, pubdate) tuple used for matching.
type EpisodeMeta struct {
	Title       string
	URL         string
	GUID        string
	Description string
	Pubdate     *time.Time
	Duration    *int64
	ImageURL    string
}

// SamePubdate report whether both sides carry a publish date and the dates
// are equal. A missing date on either side never counts as agreement.
func (e *EpisodeMeta) SamePubdate(other *time.Time) bool {
	if e.Pubdate == nil || other == nil {
		return false
	}

	return e.Pubdate.Equal(*other)
}
