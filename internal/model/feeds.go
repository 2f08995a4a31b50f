package model

//
// feeds.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import "github.com/rs/zerolog"

// Feed is one sync job input: an existing subscription (ID set) or a feed
// not stored yet (ID nil). Title is a display hint, present only when known.
type Feed struct {
	ID    *int64
	URL   string
	Title *string
}

func NewFeed(id *int64, url string, title *string) Feed {
	return Feed{ID: id, URL: url, Title: title}
}

// DisplayName return the best available human readable name.
func (f *Feed) DisplayName() string {
	if f.Title != nil && *f.Title != "" {
		return *f.Title
	}

	return f.URL
}

func (f Feed) MarshalZerologObject(event *zerolog.Event) {
	event.Str("url", f.URL)

	if f.ID != nil {
		event.Int64("id", *f.ID)
	}

	if f.Title != nil {
		event.Str("title", *f.Title)
	}
}
