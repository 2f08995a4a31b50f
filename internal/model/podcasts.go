package model

//
// podcasts.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Podcast is a persisted podcast with its episodes attached.
type Podcast struct {
	ID          int64
	Title       string
	URL         string
	Description string
	Author      string
	Explicit    *bool
	ImageURL    string
	LastChecked time.Time
	Episodes    []Episode
}

// SortTitle return title for display ordering: lower-cased, one leading
// article stripped. Computed at read time, never stored.
func (p *Podcast) SortTitle() string {
	return SortTitle(p.Title)
}

func (p *Podcast) MarshalZerologObject(event *zerolog.Event) {
	event.Int64("id", p.ID).
		Str("title", p.Title).
		Str("url", p.URL).
		Int("episodes", len(p.Episodes))
}

// PodcastMeta hold feed content for a podcast before it got a database
// identity; produced by the feed parser, consumed by the storage gateway.
type PodcastMeta struct {
	Title       string
	URL         string
	Description string
	Author      string
	Explicit    *bool
	ImageURL    string
	LastChecked time.Time
	Episodes    []EpisodeMeta
}

type Podcasts []Podcast

func (p Podcasts) ToURLs() []string {
	urls := make([]string, len(p))
	for i, pod := range p {
		urls[i] = pod.URL
	}

	return urls
}

// SortForDisplay order podcasts by the article-stripped title.
func (p Podcasts) SortForDisplay() {
	slices.SortStableFunc(p, func(a, b Podcast) int {
		return strings.Compare(a.SortTitle(), b.SortTitle())
	})
}

// sortTitleArticles must keep the trailing space; "anomaly" is not "a nomaly".
var sortTitleArticles = []string{"a ", "an ", "the "}

// SortTitle lower-case the title and strip a single leading article.
func SortTitle(title string) string {
	lower := strings.ToLower(title)
	for _, article := range sortTitleArticles {
		if rest, ok := strings.CutPrefix(lower, article); ok {
			return rest
		}
	}

	return lower
}
