package model

//
// podcasts_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"

	"gitlab.com/kabes/go-podcatcher/internal/assert"
)

func TestSortTitle(t *testing.T) {
	cases := []struct{ title, want string }{
		{"The Daily", "daily"},
		{"A Show", "show"},
		{"An Evening", "evening"},
		{"Anomaly", "anomaly"},
		{"the daily", "daily"},
		{"THE DAILY", "daily"},
		{"Theater Talk", "theater talk"},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, SortTitle(c.title), c.want)
	}
}

func TestFormatDuration(t *testing.T) {
	dur := int64(3723)
	ep := Episode{Duration: &dur}
	assert.Equal(t, ep.FormatDuration(), "01:02:03")

	ep.Duration = nil
	assert.Equal(t, ep.FormatDuration(), "--:--:--")
}

func TestFeedDisplayName(t *testing.T) {
	title := "My Show"
	feed := NewFeed(nil, "http://example.com/rss", &title)
	assert.Equal(t, feed.DisplayName(), "My Show")

	feed = NewFeed(nil, "http://example.com/rss", nil)
	assert.Equal(t, feed.DisplayName(), "http://example.com/rss")

	empty := ""
	feed = NewFeed(nil, "http://example.com/rss", &empty)
	assert.Equal(t, feed.DisplayName(), "http://example.com/rss")
}
