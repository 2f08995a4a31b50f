package feed

//
// parser.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/model"
)

// Parse read feed document and map it to catalog-independent metadata
// with episodes in document order.
// Missing item fields are tolerated; whole-document syntax errors are not.
func Parse(data []byte, url string) (*model.PodcastMeta, error) {
	fp := gofeed.NewParser()

	feed, err := fp.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, aerr.ApplyFor(aerr.ErrFeedParse, err).WithMeta("url", url)
	}

	podcast := model.PodcastMeta{
		Title:       feed.Title,
		URL:         url,
		Description: feed.Description,
		ImageURL:    feedImageURL(feed),
	}

	if feed.ITunesExt != nil {
		podcast.Author = feed.ITunesExt.Author
		podcast.Explicit = parseExplicit(feed.ITunesExt.Explicit)
	}

	podcast.Episodes = make([]model.EpisodeMeta, 0, len(feed.Items))

	for _, item := range feed.Items {
		podcast.Episodes = append(podcast.Episodes, itemToEpisode(item))
	}

	return &podcast, nil
}

func itemToEpisode(item *gofeed.Item) model.EpisodeMeta {
	episode := model.EpisodeMeta{
		Title:       item.Title,
		URL:         enclosureURL(item),
		GUID:        item.GUID,
		Description: item.Description,
		Pubdate:     item.PublishedParsed,
	}

	if item.Image != nil {
		episode.ImageURL = item.Image.URL
	}

	if item.ITunesExt != nil {
		episode.Duration = ParseDuration(item.ITunesExt.Duration)

		if episode.ImageURL == "" {
			episode.ImageURL = item.ITunesExt.Image
		}
	}

	return episode
}

func enclosureURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			return enc.URL
		}
	}

	return ""
}

func feedImageURL(feed *gofeed.Feed) string {
	if feed.Image != nil && feed.Image.URL != "" {
		return feed.Image.URL
	}

	if feed.ITunesExt != nil {
		return feed.ITunesExt.Image
	}

	return ""
}

// parseExplicit normalize the itunes explicit flag; unrecognized values
// map to unknown.
func parseExplicit(value string) *bool {
	res := new(bool)

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "explicit", "true":
		*res = true
	case "no", "clean", "false":
		*res = false
	default:
		return nil
	}

	return res
}

// ParseDuration convert "HH:MM:SS", "MM:SS" or "SS" into seconds.
// Any component that is not a non-negative integer invalidates the
// whole value.
func ParseDuration(value string) *int64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	var total int64

	for part := range strings.SplitSeq(value, ":") {
		num, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || num < 0 {
			return nil
		}

		total = total*60 + num
	}

	return &total
}
