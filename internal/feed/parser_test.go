package feed

//
// parser_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"

	"gitlab.com/kabes/go-podcatcher/internal/assert"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
<channel>
	<title>Test Cast</title>
	<description>about testing</description>
	<itunes:author>A. Author</itunes:author>
	<itunes:explicit>clean</itunes:explicit>
	<item>
		<title>Episode two</title>
		<guid>ep-2</guid>
		<description>second</description>
		<pubDate>Tue, 10 Feb 2026 10:00:00 +0000</pubDate>
		<enclosure url="http://cast.example.com/ep2.mp3" type="audio/mpeg" length="1"/>
		<itunes:duration>1:02:03</itunes:duration>
	</item>
	<item>
		<title>Episode one</title>
		<guid>ep-1</guid>
		<pubDate>Mon, 02 Feb 2026 10:00:00 +0000</pubDate>
		<enclosure url="http://cast.example.com/ep1.mp3" type="audio/mpeg" length="1"/>
	</item>
	<item>
		<title>Teaser</title>
	</item>
</channel>
</rss>`

func TestParse(t *testing.T) {
	t.Parallel()

	podcast, err := Parse([]byte(testFeed), "http://cast.example.com/feed.xml")
	assert.NoErr(t, err)
	assert.Equal(t, podcast.Title, "Test Cast")
	assert.Equal(t, podcast.URL, "http://cast.example.com/feed.xml")
	assert.Equal(t, podcast.Description, "about testing")
	assert.Equal(t, podcast.Author, "A. Author")
	assert.NotNil(t, podcast.Explicit)
	assert.Equal(t, *podcast.Explicit, false)
	assert.Equal(t, len(podcast.Episodes), 3)

	ep := podcast.Episodes[0]
	assert.Equal(t, ep.Title, "Episode two")
	assert.Equal(t, ep.GUID, "ep-2")
	assert.Equal(t, ep.URL, "http://cast.example.com/ep2.mp3")
	assert.NotNil(t, ep.Pubdate)
	assert.NotNil(t, ep.Duration)
	assert.Equal(t, *ep.Duration, int64(3723))

	// item without enclosure, guid and date is kept with empty fields
	teaser := podcast.Episodes[2]
	assert.Equal(t, teaser.Title, "Teaser")
	assert.Equal(t, teaser.URL, "")
	assert.Equal(t, teaser.GUID, "")
	assert.Nil(t, teaser.Pubdate)
	assert.Nil(t, teaser.Duration)
}

func TestParseInvalidDocument(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("this is not a feed"), "http://cast.example.com/feed.xml")
	assert.Err(t, err)
}

func TestParseExplicit(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"yes", "Explicit", "TRUE"} {
		res := parseExplicit(value)
		assert.NotNil(t, res)
		assert.True(t, *res)
	}

	for _, value := range []string{"no", "Clean", "false"} {
		res := parseExplicit(value)
		assert.NotNil(t, res)
		assert.True(t, !*res)
	}

	for _, value := range []string{"", "probably", "1"} {
		assert.Nil(t, parseExplicit(value))
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"1:02:03", 3723, true},
		{"02:03", 123, true},
		{"45", 45, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1:ab:03", 0, false},
		{"-1:02", 0, false},
	}

	for _, tc := range tests {
		res := ParseDuration(tc.input)
		if !tc.ok {
			assert.Nil(t, res)

			continue
		}

		assert.NotNil(t, res)
		assert.Equal(t, *res, tc.want)
	}
}
