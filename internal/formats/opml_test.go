package formats

//
// opml_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"strings"
	"testing"

	"gitlab.com/kabes/go-podcatcher/internal/assert"
)

const testOPML = `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
<head><title>subscriptions</title></head>
<body>
	<outline type="rss" title="First Cast" xmlUrl="http://one.example.com/feed"/>
	<outline type="rss" text="Second Cast" xmlUrl="http://two.example.com/feed"/>
	<outline type="rss" xmlUrl="http://three.example.com/feed"/>
	<outline text="news">
		<outline type="rss" title="Nested Cast" xmlUrl="http://four.example.com/feed"/>
	</outline>
	<outline text="group without feeds"/>
</body>
</opml>`

func TestOPMLFeeds(t *testing.T) {
	t.Parallel()

	opml, err := NewOPMLFromBytes([]byte(testOPML))
	assert.NoErr(t, err)
	assert.Equal(t, opml.Head.Title, "subscriptions")

	feeds := opml.Feeds()
	assert.Equal(t, len(feeds), 4)

	assert.Equal(t, feeds[0].URL, "http://one.example.com/feed")
	assert.NotNil(t, feeds[0].Title)
	assert.Equal(t, *feeds[0].Title, "First Cast")

	// title attribute missing, text attribute used
	assert.NotNil(t, feeds[1].Title)
	assert.Equal(t, *feeds[1].Title, "Second Cast")

	// no title at all
	assert.Nil(t, feeds[2].Title)

	// nested outline group
	assert.Equal(t, feeds[3].URL, "http://four.example.com/feed")
	assert.Equal(t, *feeds[3].Title, "Nested Cast")
}

func TestOPMLFromInvalidBytes(t *testing.T) {
	t.Parallel()

	_, err := NewOPMLFromBytes([]byte("not an opml"))
	assert.Err(t, err)
}

func TestOPMLExport(t *testing.T) {
	t.Parallel()

	opml := NewOPML("podcasts")
	opml.AddRSS("http://one.example.com/feed", "First Cast")
	opml.AddRSS("http://two.example.com/feed", "Second Cast")

	data, err := opml.XML()
	assert.NoErr(t, err)

	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.True(t, strings.Contains(doc, `xmlUrl="http://one.example.com/feed"`))
	assert.True(t, strings.Contains(doc, `title="Second Cast"`))

	// round trip
	parsed, err := NewOPMLFromBytes(data)
	assert.NoErr(t, err)
	assert.Equal(t, len(parsed.Feeds()), 2)
}
