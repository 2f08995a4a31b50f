// Package formats implement subscription-list interchange documents.
package formats

//
// opml.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"encoding/xml"
	"fmt"
	"time"

	"gitlab.com/kabes/go-podcatcher/internal/model"
)

type OPML struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    Head     `xml:"head"`
	Body    Body     `xml:"body"`
}

type Head struct {
	Title       string `xml:"title"`
	DateCreated string `xml:"dateCreated,omitempty"`
}

type Body struct {
	Outlines []Outline `xml:"outline"`
}

type Outline struct {
	Title    string    `xml:"title,attr,omitempty"`
	Text     string    `xml:"text,attr,omitempty"`
	Type     string    `xml:"type,attr,omitempty"`
	XMLURL   string    `xml:"xmlUrl,attr,omitempty"`
	Outlines []Outline `xml:"outline,omitempty"`
}

func NewOPML(title string) OPML {
	return OPML{
		Version: "2.0",
		Head: Head{
			Title:       title,
			DateCreated: time.Now().UTC().Format(time.RFC1123Z),
		},
	}
}

func NewOPMLFromBytes(b []byte) (OPML, error) {
	var o OPML

	if err := xml.Unmarshal(b, &o); err != nil {
		return o, fmt.Errorf("unmarshal opml error: %w", err)
	}

	return o, nil
}

func (o *OPML) XML() ([]byte, error) {
	b, err := xml.MarshalIndent(o, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("marshal opml error: %w", err)
	}

	return append([]byte(xml.Header), b...), nil
}

func (o *OPML) AddRSS(url, title string) {
	outline := Outline{Type: "rss", XMLURL: url, Title: title, Text: title}
	o.Body.Outlines = append(o.Body.Outlines, outline)
}

// Feeds collect feeds from the document, walking nested outline groups.
// Outlines without an url are skipped; a feed title falls back from the
// title attribute to the text attribute, otherwise stays empty.
func (o *OPML) Feeds() []model.Feed {
	return collectFeeds(nil, o.Body.Outlines)
}

func collectFeeds(feeds []model.Feed, outlines []Outline) []model.Feed {
	for _, outline := range outlines {
		if outline.XMLURL != "" {
			var title *string

			switch {
			case outline.Title != "":
				title = &outline.Title
			case outline.Text != "":
				title = &outline.Text
			}

			feeds = append(feeds, model.NewFeed(nil, outline.XMLURL, title))
		}

		feeds = collectFeeds(feeds, outline.Outlines)
	}

	return feeds
}
