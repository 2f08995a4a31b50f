package common

//
// Common application errors
//
// errors.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"

	"gitlab.com/kabes/go-podcatcher/internal/aerr"
)

var (
	// ErrNoResponse is returned by the feed client after the retry budget
	// for one url is exhausted.
	ErrNoResponse = aerr.NewSimple("no response from feed").WithTag(aerr.TransportError)

	ErrUnknownPodcast = aerr.NewSimple("unknown podcast").WithTag(aerr.ValidationError)
	ErrUnknownEpisode = aerr.NewSimple("unknown episode").WithTag(aerr.ValidationError)
	ErrPodcastExists  = aerr.NewSimple("podcast url already exists").
				WithUserMsg("podcast with this url already exists")
)

var ErrNoData = errors.New("no result")
