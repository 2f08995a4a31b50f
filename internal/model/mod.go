// Package model provide objects used between the cli layer and services.
package model

//
// mod.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

// SyncResult is the outcome of inserting or updating one podcast: episodes
// added to the catalog and ids of episodes whose metadata changed in place.
type SyncResult struct {
	Added   []NewEpisode
	Updated []int64
}

// NewEpisode describe one freshly inserted episode; podcast id and title are
// carried along for notifications.
type NewEpisode struct {
	ID           int64
	PodcastID    int64
	Title        string
	PodcastTitle string
}

// SyncSummary aggregate the outcome of one batch sync.
type SyncSummary struct {
	Added   int
	Updated int
	Failed  []Feed
}

func (s *SyncSummary) Ok() bool {
	return len(s.Failed) == 0
}
