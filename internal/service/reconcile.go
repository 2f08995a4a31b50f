package service

//
// reconcile.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"time"

	"gitlab.com/kabes/go-podcatcher/internal/model"
)

// episodeUpdate is one in-place metadata rewrite queued by reconciliation.
type episodeUpdate struct {
	id   int64
	meta model.EpisodeMeta
}

// reconcilePlan is the minimal write set for one podcast: episodes to
// insert (oldest first) and episodes to rewrite in place.
type reconcilePlan struct {
	inserts []model.EpisodeMeta
	updates []episodeUpdate
}

// fallbackMatchScore is the number of agreeing fields out of
// {title, url, pubdate} required for a guid-less match.
const fallbackMatchScore = 2

// reconcileEpisodes match incoming episodes against the stored snapshot
// and compute the write set.
//
// `existing` must be ordered most recent first and include hidden
// episodes, so a hidden episode reappearing in the feed is never
// re-inserted. `incoming` keeps feed document order and is processed in
// reverse, so new episodes are inserted oldest first.
//
// Matching is two tier: a non-empty guid wins outright; without a guid
// hit an existing episode agreeing on at least two of title, url and
// publish date (date compared only when both sides have one) is taken.
// Two dateless episodes agreeing on title and url therefore match.
func reconcileEpisodes(existing []model.Episode, incoming []model.EpisodeMeta) reconcilePlan {
	byGUID := make(map[string]*model.Episode, len(existing))

	for idx := range existing {
		if guid := existing[idx].GUID; guid != "" {
			if _, ok := byGUID[guid]; !ok {
				byGUID[guid] = &existing[idx]
			}
		}
	}

	var plan reconcilePlan

	for idx := len(incoming) - 1; idx >= 0; idx-- {
		inc := incoming[idx]

		matched := matchEpisode(existing, byGUID, &inc)
		if matched == nil {
			plan.inserts = append(plan.inserts, inc)

			continue
		}

		if episodeMetaChanged(matched, &inc) {
			plan.updates = append(plan.updates, episodeUpdate{id: matched.ID, meta: inc})
		}
	}

	return plan
}

func matchEpisode(existing []model.Episode, byGUID map[string]*model.Episode,
	inc *model.EpisodeMeta,
) *model.Episode {
	if inc.GUID != "" {
		if hit, ok := byGUID[inc.GUID]; ok {
			return hit
		}
	}

	for idx := range existing {
		old := &existing[idx]

		score := 0
		if old.Title == inc.Title {
			score++
		}

		if old.URL == inc.URL {
			score++
		}

		if old.Pubdate != nil && inc.Pubdate != nil && old.Pubdate.Equal(*inc.Pubdate) {
			score++
		}

		if score >= fallbackMatchScore {
			return old
		}
	}

	return nil
}

// episodeMetaChanged report whether any column rewritten by sync differs.
// Playback state is not compared; it is never touched by updates.
func episodeMetaChanged(old *model.Episode, inc *model.EpisodeMeta) bool {
	return old.Title != inc.Title ||
		old.URL != inc.URL ||
		old.GUID != inc.GUID ||
		old.Description != inc.Description ||
		!sameTime(old.Pubdate, inc.Pubdate) ||
		!sameInt64(old.Duration, inc.Duration)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equal(*b)
}

func sameInt64(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}
