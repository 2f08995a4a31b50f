package common

//
// logging.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

// Common log field names.
const (
	LogKeySyncID     = "sync_id"
	LogKeyFeed       = "feed"
	LogKeyPodcastID  = "podcast_id"
	LogKeyPodcastURL = "podcast_url"
	LogKeyEpisodeID  = "episode_id"
)
