package service

// package.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.

import "github.com/samber/do/v2"

//nolint:gochecknoglobals
var Package = do.Package(
	do.Lazy(NewPodcastsSrv),
	do.Lazy(NewEpisodesSrv),
	do.Lazy(NewSyncSrv),
	do.Lazy(NewExpImpSrv),
)
