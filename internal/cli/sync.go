//
// sync.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package cli

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-podcatcher/internal/model"
	"gitlab.com/kabes/go-podcatcher/internal/service"
)

func newSyncCmd() *cli.Command {
	return &cli.Command{
		Name:      "sync",
		Usage:     "download feeds and update the catalog; without arguments sync all subscriptions",
		ArgsUsage: "[URL...]",
		Action:    wrap(syncCmd),
	}
}

//nolint:forbidigo
func syncCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	syncSrv := do.MustInvoke[*service.SyncSrv](injector)

	var summary *model.SyncSummary

	var err error

	if urls := clicmd.Args().Slice(); len(urls) > 0 {
		feeds := make([]model.Feed, len(urls))
		for idx, url := range urls {
			feeds[idx] = model.NewFeed(nil, url, nil)
		}

		summary, err = syncSrv.SyncFeeds(ctx, feeds)
	} else {
		summary, err = syncSrv.RefreshAll(ctx)
	}

	if err != nil {
		return err //nolint:wrapcheck
	}

	printSummary(summary)

	return nil
}

//nolint:forbidigo
func printSummary(summary *model.SyncSummary) {
	fmt.Printf("Added: %d, updated: %d, failed: %d\n",
		summary.Added, summary.Updated, len(summary.Failed))

	for _, f := range summary.Failed {
		fmt.Printf("  failed: %s\n", f.DisplayName())
	}
}
