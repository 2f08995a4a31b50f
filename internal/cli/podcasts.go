//
// podcasts.go
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

func newAddPodcastCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "subscribe to a feed and download it",
		ArgsUsage: "URL",
		Action:    wrap(addPodcastCmd),
	}
}

//nolint:forbidigo
func addPodcastCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	url := clicmd.Args().First()
	if url == "" {
		return errMissingArgument("URL")
	}

	syncSrv := do.MustInvoke[*service.SyncSrv](injector)

	summary, err := syncSrv.SyncFeeds(ctx, []model.Feed{model.NewFeed(nil, url, nil)})
	if err != nil {
		return err //nolint:wrapcheck
	}

	printSummary(summary)

	return nil
}

func newListPodcastsCmd() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "list subscribed podcasts",
		Action: wrap(listPodcastsCmd),
	}
}

//nolint:forbidigo
func listPodcastsCmd(ctx context.Context, _ *cli.Command, injector do.Injector) error {
	podcastsSrv := do.MustInvoke[*service.PodcastsSrv](injector)

	podcasts, err := podcastsSrv.GetPodcasts(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Printf("%-6s | %-40s | %-8s | %s\n", "ID", "Title", "Episodes", "URL")
	fmt.Println("--------------------------------------------------------------------------------")

	for idx := range podcasts {
		p := &podcasts[idx]
		fmt.Printf("%-6d | %-40s | %-8d | %s\n", p.ID, p.Title, len(p.Episodes), p.URL)
	}

	fmt.Printf("\nTotal: %d\n", len(podcasts))

	return nil
}

func newListEpisodesCmd() *cli.Command {
	return &cli.Command{
		Name:  "episodes",
		Usage: "list episodes of one podcast",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "podcast", Required: true, Aliases: []string{"p"}},
			&cli.BoolFlag{Name: "hidden", Usage: "include hidden episodes"},
		},
		Action: wrap(listEpisodesCmd),
	}
}

//nolint:forbidigo
func listEpisodesCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	episodesSrv := do.MustInvoke[*service.EpisodesSrv](injector)

	episodes, err := episodesSrv.GetEpisodes(ctx, clicmd.Int64("podcast"), clicmd.Bool("hidden"))
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Printf("%-6s | %-50s | %-10s | %-6s | %s\n", "ID", "Title", "Pubdate", "Played", "Duration")
	fmt.Println("------------------------------------------------------------------------------------------")

	for idx := range episodes {
		e := &episodes[idx]

		pubdate := "-"
		if e.Pubdate != nil {
			pubdate = e.Pubdate.Format("2006-01-02")
		}

		played := ""
		if e.Played {
			played = "yes"
		}

		fmt.Printf("%-6d | %-50s | %-10s | %-6s | %s\n",
			e.ID, e.Title, pubdate, played, e.FormatDuration())
	}

	fmt.Printf("\nTotal: %d\n", len(episodes))

	return nil
}

func newRemovePodcastCmd() *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: "unsubscribe and delete a podcast with its episodes",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "podcast", Required: true, Aliases: []string{"p"}},
		},
		Action: wrap(removePodcastCmd),
	}
}

//nolint:forbidigo
func removePodcastCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	podcastsSrv := do.MustInvoke[*service.PodcastsSrv](injector)

	if err := podcastsSrv.RemovePodcast(ctx, clicmd.Int64("podcast")); err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Println("Podcast removed")

	return nil
}
