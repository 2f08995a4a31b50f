//
// episodes.go
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
	"gitlab.com/kabes/go-podcatcher/internal/service"
)

func newMarkPlayedCmd() *cli.Command {
	return &cli.Command{
		Name:  "played",
		Usage: "mark an episode (or whole podcast) as played",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "episode", Aliases: []string{"e"}},
			&cli.Int64Flag{Name: "podcast", Aliases: []string{"p"}},
			&cli.BoolFlag{Name: "unset", Usage: "mark as not played"},
		},
		Action: wrap(markPlayedCmd),
	}
}

//nolint:forbidigo
func markPlayedCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	episodesSrv := do.MustInvoke[*service.EpisodesSrv](injector)
	played := !clicmd.Bool("unset")

	switch {
	case clicmd.Int64("episode") != 0:
		if err := episodesSrv.SetPlayed(ctx, clicmd.Int64("episode"), played); err != nil {
			return err //nolint:wrapcheck
		}

	case clicmd.Int64("podcast") != 0:
		if err := episodesSrv.SetAllPlayed(ctx, clicmd.Int64("podcast"), played); err != nil {
			return err //nolint:wrapcheck
		}

	default:
		return errMissingArgument("episode or podcast")
	}

	fmt.Println("Done")

	return nil
}

func newHideEpisodeCmd() *cli.Command {
	return &cli.Command{
		Name:  "hide",
		Usage: "hide an episode from listings; it will not come back on next sync",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "episode", Required: true, Aliases: []string{"e"}},
			&cli.BoolFlag{Name: "unset", Usage: "unhide"},
		},
		Action: wrap(hideEpisodeCmd),
	}
}

//nolint:forbidigo
func hideEpisodeCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	episodesSrv := do.MustInvoke[*service.EpisodesSrv](injector)

	if err := episodesSrv.Hide(ctx, clicmd.Int64("episode"), !clicmd.Bool("unset")); err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Println("Done")

	return nil
}

func newSetPositionCmd() *cli.Command {
	return &cli.Command{
		Name:  "position",
		Usage: "store last playback position of an episode",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "episode", Required: true, Aliases: []string{"e"}},
			&cli.Int64Flag{Name: "seconds", Required: true, Aliases: []string{"s"}},
		},
		Action: wrap(setPositionCmd),
	}
}

//nolint:forbidigo
func setPositionCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	episodesSrv := do.MustInvoke[*service.EpisodesSrv](injector)

	err := episodesSrv.SetLastPosition(ctx, clicmd.Int64("episode"), clicmd.Int64("seconds"))
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Println("Done")

	return nil
}
