//
// expimp.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/service"
)

func newImportCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import subscriptions from an opml file and download the new feeds",
		ArgsUsage: "FILE",
		Action:    wrap(importCmd),
	}
}

//nolint:forbidigo
func importCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	filename := clicmd.Args().First()
	if filename == "" {
		return errMissingArgument("FILE")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return aerr.ApplyFor(aerr.ErrInvalidConf, err, "read import file failed").
			WithUserMsg("cannot read file " + filename)
	}

	expimpSrv := do.MustInvoke[*service.ExpImpSrv](injector)

	summary, skipped, err := expimpSrv.Import(ctx, data)
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Printf("Skipped %d already subscribed feeds\n", skipped)
	printSummary(summary)

	return nil
}

func newExportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "export subscriptions as an opml document; write to stdout without argument",
		ArgsUsage: "[FILE]",
		Action:    wrap(exportCmd),
	}
}

//nolint:forbidigo
func exportCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	expimpSrv := do.MustInvoke[*service.ExpImpSrv](injector)

	data, err := expimpSrv.Export(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if filename := clicmd.Args().First(); filename != "" {
		if err := os.WriteFile(filename, data, 0o644); err != nil { //nolint:mnd,gosec
			return aerr.ApplyFor(aerr.ErrInvalidConf, err, "write export file failed").
				WithUserMsg("cannot write file " + filename)
		}

		return nil
	}

	fmt.Println(string(data))

	return nil
}
