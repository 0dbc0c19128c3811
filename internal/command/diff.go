// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/geodiff/geodiff/internal/action"
	"github.com/geodiff/geodiff/internal/config"
	"github.com/geodiff/geodiff/internal/diff"
	"github.com/geodiff/geodiff/internal/gitutil"
	"github.com/geodiff/geodiff/internal/meta"
	"github.com/geodiff/geodiff/internal/tmputil"
)

// diffCommandAction is the action handler for the "diff" subcommand. It
// resolves both inputs (positional, action inputs, s3://, or the previous
// commit in history mode), computes the feature diff, and emits results per
// common flags.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	base := cmd.Args().Get(0)
	compare := cmd.Args().Get(1)

	// Action-style invocation carries file references as step inputs instead
	// of positionals.
	if base == "" {
		base = action.GetInput("base_file")
	}
	if compare == "" {
		compare = action.GetInput("compare_file")
	}

	if cmd.Bool("history") {
		if base == "" {
			return fmt.Errorf("history mode requires a file to compare against its previous revision")
		}
		if compare != "" {
			return fmt.Errorf("history mode takes a single file, got two")
		}

		extracted, cleanup, err := extractPrevious(ctx, base, cmd.Int("offset"))
		if err != nil {
			return err
		}
		defer cleanup()

		compare = base
		base = extracted
	}

	if base == "" || compare == "" {
		return fmt.Errorf("diff requires a base and a compare file")
	}

	basePath, baseCleanup, err := resolveInput(ctx, cmd, base)
	if err != nil {
		return err
	}
	defer baseCleanup()

	comparePath, compareCleanup, err := resolveInput(ctx, cmd, compare)
	if err != nil {
		return err
	}
	defer compareCleanup()

	r, err := diff.Build(basePath, comparePath)
	if err != nil {
		return err
	}

	// Keep the caller-supplied references in the result so reports name the
	// inputs the user recognizes, not extraction temp paths.
	r.BaseFile = base
	r.CompareFile = compare
	if cmd.Bool("history") {
		r.BaseFile = fmt.Sprintf("%s@HEAD~%d", compare, cmd.Int("offset"))
	}

	return emitResult(cmd, r)
}

// extractPrevious extracts the file's content at HEAD~offset into a temp file
// and returns its path plus the cleanup the caller must run.
func extractPrevious(ctx context.Context, file string, offset int) (string, func(), error) {
	root, ok := gitutil.FindRepoRoot(ctx, file)
	if !ok {
		return "", nil, fmt.Errorf("%s is not inside a git repository", file)
	}

	rel, err := gitutil.RelPath(root, file)
	if err != nil {
		return "", nil, err
	}

	commit, err := gitutil.PreviousCommit(ctx, root, offset)
	if err != nil {
		return "", nil, err
	}
	log.Debugf("history mode: repo=%s file=%s commit=%s", root, rel, commit)

	extracted, err := gitutil.ExtractFileFromCommit(ctx, root, rel, commit)
	if err != nil {
		return "", nil, err
	}

	return extracted, func() { tmputil.Remove(extracted) }, nil
}

// diffCommandBuilder constructs the cli.Command for "diff", wiring metadata,
// flags, and the action handler.
func diffCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two GeoJSON files",
		UsageText: "geodiff diff <base> <compare> [options]\n   geodiff diff <file> --history [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewFormatFlag("diff", m.Config.Source),
			&cli.BoolFlag{
				Name:  "history",
				Usage: "compare a single file against its previous commit",
				Value: false,
			},
			&cli.IntFlag{
				Name:        "offset",
				Usage:       "commits to go back in history mode",
				Value:       1,
				HideDefault: true,
			},
			NewProfileFlag(),
			NewRegionFlag(),
			colorFlag,
			compactFlag,
			deltaFlag,
			stepSummaryFlag,
			tableFlag,
		},
		Action: diffCommandAction,
	}
}
