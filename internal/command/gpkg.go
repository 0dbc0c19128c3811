// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/geodiff/geodiff/internal/action"
	"github.com/geodiff/geodiff/internal/changeset"
	"github.com/geodiff/geodiff/internal/config"
	"github.com/geodiff/geodiff/internal/diff"
	"github.com/geodiff/geodiff/internal/meta"
)

// gpkgCommandAction is the action handler for the "gpkg" subcommand. The
// row-level changeset comes from the external changeset tool (or a
// pre-computed report file); this command only folds it into the common
// result/output contract.
func gpkgCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "gpkg"

	base := cmd.Args().Get(0)
	compare := cmd.Args().Get(1)
	if base == "" {
		base = action.GetInput("base_file")
	}
	if compare == "" {
		compare = action.GetInput("compare_file")
	}
	if base == "" || compare == "" {
		return fmt.Errorf("gpkg requires a base and a compare file")
	}

	for _, p := range []string{base, compare} {
		if ext := strings.ToLower(filepath.Ext(p)); ext != ".gpkg" {
			return fmt.Errorf("unsupported file format: %s. Only .gpkg is supported here", ext)
		}
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

	var tables []diff.TableChanges
	if report := cmd.String("report"); report != "" {
		tables, err = changeset.Load(report)
	} else {
		tables, err = changeset.Compute(ctx, basePath, comparePath)
	}
	if err != nil {
		return err
	}

	r := diff.BuildChangeset(base, compare, tables)

	return emitResult(cmd, r)
}

// gpkgCommandBuilder constructs the cli.Command for "gpkg", wiring metadata,
// flags, and the action handler.
func gpkgCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "gpkg",
		Usage:     "compare two GeoPackage files via an external changeset tool",
		UsageText: "geodiff gpkg <base> <compare> [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewFormatFlag("gpkg", m.Config.Source),
			&cli.StringFlag{
				Name:  "report",
				Usage: "pre-computed changeset report file (skips the external tool)",
			},
			NewProfileFlag(),
			NewRegionFlag(),
			colorFlag,
			compactFlag,
			stepSummaryFlag,
			tableFlag,
		},
		Action: gpkgCommandAction,
	}
}
