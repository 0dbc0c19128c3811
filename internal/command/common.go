// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/geodiff/geodiff/internal/action"
	"github.com/geodiff/geodiff/internal/diff"
	"github.com/geodiff/geodiff/internal/meta"
	"github.com/geodiff/geodiff/internal/output"
	"github.com/geodiff/geodiff/internal/remote"
	"github.com/geodiff/geodiff/internal/tmputil"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// resolveInput turns a raw input reference into a local file path the loader
// can read. s3:// URIs are fetched to a temp file; the returned cleanup
// removes it. Local paths pass through with a no-op cleanup.
func resolveInput(ctx context.Context, cmd *cli.Command, raw string) (string, func(), error) {
	if remote.IsS3(raw) {
		var opts []remote.Option
		if p := cmd.String("profile"); p != "" {
			opts = append(opts, remote.WithProfile(p))
		}
		if r := cmd.String("region"); r != "" {
			opts = append(opts, remote.WithRegion(r))
		}

		path, err := remote.Fetch(ctx, raw, opts...)
		if err != nil {
			return "", nil, err
		}
		return path, func() { tmputil.Remove(path) }, nil
	}

	return raw, func() {}, nil
}

// emitResult is the shared back half of every comparison command: render the
// result, print it (grouped inside a pipeline log), publish step outputs, and
// optionally the table view, delta view and step summary.
func emitResult(cmd *cli.Command, r *diff.Result) error {
	format := cmd.String("format")

	formatted, err := diff.Format(r, format)
	if err != nil {
		return err
	}

	printed := formatted
	if format == diff.ModeJSON && cmd.Bool("compact") {
		if printed, err = diff.FormatCompact(r); err != nil {
			return err
		}
	}

	action.Group("Diff Result")
	fmt.Fprintln(os.Stdout, printed)
	action.EndGroup()

	if cmd.Bool("table") {
		output.SummaryTable(r, cmd.Bool("color"), os.Stdout)
	}

	if cmd.Bool("delta") {
		if err := diff.RenderDeltas(r, os.Stdout, cmd.Bool("color")); err != nil {
			log.WithError(err).Warn("failed to render deltas")
		}
	}

	if err := publishOutputs(cmd, r, formatted); err != nil {
		return err
	}

	if cmd.Bool("summary") {
		inputs := []action.Input{
			{Name: "base_file", Value: r.BaseFile},
			{Name: "compare_file", Value: r.CompareFile},
			{Name: "output_format", Value: format},
		}
		if err := action.WriteStepSummary(r, inputs); err != nil {
			log.WithError(err).Warn("failed to write step summary")
		}
	}

	return nil
}

// publishOutputs writes the step outputs consumed by downstream pipeline
// steps. The json format is re-rendered compact so the output value stays a
// single line; other formats have their newlines escaped instead.
func publishOutputs(cmd *cli.Command, r *diff.Result, formatted string) error {
	value := formatted
	if cmd.String("format") == diff.ModeJSON {
		compact, err := diff.FormatCompact(r)
		if err != nil {
			return err
		}
		value = compact
	} else {
		value = action.EscapeNewlines(formatted)
	}

	if err := action.SetOutput("diff_result", value); err != nil {
		return err
	}
	return action.SetOutput("has_changes", fmt.Sprintf("%t", r.HasChanges))
}
