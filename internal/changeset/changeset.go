// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package changeset obtains row-level changeset reports for GeoPackage
// inputs. The changeset itself is computed by an external binary-diff tool;
// this package only invokes it (or reads a pre-computed report file) and
// validates the report shape before handing it to the result builder.
package changeset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/geodiff/geodiff/internal/config"
	"github.com/geodiff/geodiff/internal/diff"
	"github.com/geodiff/geodiff/internal/log"
	"github.com/geodiff/geodiff/internal/runner"
)

// DefaultTool is the external changeset-computation binary invoked when the
// config key "gpkg.tool" does not name one.
const DefaultTool = "geodiff-cli"

// Parse validates and decodes a changeset report: a list of per-table entries
// each carrying change records tagged insert/update/delete. Records stay
// opaque beyond that tag.
func Parse(data []byte) ([]diff.TableChanges, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("changeset report is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("changeset report root must be an array of table entries")
	}

	var tables []diff.TableChanges
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to decode changeset report: %w", err)
	}

	for i, table := range tables {
		if table.Table == "" {
			return nil, fmt.Errorf("changeset report entry %d is missing its table name", i)
		}
	}

	return tables, nil
}

// Load reads a pre-computed changeset report from a file.
func Load(path string) ([]diff.TableChanges, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read changeset report %s: %w", path, err)
	}
	return Parse(data)
}

// Compute invokes the external changeset tool against two GeoPackage files
// and parses its JSON report. The tool is resolved from the "gpkg.tool"
// config key, falling back to DefaultTool.
func Compute(ctx context.Context, basePath, comparePath string) ([]diff.TableChanges, error) {
	tool, _ := config.GetString("gpkg.tool", DefaultTool)

	if !runner.Available(tool) {
		return nil, fmt.Errorf("changeset tool %q not found on PATH", tool)
	}

	log.Debugf("computing changeset: tool=%s base=%s compare=%s", tool, basePath, comparePath)

	out, err := runner.Output(ctx, tool, "diff", "--json", basePath, comparePath)
	if err != nil {
		return nil, fmt.Errorf("changeset tool failed: %w", err)
	}

	return Parse([]byte(out))
}
