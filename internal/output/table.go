// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package output renders diff summaries for humans at a terminal. The wire
// formats (json/geojson/summary text) live in the diff package; this is the
// styled presentation layer on top of them.
package output

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/geodiff/geodiff/internal/diff"
)

// SummaryTable renders the result's counter block as a terminal table.
// Output is written to w. If w is nil, os.Stdout is used.
func SummaryTable(r *diff.Result, color bool, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// We initialize the table styles.
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if color {
		isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
		headerStyle = headerStyle.Foreground(pick(isDark, "#f6be00", "#b08800"))
		evenRowStyle = evenRowStyle.Foreground(pick(isDark, "#ffffff", "#333333"))
		oddRowStyle = oddRowStyle.Foreground(pick(isDark, "#00c8f0", "#0088a0"))
	}

	rows := summaryRows(r.Summary)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers("Change Type", "Count").
		BorderHeader(false).
		Rows(rows...)

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s vs %s", r.BaseFile, r.CompareFile)))
	fmt.Fprintln(w, t)
}

// summaryRows flattens either summary shape into label/count rows in the
// fixed presentation order.
func summaryRows(s diff.Summary) [][]string {
	switch s := s.(type) {
	case diff.FeatureSummary:
		return [][]string{
			{"Added", strconv.Itoa(s.AddedCount)},
			{"Removed", strconv.Itoa(s.RemovedCount)},
			{"Modified", strconv.Itoa(s.ModifiedCount)},
			{"Unchanged", strconv.Itoa(s.UnchangedCount)},
			{"Total (base)", strconv.Itoa(s.TotalBase)},
			{"Total (compare)", strconv.Itoa(s.TotalCompare)},
		}
	case diff.ChangesetSummary:
		return [][]string{
			{"Total Changes", strconv.Itoa(s.TotalChanges)},
			{"Inserts", strconv.Itoa(s.Inserts)},
			{"Updates", strconv.Itoa(s.Updates)},
			{"Deletes", strconv.Itoa(s.Deletes)},
		}
	}
	return nil
}

func pick(dark bool, darkColor, lightColor string) color.Color {
	if dark {
		return lipgloss.Color(darkColor)
	}
	return lipgloss.Color(lightColor)
}
