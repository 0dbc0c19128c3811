// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package action

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/geodiff/geodiff/internal/diff"
)

// Input is one name/value pair echoed into the step summary's inputs table.
type Input struct {
	Name  string
	Value string
}

// AppendStepSummary appends markdown/HTML lines to the job's step summary.
// Outside of Actions (no GITHUB_STEP_SUMMARY) it is a no-op.
func AppendStepSummary(lines ...string) error {
	path := os.Getenv("GITHUB_STEP_SUMMARY")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open step summary file: %w", err)
	}
	defer f.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return fmt.Errorf("failed to write step summary: %w", err)
		}
	}
	return nil
}

// WriteStepSummary renders the result as the action's step summary: a results
// table of change-type counts, the inputs echoed in a collapsed details
// block, and an issues link when the repository is known.
func WriteStepSummary(r *diff.Result, inputs []Input) error {
	lines := []string{
		"### GeoDiff Action Results",
		fmt.Sprintf("**Base file:** `%s` (%s)", r.BaseFile, fileSize(r.BaseFile)),
		fmt.Sprintf("**Compare file:** `%s` (%s)", r.CompareFile, fileSize(r.CompareFile)),
		fmt.Sprintf("**Changes detected:** %s", yesNo(r.HasChanges)),
		"",
		resultsTable(r.Summary),
		"",
		inputsDetails(inputs),
	}

	if url := issuesURL(); url != "" {
		lines = append(lines, "", fmt.Sprintf("[Report an issue or request a feature](%s)", url))
	}

	return AppendStepSummary(lines...)
}

// resultsTable renders the change-type/count HTML table, branching on the
// summary strategy the way every consumer of the tagged union must.
func resultsTable(s diff.Summary) string {
	var b strings.Builder
	b.WriteString("<table><tr><th>Change Type</th><th>Count</th></tr>")

	switch s := s.(type) {
	case diff.FeatureSummary:
		fmt.Fprintf(&b, "<tr><td>Added</td><td>%d</td></tr>", s.AddedCount)
		fmt.Fprintf(&b, "<tr><td>Removed</td><td>%d</td></tr>", s.RemovedCount)
		fmt.Fprintf(&b, "<tr><td>Modified</td><td>%d</td></tr>", s.ModifiedCount)
		fmt.Fprintf(&b, "<tr><td>Unchanged</td><td>%d</td></tr>", s.UnchangedCount)
	case diff.ChangesetSummary:
		fmt.Fprintf(&b, "<tr><td>Total Changes</td><td>%d</td></tr>", s.TotalChanges)
		fmt.Fprintf(&b, "<tr><td>Inserts</td><td>%d</td></tr>", s.Inserts)
		fmt.Fprintf(&b, "<tr><td>Updates</td><td>%d</td></tr>", s.Updates)
		fmt.Fprintf(&b, "<tr><td>Deletes</td><td>%d</td></tr>", s.Deletes)
	}

	b.WriteString("</table>")
	return b.String()
}

// inputsDetails renders the echoed inputs as a collapsed details block.
func inputsDetails(inputs []Input) string {
	var b strings.Builder
	b.WriteString("<details><summary>Inputs</summary><table><tr><th>Input</th><th>Value</th></tr>")
	for _, in := range inputs {
		value := in.Value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>",
			html.EscapeString(in.Name), html.EscapeString(value))
	}
	b.WriteString("</table></details>")
	return b.String()
}

// issuesURL derives the repository's issues page from the runner environment.
func issuesURL() string {
	server := os.Getenv("GITHUB_SERVER_URL")
	repo := os.Getenv("GITHUB_REPOSITORY")
	if server == "" || repo == "" {
		return ""
	}
	return server + "/" + repo + "/issues"
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "unknown size"
	}
	return humanize.Bytes(uint64(info.Size()))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
