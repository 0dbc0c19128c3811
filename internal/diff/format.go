// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/geodiff/geodiff/internal/geojson"
	"github.com/geodiff/geodiff/internal/log"
)

// StatusProperty is injected into each feature emitted by the geojson mode.
const StatusProperty = "_geodiff_status"

// Recognized output modes. Anything else falls back to ModeJSON.
const (
	ModeJSON    = "json"
	ModeGeoJSON = "geojson"
	ModeSummary = "summary"
)

// Format renders a Result in the requested mode. Deterministic and total over
// the recognized modes; an unrecognized mode renders as json rather than
// failing. The returned error only ever reflects a serialization fault.
func Format(r *Result, mode string) (string, error) {
	switch mode {
	case ModeSummary:
		return formatSummary(r), nil
	case ModeGeoJSON:
		if r.Changes != nil {
			return formatGeoJSON(r)
		}
		// Row-level changesets have no feature representation to overlay;
		// fall through to the full serialization.
		log.Debugf("geojson mode on a %s result, emitting json", r.Summary.Strategy())
	}

	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal diff result: %w", err)
	}
	return string(b), nil
}

// FormatCompact is the single-line variant of the json mode, used where the
// surrounding pipeline requires single-line values (e.g. step output files).
func FormatCompact(r *Result) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal diff result: %w", err)
	}
	return string(b), nil
}

// formatSummary renders the fixed-order human-readable counter block. The
// labels and two-space alignment are load-bearing: downstream text scraping
// depends on them.
func formatSummary(r *Result) string {
	header := fmt.Sprintf("GeoDiff Summary: %s vs %s", r.BaseFile, r.CompareFile)

	switch s := r.Summary.(type) {
	case FeatureSummary:
		return strings.Join([]string{
			header,
			fmt.Sprintf("  Added:     %d", s.AddedCount),
			fmt.Sprintf("  Removed:   %d", s.RemovedCount),
			fmt.Sprintf("  Modified:  %d", s.ModifiedCount),
			fmt.Sprintf("  Unchanged: %d", s.UnchangedCount),
			fmt.Sprintf("  Total (base):    %d", s.TotalBase),
			fmt.Sprintf("  Total (compare): %d", s.TotalCompare),
		}, "\n")
	case ChangesetSummary:
		return strings.Join([]string{
			header,
			fmt.Sprintf("  Total changes: %d", s.TotalChanges),
			fmt.Sprintf("  Inserts:   %d", s.Inserts),
			fmt.Sprintf("  Updates:   %d", s.Updates),
			fmt.Sprintf("  Deletes:   %d", s.Deletes),
		}, "\n")
	}

	return header
}

// overlay is the geojson-mode document: a standard FeatureCollection carrying
// only the delta features, each tagged with StatusProperty, plus the summary
// as a foreign member so generic tooling can visualize the diff directly.
type overlay struct {
	Type       string             `json:"type"`
	Features   []geojson.Feature  `json:"features"`
	Properties map[string]Summary `json:"properties"`
}

func formatGeoJSON(r *Result) (string, error) {
	features := make([]geojson.Feature, 0,
		len(r.Changes.Added)+len(r.Changes.Removed)+len(r.Changes.Modified))

	// Fixed emission order: added, removed, then modified. Unchanged features
	// are never surfaced here; only deltas are.
	for _, f := range r.Changes.Added {
		features = append(features, tagged(f, "added"))
	}
	for _, f := range r.Changes.Removed {
		features = append(features, tagged(f, "removed"))
	}
	for _, m := range r.Changes.Modified {
		features = append(features, tagged(m.Compare, "modified"))
	}

	out := overlay{
		Type:       "FeatureCollection",
		Features:   features,
		Properties: map[string]Summary{"geodiff_summary": r.Summary},
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal geojson overlay: %w", err)
	}
	return string(b), nil
}

// tagged returns a copy of the feature with the status property injected. The
// source feature is never mutated; the Result stays re-render-safe.
func tagged(f geojson.Feature, status string) geojson.Feature {
	c := f.Clone()
	c.Properties()[StatusProperty] = status
	return c
}
