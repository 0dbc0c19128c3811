// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/geodiff/geodiff/internal/geojson"
	"github.com/geodiff/geodiff/internal/log"
)

// Summary is the at-a-glance counter block of a Result. The two comparison
// strategies intentionally produce different shapes (feature counters vs.
// row-level changeset counters); the strategy discriminant names which one
// applies and the Formatter branches on it. The shapes are never unified.
type Summary interface {
	// Strategy names the comparison strategy that produced the summary.
	Strategy() string
}

// FeatureSummary is produced by the whole-document feature comparison.
type FeatureSummary struct {
	AddedCount     int `json:"added_count"`
	RemovedCount   int `json:"removed_count"`
	ModifiedCount  int `json:"modified_count"`
	UnchangedCount int `json:"unchanged_count"`
	TotalBase      int `json:"total_base"`
	TotalCompare   int `json:"total_compare"`
}

// Strategy implements Summary.
func (FeatureSummary) Strategy() string { return "features" }

// MarshalJSON emits the strategy discriminant alongside the counters so
// consumers of the serialized result can branch without type information.
func (s FeatureSummary) MarshalJSON() ([]byte, error) {
	type alias FeatureSummary
	return json.Marshal(struct {
		Strategy string `json:"strategy"`
		alias
	}{Strategy: s.Strategy(), alias: alias(s)})
}

// ChangesetSummary is produced when an externally-computed row-level
// changeset substitutes for the feature comparison (GeoPackage inputs).
type ChangesetSummary struct {
	TotalChanges int `json:"total_changes"`
	Inserts      int `json:"inserts"`
	Updates      int `json:"updates"`
	Deletes      int `json:"deletes"`
}

// Strategy implements Summary.
func (ChangesetSummary) Strategy() string { return "changeset" }

// MarshalJSON emits the strategy discriminant alongside the counters.
func (s ChangesetSummary) MarshalJSON() ([]byte, error) {
	type alias ChangesetSummary
	return json.Marshal(struct {
		Strategy string `json:"strategy"`
		alias
	}{Strategy: s.Strategy(), alias: alias(s)})
}

// Change is one row-level change record from an external changeset report.
// Beyond the insert/update/delete tag the record is opaque: it is carried
// verbatim and re-emitted untouched.
type Change = json.RawMessage

// TableChanges groups the change records of one GeoPackage table.
type TableChanges struct {
	Table   string   `json:"table"`
	Changes []Change `json:"changes"`
}

// Result is the top-level diff artifact. Constructed once per invocation,
// immutable thereafter, consumed only by the output formatter. Exactly one of
// Changes and Changeset is populated, matching the Summary strategy.
type Result struct {
	BaseFile    string         `json:"base_file"`
	CompareFile string         `json:"compare_file"`
	Type        string         `json:"type"`
	Summary     Summary        `json:"summary"`
	Changes     *Comparison    `json:"changes,omitempty"`
	Changeset   []TableChanges `json:"changeset,omitempty"`
	HasChanges  bool           `json:"has_changes"`
}

// Build loads both documents and computes the feature-level diff between
// them. It fails with TypeMismatch if the two documents declare different
// top-level types, and with UnsupportedType for documents outside
// {FeatureCollection, Feature}. A failure on either side aborts before any
// comparison is attempted.
func Build(basePath, comparePath string) (*Result, error) {
	baseDoc, err := geojson.Load(basePath)
	if err != nil {
		return nil, err
	}

	compareDoc, err := geojson.Load(comparePath)
	if err != nil {
		return nil, err
	}

	if baseDoc.Type != compareDoc.Type {
		return nil, geojson.Errorf(geojson.TypeMismatch,
			"type mismatch: base is '%s', compare is '%s'", baseDoc.Type, compareDoc.Type)
	}

	baseFeatures, err := baseDoc.Features()
	if err != nil {
		return nil, err
	}
	compareFeatures, err := compareDoc.Features()
	if err != nil {
		return nil, err
	}
	log.Debugf("features loaded: base=%d compare=%d", len(baseFeatures), len(compareFeatures))

	comparison := Compare(baseFeatures, compareFeatures)

	hasChanges := len(comparison.Added) > 0 ||
		len(comparison.Removed) > 0 ||
		len(comparison.Modified) > 0

	return &Result{
		BaseFile:    basePath,
		CompareFile: comparePath,
		Type:        baseDoc.Type,
		Summary: FeatureSummary{
			AddedCount:     len(comparison.Added),
			RemovedCount:   len(comparison.Removed),
			ModifiedCount:  len(comparison.Modified),
			UnchangedCount: len(comparison.Unchanged),
			TotalBase:      len(baseFeatures),
			TotalCompare:   len(compareFeatures),
		},
		Changes:    &comparison,
		HasChanges: hasChanges,
	}, nil
}

// BuildChangeset folds an externally-produced changeset report into a Result.
// The report is consumed as opaque data; only the per-record type tag is read
// to populate the counters. The changeset payload is carried verbatim.
func BuildChangeset(basePath, comparePath string, tables []TableChanges) *Result {
	summary := ChangesetSummary{}
	for _, table := range tables {
		for _, change := range table.Changes {
			summary.TotalChanges++
			switch gjson.GetBytes(change, "type").String() {
			case "insert":
				summary.Inserts++
			case "update":
				summary.Updates++
			case "delete":
				summary.Deletes++
			}
		}
	}
	log.Debugf("changeset folded: tables=%d changes=%d", len(tables), summary.TotalChanges)

	return &Result{
		BaseFile:    basePath,
		CompareFile: comparePath,
		Type:        "GeoPackage",
		Summary:     summary,
		Changeset:   tables,
		HasChanges:  summary.TotalChanges > 0,
	}
}
