// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/geodiff/geodiff/internal/geojson"
)

// fixtureResult builds a small mixed result without touching the filesystem.
func fixtureResult() *Result {
	base := []geojson.Feature{
		{"type": "Feature", "id": "keep", "geometry": nil, "properties": map[string]interface{}{}},
		{"type": "Feature", "id": "change", "geometry": nil, "properties": map[string]interface{}{"v": 1.0}},
		{"type": "Feature", "id": "drop", "geometry": nil, "properties": map[string]interface{}{}},
	}
	compare := []geojson.Feature{
		{"type": "Feature", "id": "keep", "geometry": nil, "properties": map[string]interface{}{}},
		{"type": "Feature", "id": "change", "geometry": nil, "properties": map[string]interface{}{"v": 2.0}},
		{"type": "Feature", "id": "new", "geometry": nil, "properties": map[string]interface{}{}},
	}

	comparison := Compare(base, compare)
	return &Result{
		BaseFile:    "base.geojson",
		CompareFile: "compare.geojson",
		Type:        "FeatureCollection",
		Summary: FeatureSummary{
			AddedCount:     len(comparison.Added),
			RemovedCount:   len(comparison.Removed),
			ModifiedCount:  len(comparison.Modified),
			UnchangedCount: len(comparison.Unchanged),
			TotalBase:      len(base),
			TotalCompare:   len(compare),
		},
		Changes:    &comparison,
		HasChanges: true,
	}
}

func TestFormatSummaryText(t *testing.T) {
	got, err := Format(fixtureResult(), ModeSummary)
	require.NoError(t, err)

	// The labels and alignment are scraped downstream; assert them verbatim.
	want := strings.Join([]string{
		"GeoDiff Summary: base.geojson vs compare.geojson",
		"  Added:     1",
		"  Removed:   1",
		"  Modified:  1",
		"  Unchanged: 1",
		"  Total (base):    3",
		"  Total (compare): 3",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatSummaryChangeset(t *testing.T) {
	r := BuildChangeset("old.gpkg", "new.gpkg", []TableChanges{
		{Table: "roads", Changes: []Change{
			json.RawMessage(`{"type":"insert"}`),
			json.RawMessage(`{"type":"delete"}`),
		}},
	})

	got, err := Format(r, ModeSummary)
	require.NoError(t, err)
	assert.Contains(t, got, "GeoDiff Summary: old.gpkg vs new.gpkg")
	assert.Contains(t, got, "Total changes: 2")
	assert.Contains(t, got, "Inserts:   1")
	assert.Contains(t, got, "Deletes:   1")
}

func TestFormatJSON(t *testing.T) {
	got, err := Format(fixtureResult(), ModeJSON)
	require.NoError(t, err)

	require.True(t, gjson.Valid(got))
	parsed := gjson.Parse(got)
	assert.Equal(t, "base.geojson", parsed.Get("base_file").String())
	assert.Equal(t, "features", parsed.Get("summary.strategy").String())
	assert.Equal(t, int64(1), parsed.Get("summary.added_count").Int())
	assert.True(t, parsed.Get("has_changes").Bool())
	assert.True(t, parsed.Get("changes.modified").IsArray())
}

func TestFormatUnrecognizedModeFallsBackToJSON(t *testing.T) {
	r := fixtureResult()

	unknown, err := Format(r, "csv")
	require.NoError(t, err)
	asJSON, err := Format(r, ModeJSON)
	require.NoError(t, err)
	assert.Equal(t, asJSON, unknown)
}

func TestFormatCompactSingleLine(t *testing.T) {
	got, err := FormatCompact(fixtureResult())
	require.NoError(t, err)
	assert.True(t, gjson.Valid(got))
	assert.NotContains(t, got, "\n")
}

func TestFormatGeoJSONRoundTrip(t *testing.T) {
	r := fixtureResult()
	got, err := Format(r, ModeGeoJSON)
	require.NoError(t, err)

	var overlay struct {
		Type     string `json:"type"`
		Features []map[string]interface{}
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &overlay))
	assert.Equal(t, "FeatureCollection", overlay.Type)

	// Fixed emission order: added, removed, modified. Unchanged never appears.
	statuses := make([]string, 0, len(overlay.Features))
	for _, f := range overlay.Features {
		props, ok := f["properties"].(map[string]interface{})
		require.True(t, ok)
		status, ok := props[StatusProperty].(string)
		require.True(t, ok, "every emitted feature carries a status")
		assert.Contains(t, []string{"added", "removed", "modified"}, status)
		statuses = append(statuses, status)
	}
	assert.Equal(t, []string{"added", "removed", "modified"}, statuses)

	// The modified entry carries the compare-side value.
	modified := overlay.Features[2]
	assert.Equal(t, "change", modified["id"])
	props := modified["properties"].(map[string]interface{})
	assert.Equal(t, 2.0, props["v"])

	// Summary rides along as a foreign member.
	summary := gjson.Parse(got).Get("properties.geodiff_summary")
	require.True(t, summary.Exists())
	assert.Equal(t, int64(1), summary.Get("unchanged_count").Int())
	assert.Equal(t, int64(3), summary.Get("total_base").Int())
}

func TestFormatGeoJSONModifiedCountMatches(t *testing.T) {
	r := fixtureResult()
	got, err := Format(r, ModeGeoJSON)
	require.NoError(t, err)

	modified := 0
	for _, f := range gjson.Parse(got).Get("features").Array() {
		if f.Get("properties." + StatusProperty).String() == "modified" {
			modified++
		}
	}
	assert.Equal(t, len(r.Changes.Modified), modified)
}

func TestFormatGeoJSONDoesNotMutateResult(t *testing.T) {
	r := fixtureResult()

	_, err := Format(r, ModeGeoJSON)
	require.NoError(t, err)

	// Re-rendering is safe: no status property leaked into the result.
	for _, f := range r.Changes.Added {
		_, leaked := f.Properties()[StatusProperty]
		assert.False(t, leaked)
	}
	again, err := Format(r, ModeGeoJSON)
	require.NoError(t, err)
	first, err := Format(r, ModeGeoJSON)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestFormatGeoJSONChangesetFallsBackToJSON(t *testing.T) {
	r := BuildChangeset("old.gpkg", "new.gpkg", nil)

	got, err := Format(r, ModeGeoJSON)
	require.NoError(t, err)
	asJSON, err := Format(r, ModeJSON)
	require.NoError(t, err)
	assert.Equal(t, asJSON, got)
}
