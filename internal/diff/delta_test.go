// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDeltas(t *testing.T) {
	r := fixtureResult()

	var buf bytes.Buffer
	require.NoError(t, RenderDeltas(r, &buf, false))

	out := buf.String()
	assert.Contains(t, out, "--- change")
	// The changed property shows up with its before and after values.
	assert.Contains(t, out, `"v"`)
}

func TestRenderDeltasNoModifications(t *testing.T) {
	r := &Result{
		BaseFile:    "a.geojson",
		CompareFile: "b.geojson",
		Summary:     FeatureSummary{},
		Changes:     &Comparison{},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderDeltas(r, &buf, false))
	assert.Empty(t, buf.String())
}

func TestRenderDeltasChangesetResult(t *testing.T) {
	r := BuildChangeset("old.gpkg", "new.gpkg", nil)

	var buf bytes.Buffer
	require.NoError(t, RenderDeltas(r, &buf, false))
	assert.Empty(t, buf.String())
}
