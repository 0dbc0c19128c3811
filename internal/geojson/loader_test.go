// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package geojson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile drops content into a fresh temp file with the given name and
// returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantKind Kind
		wantType string
	}{
		{
			name:     "feature collection",
			file:     "points.geojson",
			content:  `{"type":"FeatureCollection","features":[]}`,
			wantType: "FeatureCollection",
		},
		{
			name:     "single feature",
			file:     "point.geojson",
			content:  `{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{}}`,
			wantType: "Feature",
		},
		{
			name:     "unknown type loads fine",
			file:     "geom.geojson",
			content:  `{"type":"Point","coordinates":[0,0]}`,
			wantType: "Point",
		},
		{
			name:     "wrong extension",
			file:     "points.json",
			content:  `{"type":"FeatureCollection","features":[]}`,
			wantKind: UnsupportedFormat,
		},
		{
			name:     "malformed json",
			file:     "broken.geojson",
			content:  `not valid json {`,
			wantKind: MalformedInput,
		},
		{
			name:     "root not an object",
			file:     "list.geojson",
			content:  `[1,2,3]`,
			wantKind: InvalidSchema,
		},
		{
			name:     "missing type",
			file:     "untyped.geojson",
			content:  `{"features":[]}`,
			wantKind: InvalidSchema,
		},
		{
			name:     "empty type",
			file:     "emptytype.geojson",
			content:  `{"type":""}`,
			wantKind: InvalidSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			doc, err := Load(path)

			if tt.wantType != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantType, doc.Type)
				return
			}

			require.Error(t, err)
			assert.True(t, IsKind(err, tt.wantKind), "expected kind %v, got %v", tt.wantKind, err)
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.geojson"))
	require.Error(t, err)
	assert.True(t, IsKind(err, NotFound))
	assert.Contains(t, err.Error(), "missing.geojson")
}

func TestLoadMalformedMessageReferencesFile(t *testing.T) {
	path := writeFile(t, "broken.geojson", `not valid json {`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsKind(err, MalformedInput))
	// The message must name the file and carry the parser diagnostic.
	assert.Contains(t, err.Error(), path)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Error(t, e.Unwrap())
}

func TestDocumentFeatures(t *testing.T) {
	t.Run("collection", func(t *testing.T) {
		path := writeFile(t, "two.geojson",
			`{"type":"FeatureCollection","features":[
				{"type":"Feature","id":"a","geometry":null,"properties":{}},
				{"type":"Feature","id":"b","geometry":null,"properties":{}}]}`)
		doc, err := Load(path)
		require.NoError(t, err)

		features, err := doc.Features()
		require.NoError(t, err)
		assert.Len(t, features, 2)
	})

	t.Run("collection without features array", func(t *testing.T) {
		path := writeFile(t, "bare.geojson", `{"type":"FeatureCollection"}`)
		doc, err := Load(path)
		require.NoError(t, err)

		features, err := doc.Features()
		require.NoError(t, err)
		assert.Empty(t, features)
	})

	t.Run("single feature wraps itself", func(t *testing.T) {
		path := writeFile(t, "one.geojson",
			`{"type":"Feature","id":"solo","geometry":null,"properties":{}}`)
		doc, err := Load(path)
		require.NoError(t, err)

		features, err := doc.Features()
		require.NoError(t, err)
		require.Len(t, features, 1)
		id, ok := features[0].ID()
		require.True(t, ok)
		assert.Equal(t, "solo", id)
	})

	t.Run("unsupported type", func(t *testing.T) {
		path := writeFile(t, "geom.geojson", `{"type":"Point","coordinates":[0,0]}`)
		doc, err := Load(path)
		require.NoError(t, err)

		_, err = doc.Features()
		require.Error(t, err)
		assert.True(t, IsKind(err, UnsupportedType))
	})

	t.Run("non-object feature entry", func(t *testing.T) {
		path := writeFile(t, "bad.geojson", `{"type":"FeatureCollection","features":[42]}`)
		doc, err := Load(path)
		require.NoError(t, err)

		_, err = doc.Features()
		require.Error(t, err)
		assert.True(t, IsKind(err, InvalidSchema))
	})
}

func TestFeatureEqual(t *testing.T) {
	a := Feature{
		"type":       "Feature",
		"geometry":   map[string]interface{}{"type": "Point", "coordinates": []interface{}{1.0, 2.0}},
		"properties": map[string]interface{}{"name": "Origin"},
	}
	b := Feature{
		"type":       "Feature",
		"geometry":   map[string]interface{}{"type": "Point", "coordinates": []interface{}{1.0, 2.0}},
		"properties": map[string]interface{}{"name": "Origin"},
	}
	assert.True(t, a.Equal(b))

	b["properties"].(map[string]interface{})["name"] = "Elsewhere"
	assert.False(t, a.Equal(b))
}

func TestFeatureClone(t *testing.T) {
	f := Feature{
		"type":       "Feature",
		"geometry":   map[string]interface{}{"type": "Point"},
		"properties": map[string]interface{}{"name": "Origin"},
	}

	c := f.Clone()
	c.Properties()["_geodiff_status"] = "added"

	// The original's properties must not see the annotation.
	_, leaked := f.Properties()["_geodiff_status"]
	assert.False(t, leaked)
	assert.Equal(t, "Origin", c.Properties()["name"])
}

func TestFeatureCloneWithoutProperties(t *testing.T) {
	f := Feature{"type": "Feature", "geometry": nil}

	c := f.Clone()
	c.Properties()["_geodiff_status"] = "removed"
	assert.Equal(t, "removed", c.Properties()["_geodiff_status"])
	assert.Nil(t, f.Properties())
}
