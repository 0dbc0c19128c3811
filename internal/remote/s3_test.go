// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsS3(t *testing.T) {
	assert.True(t, IsS3("s3://bucket/key.geojson"))
	assert.False(t, IsS3("/local/path.geojson"))
	assert.False(t, IsS3("https://example.com/a.geojson"))
	assert.False(t, IsS3(""))
}

func TestParseURI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{uri: "s3://data/baseline.geojson", bucket: "data", key: "baseline.geojson"},
		{uri: "s3://data/releases/v2/roads.gpkg", bucket: "data", key: "releases/v2/roads.gpkg"},
		{uri: "s3://bucket-only", wantErr: true},
		{uri: "s3://bucket/", wantErr: true},
		{uri: "s3:///key", wantErr: true},
		{uri: "s3://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, err := parseURI(tt.uri)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid s3 uri")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
