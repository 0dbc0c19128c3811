// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package changeset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `[
  {
    "table": "roads",
    "changes": [
      {"type": "insert", "fid": 1, "values": {"name": "A1"}},
      {"type": "update", "fid": 2, "old": {"lanes": 2}, "new": {"lanes": 4}},
      {"type": "delete", "fid": 3}
    ]
  },
  {
    "table": "buildings",
    "changes": []
  }
]`

func TestParse(t *testing.T) {
	tables, err := Parse([]byte(sampleReport))
	require.NoError(t, err)

	require.Len(t, tables, 2)
	assert.Equal(t, "roads", tables[0].Table)
	assert.Len(t, tables[0].Changes, 3)
	assert.Equal(t, "buildings", tables[1].Table)
	assert.Empty(t, tables[1].Changes)

	// Change records pass through untouched, extra members included.
	assert.JSONEq(t, `{"type": "insert", "fid": 1, "values": {"name": "A1"}}`,
		string(tables[0].Changes[0]))
}

func TestParseEmptyReport(t *testing.T) {
	tables, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "not json",
			data: `{"table": "roads",`,
			want: "not valid JSON",
		},
		{
			name: "root is an object",
			data: `{"table": "roads", "changes": []}`,
			want: "must be an array",
		},
		{
			name: "missing table name",
			data: `[{"changes": [{"type": "insert"}]}]`,
			want: "missing its table name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleReport), 0o600))

	tables, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, tables, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read changeset report")
}
