// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package tmputil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	t.Setenv("GEODIFF_TMP_DIR", "")
	assert.Equal(t, os.TempDir(), Dir())

	custom := t.TempDir()
	t.Setenv("GEODIFF_TMP_DIR", custom)
	assert.Equal(t, custom, Dir())
}

func TestWriteFile(t *testing.T) {
	t.Setenv("GEODIFF_TMP_DIR", t.TempDir())

	payload := []byte{0x00, 0x01, 0xff, '\n', 0xfe}
	path, err := WriteFile(".gpkg", payload)
	require.NoError(t, err)
	t.Cleanup(func() { Remove(path) })

	// Extension is preserved so format detection downstream still works.
	assert.True(t, strings.HasSuffix(path, ".gpkg"))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "geodiff-"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestWriteFileEmptyExtension(t *testing.T) {
	t.Setenv("GEODIFF_TMP_DIR", t.TempDir())

	path, err := WriteFile("", []byte("x"))
	require.NoError(t, err)
	t.Cleanup(func() { Remove(path) })

	assert.Equal(t, "", filepath.Ext(path))
}

func TestRemoveIdempotent(t *testing.T) {
	t.Setenv("GEODIFF_TMP_DIR", t.TempDir())

	path, err := WriteFile(".geojson", []byte("{}"))
	require.NoError(t, err)

	Remove(path)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// A second removal of the same path must not panic or fail.
	Remove(path)
	Remove("")
}
