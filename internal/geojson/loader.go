// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package geojson

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/geodiff/geodiff/internal/log"
)

// Load reads and validates a GeoJSON file. Every call re-reads the file; there
// is no caching. Failures are classified: NotFound, UnsupportedFormat (only
// .geojson is handled here; GeoPackage goes through the changeset path),
// MalformedInput (wrapping the parser diagnostic), InvalidSchema.
func Load(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, Errorf(NotFound, "file not found: %s", path)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".geojson" {
		return nil, Errorf(UnsupportedFormat, "unsupported file format: %s. Only .geojson is supported", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: NotFound, Msg: "failed to read " + path, Err: err}
	}
	log.Debugf("loaded %s (%s)", path, humanize.Bytes(uint64(len(data))))

	var root interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &Error{Kind: MalformedInput, Msg: "invalid JSON in file " + path, Err: err}
	}

	obj, ok := root.(map[string]interface{})
	if !ok {
		return nil, Errorf(InvalidSchema, "invalid GeoJSON in %s: root must be an object", path)
	}

	typ, ok := obj["type"].(string)
	if !ok || typ == "" {
		return nil, Errorf(InvalidSchema, "invalid GeoJSON in %s: missing 'type' field", path)
	}

	return &Document{Type: typ, root: obj}, nil
}
