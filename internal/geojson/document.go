// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package geojson

import "reflect"

// Feature is a single GeoJSON feature kept as its decoded JSON value tree
// (string | float64 | bool | nil | []any | map[string]any). Keeping the raw
// tree means equality covers every attribute a producer wrote, including ones
// this tool knows nothing about (bbox, foreign members, nested geometry).
type Feature map[string]interface{}

// ID returns the feature's own "id" member, if present.
func (f Feature) ID() (interface{}, bool) {
	v, ok := f["id"]
	return v, ok
}

// Properties returns the feature's properties mapping, or nil if absent or
// not an object.
func (f Feature) Properties() map[string]interface{} {
	p, ok := f["properties"].(map[string]interface{})
	if !ok {
		return nil
	}
	return p
}

// Equal reports deep structural equality with another feature, geometry and
// properties included.
func (f Feature) Equal(other Feature) bool {
	return reflect.DeepEqual(map[string]interface{}(f), map[string]interface{}(other))
}

// Clone returns a copy of the feature safe to annotate. The top level and the
// properties object are copied; deeper values (geometry in particular) are
// shared, since annotation only ever touches properties.
func (f Feature) Clone() Feature {
	c := make(Feature, len(f)+1)
	for k, v := range f {
		c[k] = v
	}
	props := make(map[string]interface{}, len(f.Properties())+1)
	for k, v := range f.Properties() {
		props[k] = v
	}
	c["properties"] = props
	return c
}

// Document is a parsed GeoJSON file. Type is always non-empty; absence is a
// load-time failure.
type Document struct {
	Type string
	root map[string]interface{}
}

// Features normalizes the document into a flat feature sequence: a
// FeatureCollection contributes its feature list, a single Feature contributes
// a one-element list. Any other type fails with UnsupportedType.
func (d *Document) Features() ([]Feature, error) {
	switch d.Type {
	case "FeatureCollection":
		raw, ok := d.root["features"].([]interface{})
		if !ok {
			// A collection without a features array compares as empty,
			// matching a collection with "features": [].
			return nil, nil
		}
		features := make([]Feature, 0, len(raw))
		for i, entry := range raw {
			obj, ok := entry.(map[string]interface{})
			if !ok {
				return nil, Errorf(InvalidSchema, "invalid GeoJSON: features[%d] is not an object", i)
			}
			features = append(features, Feature(obj))
		}
		return features, nil
	case "Feature":
		return []Feature{Feature(d.root)}, nil
	}
	return nil, Errorf(UnsupportedType, "unsupported GeoJSON type: %s", d.Type)
}
