// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/geodiff/geodiff/internal/geojson"
)

// idPropertyKeys are scanned in order when a feature has no "id" member.
// Geospatial data commonly lacks a uniform primary key; this heuristic
// maximizes match rate across heterogeneous schemas at the cost of potential
// false matches.
var idPropertyKeys = []string{"id", "ID", "fid", "FID", "OBJECTID", "name", "NAME"}

// FeatureID derives a stable identifier for a feature so two documents can be
// matched across runs. Resolution order: the feature's own id, then the first
// present key of idPropertyKeys in properties, then the positional fallback
// "feature_<index>". Pure and total: it never fails, and the same
// feature/index always yields the same string. The identifier is not
// guaranteed unique; collisions are a known accuracy limitation.
func FeatureID(f geojson.Feature, index int) string {
	if id, ok := f.ID(); ok {
		return stringify(id)
	}

	if props := f.Properties(); props != nil {
		for _, key := range idPropertyKeys {
			if v, ok := props[key]; ok {
				return stringify(v)
			}
		}
	}

	return fmt.Sprintf("feature_%d", index)
}

// stringify renders a decoded JSON scalar the way it reads in the source
// document. Composite values fall back to their JSON encoding.
func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return "null"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
