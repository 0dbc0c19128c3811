// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"github.com/geodiff/geodiff/internal/geojson"
	"github.com/geodiff/geodiff/internal/log"
)

// Modified records a matched pair whose values differ: the identity plus the
// whole base and compare features. No field-level delta is computed here.
type Modified struct {
	ID      string          `json:"id"`
	Base    geojson.Feature `json:"base"`
	Compare geojson.Feature `json:"compare"`
}

// Comparison partitions the features of two documents. Every identity present
// on either side lands in exactly one of the four categories. Slice ordering
// is unspecified; consumers must only rely on membership and counts.
type Comparison struct {
	Added     []geojson.Feature `json:"added"`
	Removed   []geojson.Feature `json:"removed"`
	Modified  []Modified        `json:"modified"`
	Unchanged []geojson.Feature `json:"unchanged"`
}

// Compare partitions base and compare features into added, removed, modified
// and unchanged via identity-keyed set operations and whole-feature equality.
// A pure, always-succeeding transform.
//
// Duplicate identities within one side resolve last-write-wins: the later
// positional feature silently replaces the earlier one in the side's map.
// This is an accepted approximation of heuristic identity resolution, not an
// error.
func Compare(base, compare []geojson.Feature) Comparison {
	baseMap := make(map[string]geojson.Feature, len(base))
	for i, f := range base {
		baseMap[FeatureID(f, i)] = f
	}

	compareMap := make(map[string]geojson.Feature, len(compare))
	for i, f := range compare {
		compareMap[FeatureID(f, i)] = f
	}

	log.Tracef("identity maps: base=%d compare=%d", len(baseMap), len(compareMap))

	var result Comparison

	for id, f := range compareMap {
		if _, ok := baseMap[id]; !ok {
			result.Added = append(result.Added, f)
		}
	}

	for id, f := range baseMap {
		if _, ok := compareMap[id]; !ok {
			result.Removed = append(result.Removed, f)
		}
	}

	for id, baseFeature := range baseMap {
		compareFeature, ok := compareMap[id]
		if !ok {
			continue
		}
		if baseFeature.Equal(compareFeature) {
			result.Unchanged = append(result.Unchanged, baseFeature)
		} else {
			result.Modified = append(result.Modified, Modified{
				ID:      id,
				Base:    baseFeature,
				Compare: compareFeature,
			})
		}
	}

	return result
}
