// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package geojson loads and models single-document GeoJSON files for
// comparison. Geometry payloads are carried opaquely and never inspected.
package geojson
