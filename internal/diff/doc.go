// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package diff computes feature-level differences between two geospatial
// documents and renders the result in the supported output formats.
package diff
