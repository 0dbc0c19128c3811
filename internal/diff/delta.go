// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/geodiff/geodiff/internal/log"
)

// RenderDeltas writes an ascii field-level diff for every modified feature to
// w. This is a presentation aid for humans reading the run log; the Result
// itself always carries whole-object before/after pairs.
func RenderDeltas(r *Result, w io.Writer, coloring bool) error {
	if r.Changes == nil || len(r.Changes.Modified) == 0 {
		return nil
	}

	differ := gojsondiff.New()

	for _, m := range r.Changes.Modified {
		baseJSON, err := json.Marshal(m.Base)
		if err != nil {
			return fmt.Errorf("failed to marshal base feature %s: %w", m.ID, err)
		}
		compareJSON, err := json.Marshal(m.Compare)
		if err != nil {
			return fmt.Errorf("failed to marshal compare feature %s: %w", m.ID, err)
		}

		delta, err := differ.Compare(baseJSON, compareJSON)
		if err != nil {
			return fmt.Errorf("failed to compare feature %s: %w", m.ID, err)
		}
		if !delta.Modified() {
			// Can happen when base and compare differ only in ways the
			// delta library normalizes away (e.g. number formatting).
			log.Debugf("no renderable delta for feature %s", m.ID)
			continue
		}

		config := formatter.AsciiFormatterConfig{
			ShowArrayIndex: false,
			Coloring:       coloring,
		}

		asciiFormatter := formatter.NewAsciiFormatter(map[string]interface{}(m.Base), config)
		diffString, err := asciiFormatter.Format(delta)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "--- %s\n%s", m.ID, diffString)
	}

	return nil
}
