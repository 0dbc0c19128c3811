// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package tmputil owns the temporary files created for inputs that do not
// exist locally yet: git-extracted revisions and downloaded remote objects.
// Callers receive a path plus the obligation to remove it.
package tmputil

import (
	"fmt"
	"os"

	"github.com/geodiff/geodiff/internal/log"
)

// Dir resolves the base directory for extracted inputs.
// Precedence:
//  1. GEODIFF_TMP_DIR, if set and non-empty
//  2. the system temp directory
func Dir() string {
	if d, ok := os.LookupEnv("GEODIFF_TMP_DIR"); ok && d != "" {
		return d
	}
	return os.TempDir()
}

// WriteFile stores data in a fresh temp file carrying the given extension
// (extension preserved so the loader's format check still applies). Returns
// the file's path; the caller owns cleanup via Remove.
func WriteFile(ext string, data []byte) (string, error) {
	f, err := os.CreateTemp(Dir(), "geodiff-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		Remove(f.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	log.Debugf("temp file written: path=%s size=%d", f.Name(), len(data))
	return f.Name(), nil
}

// Remove deletes a temp file, logging rather than failing when it is already
// gone.
func Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warnf("failed to remove temp file %s", path)
	}
}
