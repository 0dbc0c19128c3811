// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package action speaks the GitHub Actions workflow protocol: step inputs
// from the environment, step outputs via $GITHUB_OUTPUT, ::group:: log
// grouping, and the HTML step summary. Pure formatting glue; nothing here
// makes decisions about the diff itself.
package action

import (
	"fmt"
	"os"
	"strings"

	"github.com/geodiff/geodiff/internal/log"
)

// InActions reports whether the process is running inside a GitHub Actions
// step.
func InActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// GetInput returns the value of an action input, following the runner's
// INPUT_<NAME> environment convention. Missing inputs are empty strings.
func GetInput(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	return strings.TrimSpace(os.Getenv(key))
}

// GetBoolInput interprets an action input as a boolean. Only "true" (any
// case) is true, matching the runner's own convention.
func GetBoolInput(name string) bool {
	return strings.EqualFold(GetInput(name), "true")
}

// SetOutput appends a name=value pair to the step's output file. Values must
// be single-line; use EscapeNewlines for multiline content.
func SetOutput(name, value string) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		log.Debugf("GITHUB_OUTPUT not set, skipping output %s", name)
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s=%s\n", name, value); err != nil {
		return fmt.Errorf("failed to write output %s: %w", name, err)
	}
	return nil
}

// EscapeNewlines encodes newlines the way the runner expects multiline output
// values to be encoded.
func EscapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "%0A")
}

// Group opens a collapsible log group in the workflow log.
func Group(title string) {
	if InActions() {
		fmt.Fprintf(os.Stdout, "::group::%s\n", title)
	}
}

// EndGroup closes the current log group.
func EndGroup() {
	if InActions() {
		fmt.Fprintln(os.Stdout, "::endgroup::")
	}
}
