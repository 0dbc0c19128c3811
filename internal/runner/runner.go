// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package runner is a small subprocess wrapper with output capture, used by
// the git history lookup and the external changeset tool invocation.
package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/geodiff/geodiff/internal/log"
)

// Output runs the command and returns its trimmed stdout. A non-zero exit
// surfaces as an error carrying the captured stderr.
func Output(ctx context.Context, name string, args ...string) (string, error) {
	c := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	log.Tracef("exec: %s %s", name, strings.Join(args, " "))

	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", &ExitError{Cmd: name, Stderr: msg, Err: err}
		}
		return "", &ExitError{Cmd: name, Err: err}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// OutputBytes runs the command and returns stdout verbatim, for payloads
// that must not be touched (extracted file contents can be binary).
func OutputBytes(ctx context.Context, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	log.Tracef("exec: %s %s", name, strings.Join(args, " "))

	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, &ExitError{Cmd: name, Stderr: msg, Err: err}
		}
		return nil, &ExitError{Cmd: name, Err: err}
	}

	return stdout.Bytes(), nil
}

// Quiet runs the command for its exit status only. Output is discarded and
// errors are swallowed; the return value reports success.
func Quiet(ctx context.Context, name string, args ...string) bool {
	_, err := Output(ctx, name, args...)
	return err == nil
}

// Available reports whether the named executable can be found on PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ExitError wraps a failed invocation with whatever the process wrote to
// stderr, which is usually the only useful diagnostic.
type ExitError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return e.Cmd + ": " + e.Stderr
	}
	return e.Cmd + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
