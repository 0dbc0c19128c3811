// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package gitutil resolves "compare against the previous commit" into a
// concrete file path: it locates the repository containing an input file,
// resolves HEAD~N, and extracts the file's content at that revision into a
// temp file the caller owns. The diff core never touches git itself.
package gitutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/geodiff/geodiff/internal/log"
	"github.com/geodiff/geodiff/internal/runner"
	"github.com/geodiff/geodiff/internal/tmputil"
)

// IsRepo reports whether path is inside a git repository.
func IsRepo(ctx context.Context, path string) bool {
	return runner.Quiet(ctx, "git", "-C", path, "rev-parse", "--git-dir")
}

// markSafeDirectory marks a directory (and, for nested CI checkouts, all
// directories) as safe for git operations. Container runners frequently trip
// "dubious ownership" without this.
func markSafeDirectory(ctx context.Context, path string) {
	_ = runner.Quiet(ctx, "git", "config", "--global", "--add", "safe.directory", path)
	_ = runner.Quiet(ctx, "git", "config", "--global", "--add", "safe.directory", "*")
}

// FindRepoRoot finds the git repository root containing the given file.
// Returns ("", false) when the file is not inside a repository.
func FindRepoRoot(ctx context.Context, filePath string) (string, bool) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", false
	}
	searchDir := filepath.Dir(abs)

	markSafeDirectory(ctx, searchDir)

	root, err := runner.Output(ctx, "git", "-C", searchDir, "rev-parse", "--show-toplevel")
	if err != nil || root == "" {
		return "", false
	}

	markSafeDirectory(ctx, root)
	return root, true
}

// PreviousCommit resolves the hash of HEAD~offset in the given repository.
func PreviousCommit(ctx context.Context, repoPath string, offset int) (string, error) {
	markSafeDirectory(ctx, repoPath)

	if !IsRepo(ctx, repoPath) {
		return "", fmt.Errorf("not a git repository: %s", repoPath)
	}

	hash, err := runner.Output(ctx, "git", "-C", repoPath, "rev-parse", "HEAD~"+strconv.Itoa(offset))
	if err != nil {
		return "", fmt.Errorf("no previous commit found at HEAD~%d: %w", offset, err)
	}
	return hash, nil
}

// HasFileInCommit reports whether the repo-relative file exists in the commit.
func HasFileInCommit(ctx context.Context, repoPath, filePath, commit string) bool {
	return runner.Quiet(ctx, "git", "-C", repoPath, "cat-file", "-e", commit+":"+filePath)
}

// ExtractFileFromCommit writes the file's content at the given commit to a
// temp file with the original extension preserved, and returns its path. The
// caller is responsible for cleanup (tmputil.Remove).
func ExtractFileFromCommit(ctx context.Context, repoPath, filePath, commit string) (string, error) {
	if !HasFileInCommit(ctx, repoPath, filePath, commit) {
		return "", fmt.Errorf("file not found in commit %s: %s", commit, filePath)
	}

	content, err := runner.OutputBytes(ctx, "git", "-C", repoPath, "show", commit+":"+filePath)
	if err != nil {
		return "", fmt.Errorf("failed to extract file from commit: %w", err)
	}

	path, err := tmputil.WriteFile(filepath.Ext(filePath), content)
	if err != nil {
		return "", err
	}

	log.Debugf("extracted %s@%s to %s", filePath, commit, path)
	return path, nil
}

// RelPath converts an input path to the repo-relative form git wants. Returns
// an error when the file lies outside the repository root.
func RelPath(repoRoot, filePath string) (string, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(repoRoot, abs)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside repository %s", filePath, repoRoot)
	}
	return filepath.ToSlash(rel), nil
}
