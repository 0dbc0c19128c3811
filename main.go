// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/geodiff/geodiff/internal/action"
	"github.com/geodiff/geodiff/internal/command"
	"github.com/geodiff/geodiff/internal/log"
	"github.com/geodiff/geodiff/internal/version"
)

var ctx = context.Background()

// knownCommands are the subcommands arg preprocessing must not rewrite.
var knownCommands = []string{"diff", "gpkg", "completion"}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand decides what a bare "geodiff" means. Inside a pipeline
// step the file references arrive as action inputs, so the diff subcommand is
// implied; anywhere else, show help.
func handleNakedCommand(args []string) []string {
	if len(args) > 1 {
		return args
	}
	if action.InActions() {
		return append(args, "diff")
	}
	return append(args, "--help")
}

// normalizeArgs inserts the implied "diff" subcommand when the first argument
// is a file reference rather than a known subcommand, so that
// "geodiff a.geojson b.geojson" works the way people type it.
func normalizeArgs(args []string) []string {
	if len(args) < 2 {
		return args
	}
	first := args[1]
	if first == "" || first[0] == '-' {
		return args
	}
	for _, c := range knownCommands {
		if first == c {
			return args
		}
	}
	return append(args[:1], append([]string{"diff"}, args[1:]...)...)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip arg normalization and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = normalizeArgs(args)
	}

	return initAndRunApp(args)
}
