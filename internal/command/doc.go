// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package command wires the CLI surface: subcommand builders, shared flags,
// input resolution (local, s3://, git history), and the glue between the diff
// core and the surrounding pipeline.
package command
