// Copyright (c) 2026 The geodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package config provides loading and typed accessors for geodiff's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/geodiff.yaml or $HOME/.config/geodiff.yaml
//   - Windows: %APPDATA%/geodiff/geodiff.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions.
package config
