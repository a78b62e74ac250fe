// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for usertable.
//
// Configuration comes from at most one file, named either by the
// USERTABLE_CONFIG environment variable (via [Load]) or by the --config
// flag (via [LoadFile]). Without a file, [Default] applies: the public
// member list URL and ten rows per page. Command-line flags are applied
// on top of the loaded config by the command, not by this package.
//
// Variable expansion is performed on source.url, source.file and
// log.output after loading: ${HOME} and ${VAR:-default} patterns are
// expanded. No other environment variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with Source, Table, Log, UI
//   - [Default] -- the built-in configuration
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- reports every invalid field at once
//
// This package depends on no other usertable packages.
package config
