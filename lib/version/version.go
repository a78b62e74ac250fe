// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build version information for usertable.
//
// Release builds set the variables with -ldflags:
//
//	go build -ldflags "-X github.com/bureau-foundation/usertable/lib/version.Version=1.2.0"
//
// Builds without -ldflags fall back to the VCS revision the Go
// toolchain stamps into the binary.
package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = ""

	// Version is the semantic version.
	Version = "0.1.0-dev"
)

// Commit returns the git commit of the build: GitCommit when set,
// otherwise the first 12 characters of vcs.revision from the build
// info (with "-dirty" for modified trees), otherwise "unknown".
func Commit() string {
	if GitCommit != "" {
		return GitCommit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return "unknown"
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if modified {
		revision += "-dirty"
	}
	return revision
}

// Info returns a one-line version string suitable for --version output.
func Info() string {
	return fmt.Sprintf("%s (%s, %s %s/%s)", Version, Commit(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Print writes "<binary> <Info()>" to writer.
func Print(writer io.Writer, binary string) {
	fmt.Fprintf(writer, "%s %s\n", binary, Info())
}
