// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/usertable/lib/cli"
	"github.com/bureau-foundation/usertable/lib/config"
	"github.com/bureau-foundation/usertable/lib/usersource"
)

const membersJSON = `[
	{"id": "1", "name": "Aaron Miles", "email": "aaron@mailinator.com", "role": "member"},
	{"id": "2", "name": "Aishwarya Naik", "email": "aishwarya@mailinator.com", "role": "member"},
	{"id": "3", "name": "Arvind Kumar", "email": "arvind@mailinator.com", "role": "admin"},
	{"id": "4", "name": "Caterina Binotto", "email": "caterina@mailinator.com", "role": "member"},
	{"id": "5", "name": "Chetan Kumar", "email": "chetan@mailinator.com", "role": "member"},
	{"id": "6", "name": "Jim McClain", "email": "jim@mailinator.com", "role": "member"},
	{"id": "7", "name": "Mahaveer Singh", "email": "mahaveer@mailinator.com", "role": "member"},
	{"id": "8", "name": "Rahul Jain", "email": "rahul@mailinator.com", "role": "admin"},
	{"id": "9", "name": "Rizan Khan", "email": "rizan@mailinator.com", "role": "member"},
	{"id": "10", "name": "Sarah Potter", "email": "sarah@mailinator.com", "role": "admin"},
	{"id": "11", "name": "Keshav Muddaiah", "email": "keshav@mailinator.com", "role": "member"},
	{"id": "12", "name": "Nita Ramesh", "email": "nita@mailinator.com", "role": "member"}
]`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseOptions(t *testing.T, args ...string) (*config.Config, *options, error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	var opts options
	flagSet := newFlagSet(&opts)
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}
	cfg, err := loadConfig(flagSet, &opts)
	return cfg, &opts, err
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	directory := t.TempDir()
	configPath := filepath.Join(directory, "usertable.yaml")
	content := "source:\n  file: " + filepath.Join(directory, "users.json") + "\ntable:\n  page_size: 5\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("file values", func(t *testing.T) {
		cfg, _, err := parseOptions(t, "--config", configPath)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Table.PageSize != 5 || cfg.Source.File == "" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("url flag replaces file", func(t *testing.T) {
		cfg, _, err := parseOptions(t, "--config", configPath, "--url", "https://example.com/users.json")
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Source.File != "" || cfg.Source.URL != "https://example.com/users.json" {
			t.Errorf("source = %+v", cfg.Source)
		}
	})

	t.Run("page size flag", func(t *testing.T) {
		cfg, _, err := parseOptions(t, "--config", configPath, "--page-size", "25")
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Table.PageSize != 25 {
			t.Errorf("page size = %d, want 25", cfg.Table.PageSize)
		}
	})

	t.Run("defaults without config", func(t *testing.T) {
		cfg, _, err := parseOptions(t)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Source.URL != config.DefaultSourceURL || cfg.Table.PageSize != 10 {
			t.Errorf("cfg = %+v", cfg)
		}
	})
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		category cli.ErrorCategory
	}{
		{"missing config file", []string{"--config", "/nonexistent/usertable.yaml"}, cli.CategoryNotFound},
		{"zero page size", []string{"--page-size", "0"}, cli.CategoryValidation},
		{"bad url scheme", []string{"--url", "ftp://example.com/users"}, cli.CategoryValidation},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := parseOptions(t, test.args...)
			var toolError *cli.ToolError
			if !errors.As(err, &toolError) {
				t.Fatalf("err = %v, want *cli.ToolError", err)
			}
			if toolError.Category != test.category {
				t.Errorf("category = %s, want %s", toolError.Category, test.category)
			}
		})
	}
}

func TestApplyColor(t *testing.T) {
	for _, mode := range []string{"auto", "never"} {
		if err := applyColor(mode); err != nil {
			t.Errorf("applyColor(%q) = %v", mode, err)
		}
	}
	err := applyColor("sometimes")
	if cli.ExitCode(err) != 2 {
		t.Errorf("applyColor(sometimes) exit code = %d, want 2", cli.ExitCode(err))
	}
}

func TestRunPrintJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		fmt.Fprint(writer, membersJSON)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Source.URL = server.URL
	cfg.Table.PageSize = 2

	var buffer bytes.Buffer
	opts := &options{json: true, search: "admin", page: 2}
	if err := runPrint(context.Background(), &buffer, cfg, opts, discardLogger()); err != nil {
		t.Fatalf("runPrint: %v", err)
	}

	var output pageOutput
	if err := json.Unmarshal(buffer.Bytes(), &output); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, buffer.String())
	}
	if output.Page != 2 || output.PageCount != 2 || output.FilteredCount != 3 || output.TotalCount != 12 {
		t.Errorf("output = %+v", output)
	}
	if len(output.Users) != 1 || output.Users[0].ID != 10 {
		t.Errorf("users = %+v, want only Sarah Potter", output.Users)
	}
}

func TestRunPrintEmptyPageJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte(membersJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Source.File = path

	var buffer bytes.Buffer
	opts := &options{json: true, search: "nobody", page: 1}
	if err := runPrint(context.Background(), &buffer, cfg, opts, discardLogger()); err != nil {
		t.Fatalf("runPrint: %v", err)
	}
	if !strings.Contains(buffer.String(), `"users": []`) {
		t.Errorf("empty page should encode users as []:\n%s", buffer.String())
	}
}

func TestRunPrintTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte(membersJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Source.File = path

	var buffer bytes.Buffer
	opts := &options{print: true, page: 5}
	if err := runPrint(context.Background(), &buffer, cfg, opts, discardLogger()); err != nil {
		t.Fatalf("runPrint: %v", err)
	}
	output := buffer.String()
	if !strings.Contains(output, "Keshav Muddaiah") || !strings.Contains(output, "Page 2 of 2") {
		t.Errorf("expected the clamped last page:\n%s", output)
	}
	if strings.Contains(output, "Aaron Miles") {
		t.Errorf("output includes page 1:\n%s", output)
	}
}

func TestRunPrintFetchErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/missing":
			http.NotFound(writer, request)
		case "/down":
			http.Error(writer, "maintenance", http.StatusServiceUnavailable)
		case "/forbidden":
			http.Error(writer, "AccessDenied", http.StatusForbidden)
		default:
			fmt.Fprint(writer, "<html>not json</html>")
		}
	}))
	defer server.Close()

	tests := []struct {
		name     string
		source   config.SourceConfig
		category cli.ErrorCategory
	}{
		{"404", config.SourceConfig{URL: server.URL + "/missing"}, cli.CategoryNotFound},
		{"503", config.SourceConfig{URL: server.URL + "/down"}, cli.CategoryTransient},
		{"403", config.SourceConfig{URL: server.URL + "/forbidden"}, cli.CategoryInternal},
		{"not json", config.SourceConfig{URL: server.URL + "/html"}, cli.CategoryInternal},
		{"missing file", config.SourceConfig{File: filepath.Join(t.TempDir(), "absent.json")}, cli.CategoryNotFound},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Source = test.source
			var buffer bytes.Buffer
			err := runPrint(context.Background(), &buffer, cfg, &options{print: true, page: 1}, discardLogger())

			var toolError *cli.ToolError
			if !errors.As(err, &toolError) {
				t.Fatalf("err = %v, want *cli.ToolError", err)
			}
			if toolError.Category != test.category {
				t.Errorf("category = %s, want %s (%v)", toolError.Category, test.category, err)
			}
			var fetchError *usersource.FetchError
			if !errors.As(err, &fetchError) {
				t.Errorf("err does not wrap a FetchError: %v", err)
			}
			if buffer.Len() != 0 {
				t.Errorf("wrote output on failure: %q", buffer.String())
			}
		})
	}
}

func TestCategorizeNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	address := server.URL
	server.Close()

	cfg := config.Default()
	cfg.Source.URL = address
	err := runPrint(context.Background(), io.Discard, cfg, &options{print: true, page: 1}, discardLogger())
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) || toolError.Category != cli.CategoryTransient {
		t.Errorf("err = %v, want a transient ToolError", err)
	}
}

func TestFanoutHandler(t *testing.T) {
	var warnOnly, everything bytes.Buffer
	handler := fanoutHandler{
		slog.NewTextHandler(&warnOnly, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&everything, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	logger := slog.New(handler).With("source", "test")

	logger.Info("loaded users", "count", 3)
	logger.Warn("dropped records with duplicate ids")

	if strings.Contains(warnOnly.String(), "loaded users") {
		t.Error("warn handler received an info record")
	}
	if !strings.Contains(warnOnly.String(), "dropped records") {
		t.Error("warn handler missed the warning")
	}
	if strings.Count(everything.String(), `"source":"test"`) != 2 {
		t.Errorf("debug handler output:\n%s", everything.String())
	}
	if handler.Enabled(context.Background(), slog.LevelDebug-1) {
		t.Error("fanout enabled below every handler's level")
	}
}

func TestOpenFileLogHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usertable.log")
	handler, closer, err := openFileLogHandler(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("openFileLogHandler: %v", err)
	}
	slog.New(handler).Info("deleted user", "id", 7)
	closer()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"deleted user"`) || !strings.Contains(string(data), `"id":7`) {
		t.Errorf("log file = %s", data)
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	if err := run([]string{"--help"}); err != nil {
		t.Errorf("--help: %v", err)
	}
	if err := run([]string{"--version"}); err != nil {
		t.Errorf("--version: %v", err)
	}
	if code := cli.ExitCode(run([]string{"--bogus"})); code != 2 {
		t.Errorf("unknown flag exit code = %d, want 2", code)
	}
	if code := cli.ExitCode(run([]string{"extra"})); code != 2 {
		t.Errorf("positional argument exit code = %d, want 2", code)
	}
}
