// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// usertable is an interactive terminal table for browsing and managing
// a list of users fetched once from a JSON endpoint or a local file.
//
// Two modes of operation:
//
// Interactive mode (default): fetches the list in the background and
// runs a full-screen view with search, pagination, selection, inline
// edit and delete. Changes live in memory only and are lost on exit.
//
// Print mode (--print or --json): fetches synchronously, applies
// --search and --page, writes one page to stdout and exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/usertable/lib/cli"
	"github.com/bureau-foundation/usertable/lib/config"
	"github.com/bureau-foundation/usertable/lib/tui"
	"github.com/bureau-foundation/usertable/lib/user"
	"github.com/bureau-foundation/usertable/lib/usersource"
	"github.com/bureau-foundation/usertable/lib/usertable"
	"github.com/bureau-foundation/usertable/lib/usertableui"
	"github.com/bureau-foundation/usertable/lib/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var exitError *cli.ExitError
		if !errors.As(err, &exitError) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

// options holds the parsed command line.
type options struct {
	configPath string
	url        string
	file       string
	pageSize   int
	search     string
	page       int
	print      bool
	json       bool
	color      string
	logOutput  string
	help       bool
	version    bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("usertable", pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "YAML config file (default: $"+config.EnvironmentVariable+", else built-in defaults)")
	flagSet.StringVar(&opts.url, "url", "", "fetch users from this URL")
	flagSet.StringVar(&opts.file, "file", "", "read users from a local .json or .jsonc file instead of a URL")
	flagSet.IntVar(&opts.pageSize, "page-size", 0, "rows per page (default from config: 10)")
	flagSet.StringVar(&opts.search, "search", "", "initial search term")
	flagSet.IntVar(&opts.page, "page", 1, "initial page (clamped to the page count)")
	flagSet.BoolVar(&opts.print, "print", false, "print one page as a table and exit")
	flagSet.BoolVar(&opts.json, "json", false, "print one page as JSON and exit")
	flagSet.StringVar(&opts.color, "color", "auto", "color output for --print: auto, always or never")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolVar(&opts.version, "version", false, "print version information and exit")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show help")
	flagSet.SetOutput(io.Discard)
	return flagSet
}

func run(args []string) error {
	var opts options
	flagSet := newFlagSet(&opts)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return cli.Validation("%w", err).WithHint("Run 'usertable --help' for usage.")
	}
	if opts.help {
		printHelp(flagSet)
		return nil
	}
	if opts.version {
		version.Print(os.Stdout, "usertable")
		return nil
	}
	if remaining := flagSet.Args(); len(remaining) > 0 {
		return cli.Validation("unexpected argument: %s", remaining[0])
	}

	cfg, err := loadConfig(flagSet, &opts)
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return cli.Validation("%w", err)
	}

	if opts.print || opts.json {
		if err := applyColor(opts.color); err != nil {
			return err
		}
		logger := cli.NewCommandLogger(os.Stderr, level)
		return runPrint(context.Background(), os.Stdout, cfg, &opts, logger)
	}
	return runInteractive(cfg, &opts, level)
}

// loadConfig reads the config file (--config, then USERTABLE_CONFIG,
// then defaults), applies flag overrides and validates the result.
func loadConfig(flagSet *pflag.FlagSet, opts *options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, cli.NotFound("%w", err).
				WithHint("Pass --config with an existing file, or unset " + config.EnvironmentVariable + " to use the defaults.")
		}
		return nil, cli.Validation("%w", err)
	}

	// A URL on the command line replaces a file from the config, and
	// the other way round.
	if flagSet.Changed("url") {
		cfg.Source.URL = opts.url
		cfg.Source.File = ""
	}
	if flagSet.Changed("file") {
		cfg.Source.File = opts.file
	}
	if flagSet.Changed("page-size") {
		cfg.Table.PageSize = opts.pageSize
	}
	if flagSet.Changed("log-output") {
		cfg.Log.Output = opts.logOutput
	}

	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyColor sets the lipgloss color profile for print mode.
func applyColor(mode string) error {
	switch mode {
	case "auto":
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return cli.Validation("invalid --color %q", mode).WithHint("Use auto, always or never.")
	}
	return nil
}

// pageOutput is the --json document.
type pageOutput struct {
	Page          int           `json:"page"`
	PageCount     int           `json:"page_count"`
	PageSize      int           `json:"page_size"`
	Search        string        `json:"search,omitempty"`
	FilteredCount int           `json:"filtered_count"`
	TotalCount    int           `json:"total_count"`
	Users         []user.Record `json:"users"`
}

func newPageOutput(view usertable.PageView) pageOutput {
	output := pageOutput{
		Page:          view.Page,
		PageCount:     view.PageCount,
		PageSize:      view.PageSize,
		Search:        view.Search,
		FilteredCount: view.FilteredCount,
		TotalCount:    view.TotalCount,
		Users:         make([]user.Record, 0, len(view.Rows)),
	}
	for _, row := range view.Rows {
		output.Users = append(output.Users, row.Record)
	}
	return output
}

// runPrint fetches the list, positions the table per the flags and
// writes one page to writer.
func runPrint(ctx context.Context, writer io.Writer, cfg *config.Config, opts *options, logger *slog.Logger) error {
	source, err := usersource.New(cfg.Source, logger)
	if err != nil {
		return cli.Validation("%w", err)
	}

	records, err := source.Fetch(ctx)
	if err != nil {
		return categorizeFetchError(err)
	}

	table := usertable.NewTable(cfg.Table.PageSize)
	if duplicates := table.Load(records); len(duplicates) > 0 {
		logger.Warn("dropped records with duplicate ids", "source", source.Describe(), "ids", duplicates)
	}
	table.SetSearch(opts.search)
	table.GoToPage(opts.page)
	view := table.Derive()

	if opts.json {
		if err := cli.WriteJSON(writer, newPageOutput(view)); err != nil {
			return cli.Internal("writing JSON: %w", err)
		}
		return nil
	}

	width := 0
	if file, ok := writer.(*os.File); ok {
		width = terminalWidth(file)
	}
	if _, err := fmt.Fprintln(writer, usertableui.RenderPage(view, tui.DefaultTheme, width)); err != nil {
		return cli.Internal("writing table: %w", err)
	}
	return nil
}

// categorizeFetchError maps a failed fetch to a CLI error category: a
// 404 or missing file is not-found, a network failure or 5xx is
// transient, anything else (4xx, malformed payload) is internal.
func categorizeFetchError(err error) error {
	if usersource.IsNotFound(err) {
		return cli.NotFound("%w", err).WithHint("Check --url or --file.")
	}
	var fetchError *usersource.FetchError
	if errors.As(err, &fetchError) {
		if fetchError.StatusCode >= 500 || (fetchError.StatusCode == 0 && isNetworkFailure(fetchError.Err)) {
			return cli.Transient("%w", err).WithHint("The source may be temporarily unavailable. Try again.")
		}
	}
	return cli.Internal("%w", err)
}

// runInteractive runs the full-screen view until the user quits.
//
// Log records are routed through a TUILogHandler that shows warnings
// and errors in the status line instead of writing to stderr (which
// would corrupt the alternate screen). An optional file logger
// captures every record as JSON lines.
func runInteractive(cfg *config.Config, opts *options, level slog.Level) error {
	tuiHandler := usertableui.NewTUILogHandler(slog.LevelWarn)

	var logger *slog.Logger
	if cfg.Log.Output != "" {
		fileHandler, fileCloser, err := openFileLogHandler(cfg.Log.Output, level)
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", cfg.Log.Output, err)
		}
		defer fileCloser()
		logger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	} else {
		logger = slog.New(tuiHandler)
	}

	source, err := usersource.New(cfg.Source, logger)
	if err != nil {
		return cli.Validation("%w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	table := usertable.NewTable(cfg.Table.PageSize)
	table.SetSearch(opts.search)
	model := usertableui.NewModel(table, source, usertableui.Config{
		Context:     ctx,
		Logger:      logger,
		InitialPage: opts.page,
	})

	var programOptions []tea.ProgramOption
	if cfg.UI.AltScreen {
		programOptions = append(programOptions, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		programOptions = append(programOptions, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, programOptions...)
	tuiHandler.SetProgram(program)

	if _, err := program.Run(); err != nil {
		return cli.Internal("running terminal UI: %w", err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `usertable: interactive table for browsing and managing users.

Fetches the user list once (by default from the public members
endpoint) and shows it ten rows per page. Search filters by id, name,
email or role. Rows can be selected, edited in place and deleted; all
changes are in memory only.

Usage:
  usertable [flags]

Examples:
  # Browse the default member list
  usertable

  # Browse a local file
  usertable --file users.jsonc

  # Print the second page of admins and exit
  usertable --print --search admin --page 2

  # Same, as JSON
  usertable --json --search admin --page 2

Keys:
  ↑/↓ j/k move   ←/→ h/l page   g/G first/last   1-9 go to page
  / search       space select   a select page    e edit
  d delete       D delete selected                q quit

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
