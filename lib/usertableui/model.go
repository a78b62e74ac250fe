// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usertableui

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/usertable/lib/tui"
	"github.com/bureau-foundation/usertable/lib/user"
	"github.com/bureau-foundation/usertable/lib/usersource"
	"github.com/bureau-foundation/usertable/lib/usertable"
)

// FocusRegion identifies which part of the view receives key input.
type FocusRegion int

const (
	// FocusTable routes keys to row and page navigation.
	FocusTable FocusRegion = iota

	// FocusSearch routes keys to the search bar.
	FocusSearch

	// FocusEdit routes keys to the inputs of the row being edited.
	FocusEdit
)

// fetchResultMsg carries the outcome of the initial fetch.
type fetchResultMsg struct {
	records []user.Record
	err     error
}

// Config holds the optional parts of a Model.
type Config struct {
	// Context bounds the fetch. Defaults to context.Background().
	Context context.Context

	// Logger receives load, delete and misuse records. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Theme defaults to tui.DefaultTheme.
	Theme *tui.Theme

	// KeyMap defaults to DefaultKeyMap.
	KeyMap *KeyMap

	// InitialPage is applied once the fetched records are loaded,
	// clamped to the page count. Zero keeps the first page.
	InitialPage int
}

// Model is the top-level bubbletea model for the user table.
type Model struct {
	table  *usertable.Table
	source usersource.Source
	ctx    context.Context
	logger *slog.Logger
	theme  tui.Theme
	keys   KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Fetch lifecycle. loading is true until the fetch result arrives.
	loading     bool
	loadError   string
	initialPage int

	// view is the last Derive() result; refreshed after every mutation.
	view   usertable.PageView
	cursor int

	focus  FocusRegion
	search SearchBar
	form   *editForm

	// Status line message from the log handler. statusSerial matches
	// the pending fade timer so an older timer cannot clear a newer
	// message.
	statusMessage string
	statusLevel   slog.Level
	statusSerial  int
}

// NewModel creates a Model over table. When source is non-nil, Init
// fetches from it and loads the result into table; otherwise table is
// shown as it is.
func NewModel(table *usertable.Table, source usersource.Source, config Config) Model {
	ctx := config.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	theme := tui.DefaultTheme
	if config.Theme != nil {
		theme = *config.Theme
	}
	keys := DefaultKeyMap
	if config.KeyMap != nil {
		keys = *config.KeyMap
	}

	model := Model{
		table:   table,
		source:  source,
		ctx:     ctx,
		logger:  logger,
		theme:   theme,
		keys:    keys,
		width:   defaultWidth,
		loading: source != nil,
		search:  NewSearchBar(),

		initialPage: config.InitialPage,
	}
	model.search.SetValue(table.Search())
	model.refresh()
	return model
}

// Init implements tea.Model. Issues the single fetch.
func (model Model) Init() tea.Cmd {
	if model.source == nil {
		return nil
	}
	return fetchUsers(model.ctx, model.source, model.logger)
}

// fetchUsers returns a tea.Cmd that runs the fetch off the event loop
// and delivers the result as a fetchResultMsg. The outcome is logged
// here rather than in Update: logger may be backed by a TUILogHandler,
// whose Send blocks until the event loop receives the record.
func fetchUsers(ctx context.Context, source usersource.Source, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		sourceName := source.Describe()
		records, err := source.Fetch(ctx)
		if err != nil {
			logger.Error("loading users failed", "source", sourceName, "error", err)
			return fetchResultMsg{err: err}
		}
		duplicates := usertable.DuplicateIDs(records)
		if len(duplicates) > 0 {
			logger.Warn("dropped records with duplicate ids", "source", sourceName, "ids", duplicates)
		}
		logger.Info("loaded users", "source", sourceName, "count", len(records)-len(duplicates))
		return fetchResultMsg{records: records}
	}
}

func (model Model) sourceName() string {
	if model.source == nil {
		return ""
	}
	return model.source.Describe()
}

// Table returns the table the model mutates.
func (model Model) Table() *usertable.Table {
	return model.table
}

// Focus returns the region receiving key input.
func (model Model) Focus() FocusRegion {
	return model.focus
}

// Cursor returns the index of the cursor row on the current page.
func (model Model) Cursor() int {
	return model.cursor
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch model.focus {
		case FocusSearch:
			return model.handleSearchKeys(message)
		case FocusEdit:
			return model.handleEditKeys(message)
		}
		return model.handleTableKeys(message)

	case tea.MouseMsg:
		cmd := model.handleMouse(message)
		return model, cmd

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case fetchResultMsg:
		model.handleFetchResult(message)

	case logRecordMsg:
		model.statusSerial++
		model.statusMessage = message.Summary
		model.statusLevel = message.Level
		serial := model.statusSerial
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{serial: serial}
		})

	case logRecordFadeMsg:
		if message.serial == model.statusSerial {
			model.statusMessage = ""
		}

	default:
		// Cursor blink and other input-internal messages.
		return model, model.forwardToInputs(message)
	}
	return model, nil
}

// handleFetchResult applies the fetch outcome. fetchUsers has already
// logged it.
func (model *Model) handleFetchResult(message fetchResultMsg) {
	model.loading = false
	if message.err != nil {
		model.loadError = message.err.Error()
		model.refresh()
		return
	}

	model.table.Load(message.records)
	if model.initialPage > 0 {
		model.table.GoToPage(model.initialPage)
		model.initialPage = 0
	}
	model.refresh()
}

func (model Model) handleTableKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.SearchFocus):
		model.focus = FocusSearch
		return model, model.search.Focus()

	case key.Matches(message, model.keys.SearchClear):
		if model.table.Search() != "" {
			model.applySearch("")
		}

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)

	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)

	case key.Matches(message, model.keys.FirstPage):
		model.changePage(model.table.FirstPage)

	case key.Matches(message, model.keys.PreviousPage):
		model.changePage(model.table.PreviousPage)

	case key.Matches(message, model.keys.NextPage):
		model.changePage(model.table.NextPage)

	case key.Matches(message, model.keys.LastPage):
		model.changePage(model.table.LastPage)

	case key.Matches(message, model.keys.GoToPage):
		page, err := strconv.Atoi(message.String())
		if err == nil {
			model.changePage(func() { model.table.GoToPage(page) })
		}

	case key.Matches(message, model.keys.ToggleRow):
		if row, ok := model.cursorRow(); ok {
			model.table.ToggleOne(row.Record.ID)
			model.refresh()
		}

	case key.Matches(message, model.keys.ToggleAll):
		model.table.ToggleAll()
		model.refresh()

	case key.Matches(message, model.keys.Edit):
		if row, ok := model.cursorRow(); ok {
			return model, model.startEdit(row.Record.ID)
		}

	case key.Matches(message, model.keys.Delete):
		if row, ok := model.cursorRow(); ok {
			model.deleteOne(row.Record.ID)
		}

	case key.Matches(message, model.keys.DeleteSelected):
		model.deleteSelected()
	}
	return model, nil
}

// handleSearchKeys processes keystrokes while the search bar has focus.
// Esc clears a non-empty term first and leaves the bar on a second
// press; Enter returns focus to the rows keeping the term.
func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.Cancel):
		if model.search.Value() != "" {
			model.search.SetValue("")
			model.applySearch("")
		} else {
			model.search.Blur()
			model.focus = FocusTable
		}
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		model.search.Blur()
		model.focus = FocusTable
		return model, nil
	}

	changed, cmd := model.search.Update(message)
	if changed {
		model.applySearch(model.search.Value())
	}
	return model, cmd
}

// handleEditKeys processes keystrokes while a row is being edited.
func (model Model) handleEditKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.Cancel):
		model.cancelEdit()
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		model.saveEdit()
		return model, nil

	case key.Matches(message, model.keys.NextField):
		return model, model.form.cycle(1)

	case key.Matches(message, model.keys.PreviousField):
		return model, model.form.cycle(-1)
	}

	changed, cmd := model.form.update(message)
	if changed {
		field := model.form.field()
		if err := model.table.UpdateField(field, model.form.value(field)); err != nil {
			model.logger.Debug("updating draft", "field", string(field), "error", err)
		}
		model.refresh()
	}
	return model, cmd
}

// forwardToInputs passes non-key messages (cursor blink) to whichever
// input has focus.
func (model *Model) forwardToInputs(message tea.Msg) tea.Cmd {
	switch model.focus {
	case FocusSearch:
		_, cmd := model.search.Update(message)
		return cmd
	case FocusEdit:
		if model.form != nil {
			_, cmd := model.form.update(message)
			return cmd
		}
	}
	return nil
}

func (model *Model) applySearch(term string) {
	if model.search.Value() != term {
		model.search.SetValue(term)
	}
	model.table.SetSearch(term)
	model.cursor = 0
	model.refresh()
}

func (model *Model) changePage(navigate func()) {
	before := model.table.Page()
	navigate()
	if model.table.Page() != before {
		model.cursor = 0
	}
	model.refresh()
}

func (model *Model) startEdit(id int) tea.Cmd {
	if err := model.table.StartEdit(id); err != nil {
		model.logger.Debug("starting edit", "id", id, "error", err)
		return nil
	}
	session, _ := model.table.Editing()
	form, cmd := newEditForm(session.Draft)
	model.form = form
	model.focus = FocusEdit
	model.refresh()
	return cmd
}

func (model *Model) saveEdit() {
	session, editing := model.table.Editing()
	if err := model.table.Save(); err != nil {
		model.logger.Debug("saving edit", "error", err)
	} else if editing {
		model.logger.Info("updated user", "id", session.TargetID)
	}
	model.closeForm()
}

func (model *Model) cancelEdit() {
	model.table.Cancel()
	model.closeForm()
}

func (model *Model) closeForm() {
	model.form = nil
	model.focus = FocusTable
	model.refresh()
}

func (model *Model) deleteOne(id int) {
	if model.table.DeleteOne(id) {
		model.logger.Info("deleted user", "id", id)
	}
	model.refresh()
}

func (model *Model) deleteSelected() {
	if removed := model.table.DeleteSelected(); removed > 0 {
		model.logger.Info("deleted selected users", "count", removed)
	}
	model.refresh()
}

// refresh re-derives the page and keeps the cursor on a visible row.
// An open form is dropped when the table no longer has an edit session
// (its target was deleted).
func (model *Model) refresh() {
	model.view = model.table.Derive()
	if model.form != nil && model.view.Editing == nil {
		model.form = nil
		model.focus = FocusTable
	}
	if model.cursor >= len(model.view.Rows) {
		model.cursor = len(model.view.Rows) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

func (model *Model) moveCursor(delta int) {
	if len(model.view.Rows) == 0 {
		return
	}
	model.cursor += delta
	if model.cursor < 0 {
		model.cursor = 0
	}
	if model.cursor >= len(model.view.Rows) {
		model.cursor = len(model.view.Rows) - 1
	}
}

func (model Model) cursorRow() (usertable.Row, bool) {
	if model.cursor < 0 || model.cursor >= len(model.view.Rows) {
		return usertable.Row{}, false
	}
	return model.view.Rows[model.cursor], true
}

// handleMouse handles wheel scrolling and left clicks on checkboxes,
// action labels and pager segments.
func (model *Model) handleMouse(message tea.MouseMsg) tea.Cmd {
	switch message.Button {
	case tea.MouseButtonWheelUp:
		if model.focus == FocusTable {
			model.moveCursor(-1)
		}
		return nil

	case tea.MouseButtonWheelDown:
		if model.focus == FocusTable {
			model.moveCursor(1)
		}
		return nil

	case tea.MouseButtonLeft:
		if message.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}

	layout := layoutColumns(model.width)
	checkboxStart, checkboxEnd := layout.checkboxX()
	onCheckbox := message.X >= checkboxStart && message.X < checkboxEnd

	switch {
	case message.Y == searchY:
		if model.focus == FocusTable {
			model.focus = FocusSearch
			return model.search.Focus()
		}
		return nil

	case message.Y == headerY && onCheckbox && model.focus == FocusTable:
		model.table.ToggleAll()
		model.refresh()
		return nil

	case message.Y >= rowsStartY && message.Y < rowsStartY+len(model.view.Rows):
		return model.clickRow(message.Y-rowsStartY, message.X, layout, onCheckbox)

	case message.Y == pagerY(model.view) && model.focus == FocusTable:
		segment, ok := segmentAt(layoutPager(model.view), message.X)
		if ok && segment.enabled {
			model.activatePagerSegment(segment)
		}
	}
	return nil
}

func (model *Model) clickRow(index, x int, layout columnLayout, onCheckbox bool) tea.Cmd {
	row := model.view.Rows[index]

	if model.focus == FocusEdit {
		if !row.Editing {
			return nil
		}
		switch layout.actionAt(x, true) {
		case rowActionSave:
			model.saveEdit()
		case rowActionCancel:
			model.cancelEdit()
		}
		return nil
	}
	if model.focus == FocusSearch {
		model.search.Blur()
		model.focus = FocusTable
	}

	model.cursor = index
	if onCheckbox {
		model.table.ToggleOne(row.Record.ID)
		model.refresh()
		return nil
	}
	switch layout.actionAt(x, false) {
	case rowActionEdit:
		return model.startEdit(row.Record.ID)
	case rowActionDelete:
		model.deleteOne(row.Record.ID)
	}
	return nil
}

func (model *Model) activatePagerSegment(segment pagerSegment) {
	switch segment.action {
	case pagerDeleteSelected:
		model.deleteSelected()
	case pagerFirst:
		model.changePage(model.table.FirstPage)
	case pagerPrevious:
		model.changePage(model.table.PreviousPage)
	case pagerNext:
		model.changePage(model.table.NextPage)
	case pagerLast:
		model.changePage(model.table.LastPage)
	case pagerPage:
		model.changePage(func() { model.table.GoToPage(segment.page) })
	}
}
