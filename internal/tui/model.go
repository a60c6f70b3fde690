// Package tui provides the terminal user interface for siganpyo.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joonholee/siganpyo/internal/catalog"
	"github.com/joonholee/siganpyo/internal/config"
	"github.com/joonholee/siganpyo/internal/timetable"
	"github.com/joonholee/siganpyo/internal/tui/commands"
	"github.com/joonholee/siganpyo/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // Moving a schedule block to a new cell
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone          ModalType = iota
	ModalAddLecture              // Pick a catalog lecture for the cursor cell
	ModalConfirmDelete           // Confirm removal of a lecture from the table
)

// Position represents a cursor position in the grid.
type Position struct {
	Day int // Index into the grid day columns
	Row int // 0-based axis row index (slot = Row+1)
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	catalog catalog.Repository
	config  *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Domain state
	store   *timetable.Store
	grid    timetable.Grid
	axis    []timetable.AxisRow
	session *timetable.Session

	tables []string
	active int // Index into tables

	// State
	cursor Position
	mode   Mode

	// Move mode: identity and origin of the held block
	moveKey   string
	moveIndex int

	// Modal state
	modalType     ModalType
	entries       []catalog.Entry // Loaded lecture catalog
	filtered      []catalog.Entry // Entries matching the filter input
	listSel       int             // Selected row in the add-lecture list
	filter        textinput.Model
	deleteLecture timetable.Lecture // Target of the confirm-delete modal

	// Overlay state
	overlay OverlayModel

	// Terminal dimensions and layout
	width    int
	height   int
	colWidth int

	// Cached render data
	styleCache  StyleCache
	layoutCache LayoutCache

	// Scene memoization: rebuilt only when the table mutates or a drag is live
	cachedScene   *timetable.Scene
	cachedTable   string
	cachedVersion uint64

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error
}

// New creates a new TUI model.
func New(repo catalog.Repository, cfg *config.Config) *Model {
	// Filter input for the add-lecture modal
	filter := textinput.New()
	filter.Placeholder = "검색..."
	filter.CharLimit = 64
	filter.Width = 32

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to hanji on error
		t, _ = theme.Load("hanji")
	}

	// Create styles from theme
	styles := NewStyles(t)

	filter.PlaceholderStyle = styles.ModalPlaceholderStyle
	filter.TextStyle = styles.ModalInputTextStyle
	filter.PromptStyle = styles.ModalInputTextStyle
	filter.Cursor.Style = styles.ModalInputCursorStyle
	filter.Cursor.TextStyle = styles.ModalInputTextStyle

	grid := timetable.NewGrid(cfg.Grid.Days, cfg.Metrics())
	axis := timetable.BuildAxis(cfg.Grid.BaseTime, cfg.Tail())

	store := timetable.NewStore(cfg.Grid.Days)
	nTables := cfg.UI.Tables
	if nTables < 1 {
		nTables = 1
	}
	tables := make([]string, 0, nTables)
	for i := 0; i < nTables; i++ {
		tables = append(tables, store.NewTable())
	}

	m := &Model{
		catalog:    repo,
		config:     cfg,
		theme:      t,
		styles:     styles,
		store:      store,
		grid:       grid,
		axis:       axis,
		session:    timetable.NewSession(),
		tables:     tables,
		active:     0,
		cursor:     Position{Day: 0, Row: 0},
		mode:       ModeNormal,
		filter:     filter,
		overlay:    NewOverlayModel(),
		colWidth:   defaultColWidth,
		styleCache: NewStyleCache(styles, defaultColWidth),
	}
	m.layoutCache = m.buildLayoutCache(0, 0)

	return m
}

// ActiveTable returns the id of the table under the tab cursor.
func (m Model) ActiveTable() string {
	if len(m.tables) == 0 {
		return ""
	}
	return m.tables[m.active]
}

// Scene returns the current scene graph, rebuilding it only when the
// active table has mutated since the last build. A live drag bypasses the
// memo because the session offset changes without a store mutation.
func (m *Model) Scene() timetable.Scene {
	tableID := m.ActiveTable()
	version := m.store.Version(tableID)
	if m.cachedScene != nil && m.cachedTable == tableID &&
		m.cachedVersion == version && !m.session.Dragging() {
		return *m.cachedScene
	}

	schedules := m.store.Snapshot(tableID)
	assigner := timetable.NewAssigner(schedules, m.theme.Blocks)
	scene := timetable.BuildScene(tableID, schedules, m.grid, m.axis, assigner, m.session)

	m.cachedScene = &scene
	m.cachedTable = tableID
	m.cachedVersion = version
	return scene
}

// invalidateScene drops the memoized scene after out-of-band state changes.
func (m *Model) invalidateScene() {
	m.cachedScene = nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadCatalog(m.catalog)
}

// Run starts the TUI.
func Run(repo catalog.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo catalog.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
