// Package browse provides the interactive TUI shell for bookNERD.
// The shell is split across multiple files:
//   - model.go: Types, menu items, New, Init (this file)
//   - model_update.go: Update loop and key routing
//   - forms.go: Add/remove/search/status wizards
//   - view.go: Rendering functions
//   - help.go: Help screen
package browse

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"booknerd/cmd/booknerd/ui"
	"booknerd/internal/catalog"
	"booknerd/internal/config"
)

// ViewMode determines which screen is active
type ViewMode int

const (
	MenuView ViewMode = iota
	AddView
	RemoveView
	SearchView
	StatusView
	ResultsView
	HelpView
	QuitView
)

// menuItem is a list item for the main menu
type menuItem struct {
	title, desc string
	view        ViewMode
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// Model is the main model for the interactive catalog shell
type Model struct {
	// UI Components
	input    textinput.Model
	viewport viewport.Model
	menu     list.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	viewMode ViewMode

	// Catalog backend
	store  *catalog.Store
	logger *zap.Logger

	// Wizard State
	addForm    *addFormState
	searchForm *searchFormState
	statusForm *statusFormState

	// Outcome line shown on the menu after an operation
	notice    string
	noticeErr bool

	width  int
	height int
	ready  bool
}

// New builds the shell around an already-loaded catalog store.
func New(st *catalog.Store, cfg *config.Config, logger *zap.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))

	// Initialize textinput for wizard prompts
	ti := textinput.New()
	ti.Placeholder = "Book title..."
	ti.Prompt = "| "
	ti.CharLimit = 256
	ti.Width = 60
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput

	// Initialize viewport for results and help
	vp := viewport.New(80, 20)
	vp.SetContent("")

	// Initialize the main menu
	items := []list.Item{
		menuItem{title: "Add a book", desc: "Catalog a new title", view: AddView},
		menuItem{title: "Remove a book", desc: "Drop a record by its ID", view: RemoveView},
		menuItem{title: "Search the catalog", desc: "Match on title, author, or year", view: SearchView},
		menuItem{title: "List all books", desc: "Every record, in catalog order", view: ResultsView},
		menuItem{title: "Update status", desc: "Mark a book Available or CheckedOut", view: StatusView},
		menuItem{title: "Help", desc: "Keys and usage", view: HelpView},
		menuItem{title: "Quit", desc: "Everything is already saved", view: QuitView},
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "bookNERD"
	menu.SetShowHelp(false)
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.Styles.Title = styles.Title

	// Initialize markdown renderer for the help screen
	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	} else {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(80),
		)
	}

	return Model{
		input:    ti,
		viewport: vp,
		menu:     menu,
		styles:   styles,
		renderer: renderer,
		viewMode: MenuView,
		store:    st,
		logger:   logger,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
