package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"booknerd/internal/catalog"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global Keybindings (Ctrl+C, Esc)
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEsc:
			if m.viewMode == MenuView {
				return m, tea.Quit
			}
			return m.toMenu(), nil
		}

		// Menu Handling
		if m.viewMode == MenuView {
			if msg.Type == tea.KeyEnter {
				if selected, ok := m.menu.SelectedItem().(menuItem); ok {
					return m.openView(selected.view)
				}
			}
			var cmd tea.Cmd
			m.menu, cmd = m.menu.Update(msg)
			return m, cmd
		}

		// Read-only screens scroll; Enter goes back to the menu.
		if m.viewMode == ResultsView || m.viewMode == HelpView {
			if msg.Type == tea.KeyEnter {
				return m.toMenu(), nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		// Wizard screens: Enter submits the current answer.
		if msg.Type == tea.KeyEnter {
			input := m.input.Value()
			m.input.Reset()
			switch m.viewMode {
			case AddView:
				return m.handleAddInput(input)
			case RemoveView:
				return m.handleRemoveInput(input)
			case SearchView:
				return m.handleSearchInput(input)
			case StatusView:
				return m.handleStatusInput(input)
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-6)
		m.viewport.Width = msg.Width - 4
		if m.viewport.Width < 20 {
			m.viewport.Width = 20
		}
		m.viewport.Height = msg.Height - 8
		if m.viewport.Height < 5 {
			m.viewport.Height = 5
		}
		m.ready = true
		return m, nil
	}

	return m, nil
}

// openView transitions from the menu to the selected screen.
func (m Model) openView(v ViewMode) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch v {
	case QuitView:
		return m, tea.Quit

	case AddView:
		m.addForm = &addFormState{}
		m.input.Placeholder = "Book title..."
		m.input.Focus()
		m.viewMode = AddView
		return m, textinput.Blink

	case RemoveView:
		m.input.Placeholder = "Book ID..."
		m.input.Focus()
		m.viewMode = RemoveView
		return m, textinput.Blink

	case SearchView:
		m.searchForm = &searchFormState{}
		m.input.Placeholder = fmt.Sprintf("One of: %s...", strings.Join(catalog.SearchableFields(), ", "))
		m.input.Focus()
		m.viewMode = SearchView
		return m, textinput.Blink

	case StatusView:
		m.statusForm = &statusFormState{}
		m.input.Placeholder = "Book ID..."
		m.input.Focus()
		m.viewMode = StatusView
		return m, textinput.Blink

	case ResultsView:
		m.logger.Debug("listing catalog", zap.Int("books", m.store.Len()))
		m.viewport.SetContent(m.renderBooks("Catalog", m.store.ListAll()))
		m.viewport.GotoTop()
		m.viewMode = ResultsView
		return m, nil

	case HelpView:
		m.viewport.SetContent(m.renderHelp())
		m.viewport.GotoTop()
		m.viewMode = HelpView
		return m, nil
	}

	return m, nil
}

// toMenu returns to the main menu and clears any wizard state.
func (m Model) toMenu() Model {
	m.viewMode = MenuView
	m.addForm = nil
	m.searchForm = nil
	m.statusForm = nil
	m.input.Reset()
	m.input.Blur()
	return m
}

// finish returns to the menu with a success notice.
func (m Model) finish(notice string) Model {
	m = m.toMenu()
	m.notice = notice
	m.noticeErr = false
	return m
}

// finishWithError returns to the menu with a failure notice.
func (m Model) finishWithError(notice string) Model {
	m = m.toMenu()
	m.notice = notice
	m.noticeErr = true
	return m
}
