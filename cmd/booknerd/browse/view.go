// Package browse provides the interactive TUI shell for bookNERD.
// This file contains view rendering functions.
package browse

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"booknerd/cmd/booknerd/ui"
	"booknerd/internal/catalog"
)

func (m Model) View() string {
	if !m.ready {
		return "Opening the catalog..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	switch m.viewMode {
	case MenuView:
		sections := []string{header}
		if m.notice != "" {
			style := m.styles.Success
			if m.noticeErr {
				style = m.styles.Error
			}
			sections = append(sections, m.styles.Content.Render(style.Render(m.notice)))
		}
		sections = append(sections, m.styles.Content.Render(m.menu.View()), footer)
		return lipgloss.JoinVertical(lipgloss.Left, sections...)

	case ResultsView, HelpView:
		hint := m.styles.Footer.Render("Enter or Esc: back to menu")
		return lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			m.styles.Content.Render(m.viewport.View()),
			hint,
			footer,
		)

	default: // wizard screens
		inputStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.styles.Theme.Accent).
			Padding(0, 1)

		sections := []string{header, m.styles.Content.Render(m.promptLine())}
		if m.notice != "" && m.noticeErr {
			sections = append(sections, m.styles.Content.Render(m.styles.Error.Render(m.notice)))
		}
		sections = append(sections, inputStyle.Render(m.input.View()), footer)
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}
}

// promptLine states what the current wizard step expects.
func (m Model) promptLine() string {
	ask := func(title, question string) string {
		return m.styles.Bold.Render(title) + "\n" + m.styles.Body.Render(question)
	}

	switch m.viewMode {
	case AddView:
		step := 0
		if m.addForm != nil {
			step = m.addForm.Step
		}
		switch step {
		case 0:
			return ask("Add a book", "What is the title?")
		case 1:
			return ask("Add a book", fmt.Sprintf("Who wrote %q?", m.addForm.Title))
		default:
			return ask("Add a book", "What year was it published?")
		}

	case RemoveView:
		return ask("Remove a book", "Which ID should go?")

	case SearchView:
		if m.searchForm != nil && m.searchForm.Step == 1 {
			return ask("Search the catalog", fmt.Sprintf("Search %s for what?", m.searchForm.Field))
		}
		return ask("Search the catalog", "Which field should I search?")

	case StatusView:
		if m.statusForm != nil && m.statusForm.Step == 1 {
			return ask("Update status", fmt.Sprintf("New status for book %d?", m.statusForm.ID))
		}
		return ask("Update status", "Which book ID?")
	}

	return ""
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" bookNERD ")
	version := m.styles.Badge.Render("v0.3")
	library := m.styles.Muted.Render(" " + m.store.Path())

	headerLine := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", version)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		library,
		m.styles.RenderDivider(m.width),
	)
}

func (m Model) renderFooter() string {
	count := m.store.Len()
	noun := "books"
	if count == 1 {
		noun = "book"
	}
	timestamp := time.Now().Format("15:04")
	help := m.styles.Muted.Render(fmt.Sprintf(
		"%d %s | %s | Esc: back  Ctrl+C: quit", count, noun, timestamp))
	return lipgloss.NewStyle().MarginTop(1).Render(help)
}

// renderBooks renders catalog records as a table.
func (m Model) renderBooks(title string, books []catalog.Book) string {
	if len(books) == 0 {
		return m.styles.Muted.Render("The catalog is empty. Add a book to get started.")
	}

	table := ui.NewTable(title,
		ui.Column{Title: "ID", Align: lipgloss.Right},
		ui.Column{Title: "TITLE"},
		ui.Column{Title: "AUTHOR"},
		ui.Column{Title: "YEAR", Align: lipgloss.Right},
		ui.Column{Title: "STATUS"},
	)
	for _, b := range books {
		status := m.styles.Success.Render(string(b.Status))
		if b.Status == catalog.StatusCheckedOut {
			status = m.styles.Warning.Render(string(b.Status))
		}
		table.AddRow(strconv.Itoa(b.ID), b.Title, b.Author, strconv.Itoa(b.Year), status)
	}
	return table.View(m.styles)
}
