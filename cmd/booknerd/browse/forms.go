package browse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"booknerd/internal/catalog"
	"booknerd/internal/logging"
)

// The wizards mirror the menu flow: one question per step, Enter to answer,
// Esc to abandon. Each terminal step runs the catalog operation and returns
// to the menu with an outcome notice.

// addFormState tracks the add-book wizard.
type addFormState struct {
	Step   int // 0: title, 1: author, 2: year
	Title  string
	Author string
}

// handleAddInput processes one answer of the add-book wizard.
func (m Model) handleAddInput(input string) (tea.Model, tea.Cmd) {
	if m.addForm == nil {
		m.addForm = &addFormState{}
	}

	switch m.addForm.Step {
	case 0: // Title
		title := strings.TrimSpace(input)
		if title == "" {
			m.notice = "Title cannot be empty."
			m.noticeErr = true
			return m, nil
		}
		m.addForm.Title = title
		m.addForm.Step = 1
		m.notice = ""
		m.input.Placeholder = "Author..."
		return m, nil

	case 1: // Author
		author := strings.TrimSpace(input)
		if author == "" {
			m.notice = "Author cannot be empty."
			m.noticeErr = true
			return m, nil
		}
		m.addForm.Author = author
		m.addForm.Step = 2
		m.notice = ""
		m.input.Placeholder = "Publication year..."
		return m, nil

	case 2: // Year, then persist
		year, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || year < 0 {
			m.notice = "Year must be a whole number, 0 or later."
			m.noticeErr = true
			return m, nil
		}

		start := time.Now()
		id, err := m.store.Add(m.addForm.Title, m.addForm.Author, year)
		logging.Audit(logging.AuditBookAdd, id, m.addForm.Title, start, err)
		if err != nil {
			m.logger.Error("add failed", zap.String("title", m.addForm.Title), zap.Error(err))
			return m.finishWithError(fmt.Sprintf("Could not add %q: %v", m.addForm.Title, err)), nil
		}
		m.logger.Info("book added", zap.Int("id", id), zap.String("title", m.addForm.Title))
		return m.finish(fmt.Sprintf("Added %q with ID %d.", m.addForm.Title, id)), nil
	}

	return m, nil
}

// handleRemoveInput removes the book with the entered ID.
func (m Model) handleRemoveInput(input string) (tea.Model, tea.Cmd) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		m.notice = "Book ID must be a number."
		m.noticeErr = true
		return m, nil
	}

	start := time.Now()
	err = m.store.Remove(id)
	logging.Audit(logging.AuditBookRemove, id, "", start, err)
	if err != nil {
		m.logger.Warn("remove failed", zap.Int("id", id), zap.Error(err))
		return m.finishWithError(fmt.Sprintf("Could not remove book %d: %v", id, err)), nil
	}
	m.logger.Info("book removed", zap.Int("id", id))
	return m.finish(fmt.Sprintf("Removed book %d.", id)), nil
}

// searchFormState tracks the two-step search wizard.
type searchFormState struct {
	Step  int // 0: field, 1: query
	Field string
}

// handleSearchInput processes one answer of the search wizard. An
// unsupported field is not an error here; it simply matches nothing.
func (m Model) handleSearchInput(input string) (tea.Model, tea.Cmd) {
	if m.searchForm == nil {
		m.searchForm = &searchFormState{}
	}

	switch m.searchForm.Step {
	case 0: // Field
		m.searchForm.Field = strings.TrimSpace(input)
		m.searchForm.Step = 1
		m.notice = ""
		m.input.Placeholder = "Search terms..."
		return m, nil

	case 1: // Query, then run the search
		field := m.searchForm.Field
		matches := m.store.Search(input, field)
		m.logger.Debug("search",
			zap.String("field", field),
			zap.String("query", input),
			zap.Int("matches", len(matches)))

		m = m.toMenu()
		m.viewMode = ResultsView
		if len(matches) == 0 {
			m.viewport.SetContent(m.styles.Muted.Render(
				fmt.Sprintf("No books match %q in %s.", input, field)))
		} else {
			m.viewport.SetContent(m.renderBooks(fmt.Sprintf("Matches for %q", input), matches))
		}
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

// statusFormState tracks the update-status wizard.
type statusFormState struct {
	Step int // 0: book ID, 1: new status
	ID   int
}

// handleStatusInput processes one answer of the update-status wizard. The
// status label goes to the store unparsed so validation lives in one place.
func (m Model) handleStatusInput(input string) (tea.Model, tea.Cmd) {
	if m.statusForm == nil {
		m.statusForm = &statusFormState{}
	}

	switch m.statusForm.Step {
	case 0: // Book ID
		id, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			m.notice = "Book ID must be a number."
			m.noticeErr = true
			return m, nil
		}
		m.statusForm.ID = id
		m.statusForm.Step = 1
		m.notice = ""
		m.input.Placeholder = fmt.Sprintf("%s or %s...", catalog.StatusAvailable, catalog.StatusCheckedOut)
		return m, nil

	case 1: // Status, then persist
		id := m.statusForm.ID
		label := strings.TrimSpace(input)

		start := time.Now()
		err := m.store.UpdateStatus(id, catalog.Status(label))
		logging.Audit(logging.AuditBookStatus, id, label, start, err)
		if err != nil {
			m.logger.Warn("status update failed", zap.Int("id", id), zap.String("status", label), zap.Error(err))
			return m.finishWithError(fmt.Sprintf("Could not update book %d: %v", id, err)), nil
		}
		m.logger.Info("status updated", zap.Int("id", id), zap.String("status", label))
		return m.finish(fmt.Sprintf("Book %d is now %s.", id, label)), nil
	}

	return m, nil
}
