package browse

const helpText = `## bookNERD

A single-shelf catalog for the books you actually own.

### Menu

| Entry | What it does |
|-------|--------------|
| Add a book | Prompts for title, author, and year, then assigns the next free ID |
| Remove a book | Drops a record by its ID |
| Search the catalog | Case-insensitive substring match on title, author, or year |
| List all books | Every record, in catalog order |
| Update status | Marks a book Available or CheckedOut |

### Keys

- Enter submits the current answer or menu choice
- Esc returns to the menu; from the menu it quits
- Ctrl+C quits from anywhere

Changes land in the library file the moment an operation succeeds, so there
is nothing to save on exit.
`

// renderHelp renders the help screen as markdown.
func (m Model) renderHelp() string {
	return m.safeRenderMarkdown(helpText)
}

// safeRenderMarkdown renders markdown with panic recovery
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			// If glamour panics, return plain text
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}
