// Package tui is an interactive terminal front-end for the phrase index.
// One input autocompletes on every keystroke, a second one runs a word search on Enter,
// and the tree can be exported without leaving the screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/bastiangx/phraseserve/internal/utils"
	"github.com/bastiangx/phraseserve/pkg/export"
	"github.com/bastiangx/phraseserve/pkg/suggest"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type focusField int

const (
	focusComplete focusField = iota
	focusSearch
)

// Model is the bubbletea model behind the form
type Model struct {
	index      suggest.IIndex
	limit      int
	exportPath string

	completeInput textinput.Model
	searchInput   textinput.Model
	focus         focusField

	completions []string
	matches     []string
	searched    bool

	status      string
	statusError bool
	width       int
}

// NewModel creates the form. limit bounds the autocomplete list.
func NewModel(index suggest.IIndex, limit int, exportPath string) *Model {
	complete := textinput.New()
	complete.Placeholder = "start typing a phrase"
	complete.Prompt = "› "
	complete.Focus()

	search := textinput.New()
	search.Placeholder = "a whole word"
	search.Prompt = "› "

	return &Model{
		index:         index,
		limit:         limit,
		exportPath:    exportPath,
		completeInput: complete,
		searchInput:   search,
		width:         100,
	}
}

// Run starts the program on the alternate screen and blocks until the user quits
func Run(index suggest.IIndex, limit int, exportPath string) error {
	_, err := tea.NewProgram(NewModel(index, limit, exportPath), tea.WithAltScreen()).Run()
	return err
}

// Init starts the cursor blink
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			return m, m.toggleFocus()
		case "ctrl+e":
			m.exportTree()
			return m, nil
		case "enter":
			if m.focus == focusSearch {
				m.runSearch()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusComplete {
		before := m.completeInput.Value()
		m.completeInput, cmd = m.completeInput.Update(msg)
		if m.completeInput.Value() != before {
			m.refreshCompletions()
		}
		return m, cmd
	}
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusComplete {
		m.focus = focusSearch
		m.completeInput.Blur()
		return m.searchInput.Focus()
	}
	m.focus = focusComplete
	m.searchInput.Blur()
	return m.completeInput.Focus()
}

// refreshCompletions re-runs autocomplete for the current input. Empty input clears the list.
func (m *Model) refreshCompletions() {
	text := m.completeInput.Value()
	if text == "" {
		m.completions = nil
		return
	}
	completions, err := m.index.Autocomplete(text, m.limit)
	if err != nil {
		log.Errorf("Error in computing auto complete: %v", err)
		m.setStatus(fmt.Sprintf("autocomplete failed: %v", err), true)
		return
	}
	m.completions = completions
}

func (m *Model) runSearch() {
	word := strings.TrimSpace(m.searchInput.Value())
	if word == "" {
		m.matches = nil
		m.searched = false
		return
	}
	m.matches = m.index.SearchWord(word)
	m.searched = true
}

func (m *Model) exportTree() {
	written, err := export.WriteFile(m.exportPath, m.index.Dump())
	if err != nil {
		log.Errorf("Error in export tree: %v", err)
		m.setStatus(fmt.Sprintf("export failed: %v", err), true)
		return
	}
	m.setStatus("tree exported to "+written, false)
}

func (m *Model) setStatus(message string, isError bool) {
	m.status = message
	m.statusError = isError
}

// View renders the form
func (m *Model) View() string {
	var b strings.Builder
	lineWidth := max(m.width-8, 20)

	b.WriteString(titleStyle.Render("phraseserve"))
	b.WriteString("\n")

	b.WriteString(m.label("Autocomplete", focusComplete))
	b.WriteString("\n")
	b.WriteString(m.completeInput.View())
	b.WriteString("\n")
	b.WriteString(paneStyle.Render(renderLines(m.completions, lineWidth, "no suggestions")))
	b.WriteString("\n\n")

	b.WriteString(m.label("Search word", focusSearch))
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")
	empty := "press enter to search"
	if m.searched {
		empty = "no phrases contain that word"
	}
	b.WriteString(paneStyle.Render(renderLines(m.matches, lineWidth, empty)))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(formatStatus(m.status, m.statusError))
		b.WriteString("\n")
	}
	b.WriteString(dimmedStyle.Render("tab switch field • enter search • ctrl+e export tree • esc quit"))
	return b.String()
}

func (m *Model) label(text string, field focusField) string {
	if m.focus == field {
		return focusedLabel.Render(text)
	}
	return labelStyle.Render(text)
}

func renderLines(lines []string, width int, empty string) string {
	if len(lines) == 0 {
		return dimmedStyle.Render(empty)
	}
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = resultStyle.Render(utils.Truncate(line, width))
	}
	return strings.Join(rendered, "\n")
}
