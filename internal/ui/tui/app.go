// Package tui is an interactive browser over a finalized selection: a
// ranked list on the left, the rendered fortune entry for the highlighted
// candidate below it.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skeeto/showerthoughts/internal/domain"
	"github.com/skeeto/showerthoughts/internal/fortune"
)

type entryItem struct {
	rank int
	c    domain.Candidate
}

func (e entryItem) Title() string {
	return fmt.Sprintf("#%d %s", e.rank, e.c.Title)
}

func (e entryItem) Description() string {
	when := time.Unix(e.c.Timestamp, 0).UTC().Format("Jan 2006")
	return fmt.Sprintf("score %d by %s, %s", e.c.Score, e.c.Author, when)
}

func (e entryItem) FilterValue() string { return e.c.Title }

type model struct {
	theme Theme
	deps  Deps

	entries list.Model
}

func Run(deps Deps) error {
	if deps.Logger != nil {
		deps.Logger.Debug("tui.start", "entries", len(deps.Candidates))
	}
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := make([]list.Item, 0, len(deps.Candidates))
	for i, c := range deps.Candidates {
		items = append(items, entryItem{rank: i + 1, c: c})
	}

	theme := DefaultTheme()

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("showerthoughts · %d selected", len(items))
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:   theme,
		deps:    deps,
		entries: l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		// Leave room below the list for the preview card.
		m.entries.SetSize(w-4, h/2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.entries.FilterState() != list.Filtering {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.entries, cmd = m.entries.Update(msg)
	return m, cmd
}

func (m model) View() string {
	view := m.entries.View()

	if it, ok := m.entries.SelectedItem().(entryItem); ok {
		caption := m.theme.Subtitle.Render(fmt.Sprintf("entry %d of %d as it would print", it.rank, len(m.entries.Items())))
		block := fortune.Render(it.c, m.deps.Width)
		view += "\n" + caption + "\n" + m.theme.Card.Render(block)
	}

	view += "\n" + m.theme.Help.Render("↑/↓ move · / filter · q quit")
	return view
}
