// Package tui provides the interactive extension picker shown between a
// scan and the final report. It follows the Elm architecture via Bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/cerca-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cerca-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cerca-cli/internal/core/domain"
)

// Picker is a multi-select list over the extensions present in a report.
// Marked extensions are excluded from the report when the user confirms;
// cancelling keeps every match. The picker never mutates the report
// itself, it only collects the exclusion list.
type Picker struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	summary domain.ExtensionSummary

	cursor    int
	marked    map[string]bool
	confirmed bool

	width  int
	height int
	ready  bool
}

// Ensure Picker implements tea.Model.
var _ tea.Model = (*Picker)(nil)

// NewPicker creates a picker over the given extension summary.
func NewPicker(s *styles.Styles, summary domain.ExtensionSummary) *Picker {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Picker{
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		summary: summary,
		marked:  make(map[string]bool),
		width:   80,
		height:  24,
	}
}

// Init initialises the picker.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.ready = true
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}

		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.summary)-1 {
				p.cursor++
			}

		case key.Matches(msg, p.keys.Toggle):
			if len(p.summary) > 0 {
				ext := p.summary[p.cursor].Extension
				p.marked[ext] = !p.marked[ext]
			}

		case key.Matches(msg, p.keys.All):
			for _, stat := range p.summary {
				p.marked[stat.Extension] = true
			}

		case key.Matches(msg, p.keys.None):
			p.marked = make(map[string]bool)

		case key.Matches(msg, p.keys.Confirm):
			p.confirmed = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Cancel):
			p.confirmed = false
			return p, tea.Quit
		}
	}

	return p, nil
}

// View renders the picker.
func (p *Picker) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render("Filter results by extension"))
	b.WriteString("\n")
	b.WriteString(p.styles.Muted.Render("Marked extensions are removed from the report"))
	b.WriteString("\n\n")

	for i, stat := range p.summary {
		cursor := "  "
		if i == p.cursor {
			cursor = "> "
		}

		box := "[ ]"
		rowStyle := p.styles.Normal
		if p.marked[stat.Extension] {
			box = "[x]"
			rowStyle = p.styles.Excluded
		}

		label := stat.Extension
		if label == "" {
			label = "(no extension)"
		}
		counts := p.styles.Muted.Render(
			fmt.Sprintf("  %d files, %d occurrences", stat.Files, stat.Occurrences))

		line := cursor + box + " " + rowStyle.Render(label) + counts
		if i == p.cursor {
			line = cursor + box + " " + p.styles.Selected.Render(label) + counts
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.styles.Kept.Render(p.statusLine()))
	b.WriteString("\n")
	b.WriteString(p.styles.Help.Render(p.helpLine()))
	return p.styles.Border.Render(b.String())
}

// Excluded returns the confirmed exclusion list, nil when the user
// cancelled or marked nothing.
func (p *Picker) Excluded() []string {
	if !p.confirmed || len(p.marked) == 0 {
		return nil
	}

	// Report order keeps the exclusion list deterministic.
	excluded := make([]string, 0, len(p.marked))
	for _, stat := range p.summary {
		if p.marked[stat.Extension] {
			excluded = append(excluded, stat.Extension)
		}
	}
	return excluded
}

// Confirmed reports whether the user applied the picker rather than
// cancelling out of it.
func (p *Picker) Confirmed() bool {
	return p.confirmed
}

func (p *Picker) statusLine() string {
	kept := 0
	for _, stat := range p.summary {
		if !p.marked[stat.Extension] {
			kept++
		}
	}
	return fmt.Sprintf("Keeping %d of %d extensions", kept, len(p.summary))
}

func (p *Picker) helpLine() string {
	parts := make([]string, 0, 8)
	for _, binding := range p.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}

// Run shows the picker on the terminal and blocks until the user confirms
// or cancels. It returns the extensions to exclude; nil means keep all.
func Run(summary domain.ExtensionSummary) ([]string, error) {
	if len(summary) == 0 {
		return nil, nil
	}

	picker := NewPicker(nil, summary)
	model, err := tea.NewProgram(picker).Run()
	if err != nil {
		return nil, fmt.Errorf("extension picker: %w", err)
	}

	final, ok := model.(*Picker)
	if !ok {
		return nil, nil
	}
	return final.Excluded(), nil
}
