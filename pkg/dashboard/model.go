// Package dashboard implements the full-screen TUI: a tabbed view over the
// field glossary, the entity diagram, the gated subscriber section and the
// risk methodology.
package dashboard

import (
	"github.com/ceapwatch/ceapwatch/internal/catalog"
	"github.com/ceapwatch/ceapwatch/internal/dataset"
	"github.com/ceapwatch/ceapwatch/internal/features"
	"github.com/ceapwatch/ceapwatch/internal/gate"
	"github.com/ceapwatch/ceapwatch/internal/output"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab identifies one dashboard tab.
type Tab int

const (
	TabGlossary Tab = iota
	TabDiagram
	TabSubscriber
	TabMethodology
)

const tabCount = 4

// Title returns the tab label.
func (t Tab) Title() string {
	switch t {
	case TabGlossary:
		return "Glossary"
	case TabDiagram:
		return "Diagram"
	case TabSubscriber:
		return "Subscriber"
	case TabMethodology:
		return "Methodology"
	default:
		return "?"
	}
}

// MinWidth is the minimum terminal width for proper display
const MinWidth = 60

// MinHeight is the minimum terminal height for proper display
const MinHeight = 14

// Model is the Bubble Tea model for the dashboard TUI.
type Model struct {
	// Window dimensions
	Width  int
	Height int

	ActiveTab Tab

	// Glossary state, owned exclusively by this instance. It starts empty,
	// changes only on key events and is discarded on quit, never persisted.
	Search    textinput.Model
	EntityIdx int // index into catalog.Entities()
	Cursor    int

	// Feature flags resolved once at startup; the gate mode derives from
	// them and does not change while the dashboard runs.
	Flags features.Flags
	Mode  gate.Mode

	ShowHelp bool
	Version  string

	// Rendered methodology markdown, cached per width.
	methodology      string
	methodologyErr   string
	methodologyWidth int
}

// NewModel creates a dashboard model for the resolved feature flags.
func NewModel(flags features.Flags, version string) Model {
	ti := textinput.New()
	ti.Placeholder = "search fields..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return Model{
		ActiveTab: TabGlossary,
		Search:    ti,
		Flags:     flags,
		Mode:      gate.ModeFor(flags),
		Version:   version,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m = m.refreshMethodology()
		return m, nil
	}

	return m, nil
}

// handleKey processes key input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the search input is focused it captures everything except the
	// few control keys below. Each keystroke produces a new derived view on
	// the next render; there is no async boundary.
	if m.Search.Focused() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "enter":
			m.Search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		m.Cursor = 0
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		return m.switchTab(Tab((int(m.ActiveTab) + 1) % tabCount)), nil

	case "shift+tab":
		return m.switchTab(Tab((int(m.ActiveTab) + tabCount - 1) % tabCount)), nil

	case "1":
		return m.switchTab(TabGlossary), nil

	case "2":
		return m.switchTab(TabDiagram), nil

	case "3":
		return m.switchTab(TabSubscriber), nil

	case "4":
		return m.switchTab(TabMethodology), nil

	case "/":
		if m.ActiveTab == TabGlossary {
			m.Search.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case "esc":
		if m.ActiveTab == TabGlossary && m.Search.Value() != "" {
			m.Search.SetValue("")
			m.Cursor = 0
		}
		return m, nil

	case "e", "ctrl+e":
		if m.ActiveTab == TabGlossary {
			m = m.cycleEntity()
		}
		return m, nil

	case "j", "down":
		if m.ActiveTab == TabGlossary {
			if rows := len(m.FilteredRows(0)); m.Cursor < rows-1 {
				m.Cursor++
			}
		}
		return m, nil

	case "k", "up":
		if m.ActiveTab == TabGlossary && m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case "?":
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}

// switchTab changes the active tab, pre-rendering the methodology page the
// first time it is needed at the current width.
func (m Model) switchTab(t Tab) Model {
	m.ActiveTab = t
	if t == TabMethodology {
		m = m.refreshMethodology()
	}
	return m
}

// cycleEntity advances the entity filter through the catalog's entity
// options, wrapping back to "all".
func (m Model) cycleEntity() Model {
	m.EntityIdx = (m.EntityIdx + 1) % len(catalog.Entities())
	m.Cursor = 0
	return m
}

// EntityFilter returns the active entity filter option.
func (m Model) EntityFilter() string {
	opts := catalog.Entities()
	if m.EntityIdx < 0 || m.EntityIdx >= len(opts) {
		return catalog.EntityAll
	}
	return opts[m.EntityIdx]
}

// FilteredRows derives the glossary rows for the current search state.
// The catalog is static and the filter pure, so recomputing per event is
// cheap and keeps no hidden state.
func (m Model) FilteredRows(maxRows int) []catalog.FieldDefinition {
	return catalog.Filter(catalog.All(), m.Search.Value(), m.EntityFilter(), maxRows)
}

// refreshMethodology re-renders the methodology markdown when the width
// changed since the cached render.
func (m Model) refreshMethodology() Model {
	width := m.Width - 4
	if width <= 0 {
		return m
	}
	if m.methodology != "" && m.methodologyWidth == width {
		return m
	}

	rendered, err := output.RenderMarkdownWithWidth(dataset.MethodologyMarkdown(), width)
	if err != nil {
		m.methodology = ""
		m.methodologyErr = err.Error()
	} else {
		m.methodology = rendered
		m.methodologyErr = ""
	}
	m.methodologyWidth = width
	return m
}
