// Package tui is the interactive catalog browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcanaland/nrhelper/internal/card"
	"github.com/arcanaland/nrhelper/internal/controller"
)

// header and footer lines around the card list
const chromeLines = 6

// Model is the Bubble Tea model driving a controller
type Model struct {
	ctl    *controller.Controller
	search textinput.Model
	list   viewport.Model
	styles Styles
	total  int
	width  int
	height int
}

// New creates a browser over ctl. total is the size of the working dataset.
func New(ctl *controller.Controller, total int) Model {
	ti := textinput.New()
	ti.Placeholder = "Search cards..."
	ti.Prompt = "Search: "
	ti.CharLimit = 64

	m := Model{
		ctl:    ctl,
		search: ti,
		list:   viewport.New(80, 20),
		styles: DefaultStyles(),
		total:  total,
		width:  80,
		height: 20 + chromeLines,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.Width = msg.Width
		m.list.Height = max(msg.Height-chromeLines, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateControls(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.ctl.SetSearch(m.search.Value())
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateControls(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		cmd := m.search.Focus()
		return m, cmd
	case "a":
		m.ctl.CycleArchetype(1)
	case "A":
		m.ctl.CycleArchetype(-1)
	case "t":
		m.ctl.CycleCategory(1)
	case "T":
		m.ctl.CycleCategory(-1)
	case "s":
		m.ctl.ToggleDirection()
	case "x":
		m.ctl.ToggleStaples()
	case "c":
		m.search.SetValue("")
		m.ctl.SetArchetype("")
		m.ctl.SetCategory(card.CategoryAll)
		m.ctl.SetSearch("")
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

func (m *Model) refresh() {
	m.list.SetContent(m.renderList())
	m.list.GotoTop()
}

func (m Model) renderList() string {
	cards := m.ctl.View().Cards
	if len(cards) == 0 {
		return m.styles.Muted.Render("No cards match the current filters.")
	}

	var sb strings.Builder
	for _, rec := range cards {
		sb.WriteString(m.renderCard(rec))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderCard(rec card.Record) string {
	var parts []string
	if rec.Restricted() {
		parts = append(parts, m.styles.Banlist.Render(fmt.Sprintf(" %d ", *rec.Status)))
	} else {
		parts = append(parts, "   ")
	}

	switch rec.Rarity {
	case card.RarityRare:
		parts = append(parts, m.styles.Rare.Render("[R]"))
	default:
		parts = append(parts, m.styles.Common.Render("[N]"))
	}

	parts = append(parts, m.styles.Name.Render(rec.Name))

	detail := rec.Category().Label()
	if rec.Archetype != "" {
		detail = rec.Archetype + " · " + detail
	}
	parts = append(parts, m.styles.Muted.Render(detail))

	return strings.Join(parts, " ")
}

// View implements tea.Model.
func (m Model) View() string {
	in := m.ctl.Inputs()

	archetype := in.Archetype
	if archetype == "" {
		archetype = "All Archetypes"
	}
	staples := "Show Staples"
	if in.Staples {
		staples = "Show All Cards"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Yu-Gi-Oh! NR Helper"))
	sb.WriteString("\n")
	sb.WriteString(m.search.View())
	sb.WriteString("\n")
	sb.WriteString(m.field("Archetype", archetype) + "  " +
		m.field("Type", in.Category.Label()) + "  " +
		m.field("Sort", in.Direction.Label()) + "  " +
		m.field("Staples", staples))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d of %d cards", len(m.ctl.View().Cards), m.total)))
	sb.WriteString("\n")
	sb.WriteString(m.list.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("/ search · a/A archetype · t/T type · s sort · x staples · c clear · ↑/↓ scroll · q quit"))

	return sb.String()
}

func (m Model) field(label, value string) string {
	return m.styles.Label.Render(label+": ") + m.styles.Value.Render(value)
}
