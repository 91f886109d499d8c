package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
)

// MenuKeyMap defines the key bindings for the difficulty menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type menuItem struct {
	preset config.DifficultyPreset
	label  string
	detail string
}

var menuItems = []menuItem{
	{config.DifficultyEasy, "Easy", "slower start"},
	{config.DifficultyNormal, "Normal", "the configured speed"},
	{config.DifficultyHard, "Hard", "faster start"},
}

// MenuModel lets the player pick a difficulty before each game.
type MenuModel struct {
	cursor    int
	keys      MenuKeyMap
	width     int
	height    int
	highScore int
	selected  *config.DifficultyPreset
	quitting  bool
}

// NewMenuModel creates a menu with the cursor on the given preset.
func NewMenuModel(width, height, highScore int, current config.DifficultyPreset) MenuModel {
	m := MenuModel{
		keys:      DefaultMenuKeyMap(),
		width:     width,
		height:    height,
		highScore: highScore,
	}
	for i, it := range menuItems {
		if it.preset == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = core.Clamp(m.cursor-1, 0, len(menuItems)-1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = core.Clamp(m.cursor+1, 0, len(menuItems)-1)
		case key.Matches(msg, m.keys.Select):
			preset := menuItems[m.cursor].preset
			m.selected = &preset
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T E R M T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, it := range menuItems {
		line := fmt.Sprintf("  %-7s %s", it.label, it.detail)
		if i == m.cursor {
			line = activeStyle.Render(fmt.Sprintf("> %-7s %s", it.label, it.detail))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Enter: Play  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset, or nil if the player quit.
func (m MenuModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// RunMenu shows the menu and returns the chosen preset, or nil on quit.
func RunMenu(width, height, highScore int, current config.DifficultyPreset) (*config.DifficultyPreset, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height, highScore, current),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
