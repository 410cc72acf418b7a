package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridbreak/internal/core"
	"github.com/vovakirdan/gridbreak/internal/levels"
)

// PlayMode represents the selected game mode.
type PlayMode int

const (
	PlayModeCampaign PlayMode = iota
	PlayModeEndless
)

// Selection holds the user's choice from the start menu.
type Selection struct {
	Mode    PlayMode
	LevelID string // Empty = start from the first level
}

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorYellow.Hex()))

// LevelMenuModel lets users choose a game mode and starting level.
type LevelMenuModel struct {
	levels        []levels.Level
	cursor        int
	inLevelSelect bool
	table         table.Model
	help          help.Model
	keys          MenuKeyMap
	width         int
	height        int
	selection     Selection
	choosing      bool
	quitting      bool
}

var modeOptions = []string{
	"Campaign",
	"Endless Mode",
	"Select Level...",
}

// NewLevelMenuModel creates a new start menu over the given levels.
func NewLevelMenuModel(lvls []levels.Level, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		levels:   lvls,
		help:     help.New(),
		keys:     DefaultMenuKeyMap(),
		width:    width,
		height:   height,
		choosing: true,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the level table: one row per level.
func (m *LevelMenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "ID", Width: 14},
		{Title: "Name", Width: 16},
		{Title: "Blocks", Width: 6},
		{Title: "Source", Width: 10},
	}

	rows := make([]table.Row, 0, len(m.levels))
	for i, lvl := range m.levels {
		source := "built-in"
		if lvl.FilePath != "" {
			source = "file"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			lvl.ID,
			lvl.Name,
			fmt.Sprintf("%d", lvl.BlockCount()),
			source,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, min(len(rows)+1, m.height-8))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, min(len(m.levels)+1, m.height-8)))
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(msg, action)
	}
	return m.handleModeSelectKey(action)
}

func (m LevelMenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(modeOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Campaign
			m.choosing = false
			m.selection = Selection{Mode: PlayModeCampaign}
			return m, tea.Quit
		case 1: // Endless
			m.choosing = false
			m.selection = Selection{Mode: PlayModeEndless}
			return m, tea.Quit
		case 2: // Select Level
			if len(m.levels) > 0 {
				m.inLevelSelect = true
			}
		}
	}

	return m, nil
}

func (m LevelMenuModel) handleLevelSelectKey(msg tea.KeyMsg, action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionSelect:
		idx := m.table.Cursor()
		if idx >= 0 && idx < len(m.levels) {
			m.choosing = false
			m.selection = Selection{
				Mode:    PlayModeCampaign,
				LevelID: m.levels[idx].ID,
			}
			return m, tea.Quit
		}
		return m, nil
	case MenuActionBack:
		m.inLevelSelect = false
		return m, nil
	}

	// Scrolling is handled by the table
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the mode/level selection.
func (m LevelMenuModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m LevelMenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("G R I D   B R E A K"), m.width, lipgloss.Width("G R I D   B R E A K")))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width, 0))
	b.WriteString("\n\n")

	for i, mode := range modeOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		if i == 0 {
			mode = fmt.Sprintf("%s (%d levels)", mode, len(m.levels))
		}
		b.WriteString(centerText(cursor+mode, m.width, 0))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width, 0))

	return b.String()
}

func (m LevelMenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width, lipgloss.Width("SELECT LEVEL")))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// centerText pads text to center it. visible is the printed width when the
// text carries escape codes; 0 means measure the text itself.
func centerText(text string, width, visible int) string {
	if visible == 0 {
		visible = lipgloss.Width(text)
	}
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelMenu runs the start menu and returns the selection, or nil when
// the user quits.
func RunLevelMenu(lvls []levels.Level, cfg core.RuntimeConfig) (*Selection, error) {
	model := NewLevelMenuModel(lvls, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}

	return m.Selected(), nil
}
