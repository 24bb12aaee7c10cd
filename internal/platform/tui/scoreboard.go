package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/buzzy-bird/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the profile sidebar
	sidebarWidth       = 24  // Width of the profile sidebar
	maxRows            = 100 // Max rows to load
)

// BoardSource is what the scoreboard reads. *storage.Store implements it.
type BoardSource interface {
	Leaderboard(limit int) ([]storage.Player, error)
	TopScores(player string, limit int) ([]storage.Round, error)
}

// BoardView selects what the scoreboard lists.
type BoardView int

const (
	ViewPlayers BoardView = iota // players by high score
	ViewRounds                   // best single rounds
)

var boardViews = []struct {
	view  BoardView
	title string
}{
	{ViewPlayers, "Players"},
	{ViewRounds, "Best Rounds"},
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Reload, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "b", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	source      BoardSource
	viewCursor  int
	players     []storage.Player
	rounds      []storage.Round
	err         error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model. source may be nil when
// no database is available.
func NewScoreboardModel(source BoardSource, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source:      source,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// CurrentView returns the list currently shown.
func (m ScoreboardModel) CurrentView() BoardView {
	return boardViews[m.viewCursor].view
}

func (m *ScoreboardModel) columns() []table.Column {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	if boardViews[m.viewCursor].view == ViewRounds {
		cols := []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 14},
			{Title: "Score", Width: 7},
			{Title: "Speed", Width: 6},
			{Title: "Date", Width: 14},
		}
		if extra := tableWidth - 55; extra > 0 {
			cols[1].Width += min(extra, 10)
		}
		return cols
	}

	cols := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Best", Width: 6},
		{Title: "Points", Width: 8},
		{Title: "Rounds", Width: 7},
	}
	if extra := tableWidth - 49; extra > 0 {
		cols[1].Width += min(extra, 10)
	}
	return cols
}

// createTable creates a new table with columns for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// load reads the current view from the source.
func (m *ScoreboardModel) load() {
	m.players, m.rounds, m.err = nil, nil, nil
	if m.source != nil {
		switch boardViews[m.viewCursor].view {
		case ViewPlayers:
			m.players, m.err = m.source.Leaderboard(maxRows)
		case ViewRounds:
			m.rounds, m.err = m.source.TopScores("", maxRows)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rows.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	for i, p := range m.players {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			p.Name,
			fmt.Sprintf("%d", p.HighScore),
			fmt.Sprintf("%d", p.Points),
			fmt.Sprintf("%d", p.Rounds),
		})
	}
	for i, r := range m.rounds {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.2f", r.PipeSpeed),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchView moves the view cursor by delta and reloads.
func (m *ScoreboardModel) switchView(delta int) {
	n := len(boardViews)
	m.viewCursor = ((m.viewCursor+delta)%n + n) % n
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("BUZZY BIRD - %s", boardViews[m.viewCursor].title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableRendered))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the view selector.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(boardViews))
	for i, v := range boardViews {
		if i == m.viewCursor {
			tabs[i] = activeTabStyle.Render(v.title)
		} else {
			tabs[i] = tabStyle.Render(" " + v.title + " ")
		}
	}
	return centerText(strings.Join(tabs, " "), m.width)
}

// renderSidebar shows the profile of the highlighted player.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Profile\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	p, ok := m.highlighted()
	if !ok {
		sb.WriteString("no player selected")
		return sidebarStyle.Render(sb.String())
	}

	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sb.WriteString(name.Render(truncate(p.Name, sidebarWidth-4)))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Best    %d\n", p.HighScore)
	fmt.Fprintf(&sb, "Points  %d\n", p.Points)
	fmt.Fprintf(&sb, "Rounds  %d\n", p.Rounds)
	if p.Rounds > 0 {
		fmt.Fprintf(&sb, "Average %.1f\n", float64(p.Points)/float64(p.Rounds))
	}
	return sidebarStyle.Render(sb.String())
}

// highlighted returns the profile under the cursor, if the view lists players.
func (m ScoreboardModel) highlighted() (storage.Player, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.players) {
		return storage.Player{}, false
	}
	return m.players[i], true
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.source == nil:
		return emptyStyle.Render("Scores database unavailable.")
	case m.err != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.err.Error())
	case len(m.players) == 0 && len(m.rounds) == 0:
		return emptyStyle.Render("No rounds recorded yet.\nSing your way through some pipes!")
	}

	return m.table.View()
}

// IsQuitting returns true if user wants to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// RunScoreboard runs the leaderboard screen.
func RunScoreboard(source BoardSource, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
