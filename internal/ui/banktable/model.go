package banktable

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"exambank/internal/question"
)

// Model renders a question bank as a scrollable table.
type Model struct {
	table   table.Model
	title   string
	noColor bool
}

// Options configures the bank table.
type Options struct {
	Title   string
	NoColor bool
	// Focused enables keyboard navigation of the rows.
	Focused bool
}

// NewModel constructs a table model for the given questions.
func NewModel(questions []question.Question, opts Options) Model {
	rows := Rows(questions)
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(rows),
		table.WithFocused(opts.Focused),
		table.WithHeight(len(rows)+3),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{table: t, title: opts.Title, noColor: opts.NoColor}
}

// Init has no start-up work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles quit keys, resizing and row navigation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-3, 2))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the title, table and footer.
func (m Model) View() string {
	parts := make([]string, 0, 3)
	if m.title != "" {
		parts = append(parts, stylize(m.title, m.noColor, lipgloss.Color("33")))
	}
	parts = append(parts, m.table.View())
	parts = append(parts, stylize(footer(len(m.table.Rows())), m.noColor, lipgloss.Color("242")))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func footer(count int) string {
	if count == 1 {
		return "1 question"
	}
	return fmtInt(count) + " questions"
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
