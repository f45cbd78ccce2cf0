package banktable

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"exambank/internal/question"
)

const (
	idWidth     = 8
	kindWidth   = 15
	levelWidth  = 6
	marksWidth  = 5
	answerWidth = 7
	headerMin   = 20
	headerWidth = 40
)

// defaultColumns returns the table columns for an unknown terminal width.
func defaultColumns() []table.Column {
	return columnsWithHeader(headerWidth)
}

// columnsForWidth widens the header column to fill the terminal.
func columnsForWidth(width int) []table.Column {
	fixed := idWidth + kindWidth + levelWidth + marksWidth + answerWidth + 12
	return columnsWithHeader(max(width-fixed, headerMin))
}

func columnsWithHeader(header int) []table.Column {
	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Type", Width: kindWidth},
		{Title: "Level", Width: levelWidth},
		{Title: "Marks", Width: marksWidth},
		{Title: "Header", Width: header},
		{Title: "Answer", Width: answerWidth},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// Rows converts questions into table rows.
func Rows(questions []question.Question) []table.Row {
	rows := make([]table.Row, 0, len(questions))
	for _, q := range questions {
		info := q.Details()
		rows = append(rows, table.Row{
			shortID(info.ID),
			string(q.Kind()),
			info.Level.String(),
			fmtInt(info.Marks),
			formatHeader(info.Header),
			question.Summary(q),
		})
	}
	return rows
}

// shortID trims an id to the column width without splitting runes.
func shortID(id string) string {
	runes := []rune(id)
	if len(runes) <= idWidth {
		return id
	}
	return string(runes[:idWidth])
}

// formatHeader collapses whitespace so each question fits on one row.
func formatHeader(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}
