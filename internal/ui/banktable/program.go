package banktable

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"exambank/internal/question"
)

// Show runs an interactive table until the user quits.
func Show(questions []question.Question, in io.Reader, out io.Writer, opts Options) error {
	opts.Focused = true
	program := tea.NewProgram(NewModel(questions, opts), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run bank table: %w", err)
	}
	return nil
}

// Print writes the table once, for output that is not a terminal.
func Print(questions []question.Question, out io.Writer, opts Options) {
	opts.Focused = false
	fmt.Fprintln(out, NewModel(questions, opts).View())
}
