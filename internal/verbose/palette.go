package verbose

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Style selects how a line is styled.
type Style int

const (
	StyleDefault Style = iota
	StyleDim
	StyleHeading
	StyleSuccess
	StyleWarning
	StyleError
)

// isTerminal reports whether a file descriptor is a TTY.
var isTerminal = term.IsTerminal

// Palette renders styled text for a single writer.
type Palette struct {
	enabled  bool
	renderer *lipgloss.Renderer
}

// PaletteFor selects a palette based on the writer and color settings.
func PaletteFor(w io.Writer, noColor bool) Palette {
	if noColor || !ShouldUseStyling(w) {
		return Palette{}
	}
	return Palette{enabled: true, renderer: lipgloss.NewRenderer(w)}
}

// Enabled reports whether the palette emits styling.
func (p Palette) Enabled() bool {
	return p.enabled
}

// ShouldUseStyling reports whether ANSI styling should be enabled for w.
func ShouldUseStyling(w io.Writer) bool {
	if w == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return isTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return isTerminal(int(fder.Fd()))
	}
	return false
}

// Apply styles text for the requested style.
func (p Palette) Apply(style Style, text string) string {
	if !p.enabled {
		return text
	}
	s := p.renderer.NewStyle()
	switch style {
	case StyleDim:
		s = s.Foreground(lipgloss.Color("242"))
	case StyleHeading:
		s = s.Bold(true).Foreground(lipgloss.Color("33"))
	case StyleSuccess:
		s = s.Bold(true).Foreground(lipgloss.Color("42"))
	case StyleWarning:
		s = s.Foreground(lipgloss.Color("214"))
	case StyleError:
		s = s.Bold(true).Foreground(lipgloss.Color("196"))
	default:
		return text
	}
	return s.Render(text)
}
