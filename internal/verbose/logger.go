package verbose

import (
	"fmt"
	"io"
)

const prefix = "[exambank]"

// Logger writes styled diagnostic lines. A nil Logger discards everything.
type Logger struct {
	w       io.Writer
	palette Palette
}

// New returns a logger writing to w, or nil when verbose output is disabled.
func New(w io.Writer, enabled, noColor bool) *Logger {
	if !enabled || w == nil {
		return nil
	}
	return &Logger{w: w, palette: PaletteFor(w, noColor)}
}

// Infof logs a plain event.
func (l *Logger) Infof(format string, args ...any) {
	l.write(StyleDefault, format, args...)
}

// Warnf logs a recoverable problem, such as an aborted flow.
func (l *Logger) Warnf(format string, args ...any) {
	l.write(StyleWarning, format, args...)
}

// Resultf logs a completed outcome.
func (l *Logger) Resultf(format string, args ...any) {
	l.write(StyleSuccess, format, args...)
}

func (l *Logger) write(style Style, format string, args ...any) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.w, "%s %s\n", l.palette.Apply(StyleDim, prefix), l.palette.Apply(style, fmt.Sprintf(format, args...)))
}
