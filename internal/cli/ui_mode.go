package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"exambank/internal/config"
)

// uiModeDecision captures whether to use the live UI.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode determines whether to run the interactive table.
func resolveUIMode(mode string, stdout io.Writer) (uiModeDecision, error) {
	if err := config.ValidateUIMode(mode); err != nil {
		return uiModeDecision{}, err
	}
	switch mode {
	case config.UIModeAuto:
		return uiModeDecision{useLive: isTerminal(stdout)}, nil
	case config.UIModeLive:
		if isTerminal(stdout) {
			return uiModeDecision{useLive: true}, nil
		}
		return uiModeDecision{
			useLive: false,
			warning: "Live UI requested but stdout is not a TTY; falling back to plain output.",
		}, nil
	default:
		return uiModeDecision{useLive: false}, nil
	}
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

// printWarning writes a non-fatal notice to stderr.
func printWarning(stderr io.Writer, warning string) {
	if warning != "" {
		fmt.Fprintln(stderr, warning)
	}
}
