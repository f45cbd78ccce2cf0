package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"exambank/internal/bank"
	"exambank/internal/question"
	"exambank/internal/session"
	"exambank/internal/verbose"
)

// sessionInput allows tests to override stdin for the interactive menu.
var sessionInput io.Reader = os.Stdin

// runStart builds the handler for the start command.
func runStart(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankPath := flags.String("bank", "", "Bank file to seed the menu with (YAML or JSON)")
		configPath := flags.String("config", "", "Path to config file (default: search for .exambank/config.yml)")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		verboseFlag := flags.Bool("verbose", false, "Log bank and exam events to stderr")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, warning, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		printWarning(stderr, warning)
		seedPath, err := configuredBankFile(*bankPath, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		colorOff := *noColor || cfg.UI.NoColor
		logger := verbose.New(stderr, *verboseFlag || cfg.Verbose, colorOff)

		b := bank.New()
		if seedPath != "" {
			questions, err := question.LoadFile(seedPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load bank file:\n%v\n", err)
				return ExitError
			}
			b = bank.New(questions...)
			logger.Infof("bank seeded with %d questions from %s", b.Len(), seedPath)
		}

		s := session.New(b, sessionInput, stdout, session.Options{NoColor: colorOff, Logger: logger})
		if err := s.Run(); err != nil {
			fmt.Fprintf(stderr, "Session failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
