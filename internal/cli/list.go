package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"exambank/internal/bank"
	"exambank/internal/question"
	"exambank/internal/ui/banktable"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		levelName := flags.String("level", "", "Only show questions at this level")
		uiMode := flags.String("ui", "", "Table mode: auto|live|plain (default from config, else auto)")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		configPath := flags.String("config", "", "Path to config file (default: search for .exambank/config.yml)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, warning, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		printWarning(stderr, warning)
		path, err := configuredBankFile(flags.Arg(0), cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		if strings.TrimSpace(path) == "" {
			fmt.Fprintln(stderr, "Missing bank file (no bank_file configured)")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		mode := strings.ToLower(strings.TrimSpace(*uiMode))
		if mode == "" {
			mode = cfg.UI.Mode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		printWarning(stderr, decision.warning)

		questions, err := question.LoadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load bank file:\n%v\n", err)
			return ExitError
		}
		b := bank.New(questions...)
		shown := b.All()
		title := filepath.Base(path)
		if strings.TrimSpace(*levelName) != "" {
			level, err := question.ParseLevelName(*levelName)
			if err != nil {
				fmt.Fprintf(stderr, "invalid arguments: unknown level %q (expected easy|medium|hard)\n", *levelName)
				return ExitUsage
			}
			shown = b.FilterByLevel(level)
			title += " (" + level.String() + ")"
		}

		opts := banktable.Options{Title: title, NoColor: *noColor || cfg.UI.NoColor}
		if decision.useLive {
			if err := banktable.Show(shown, sessionInput, stdout, opts); err != nil {
				fmt.Fprintf(stderr, "List failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		banktable.Print(shown, stdout, opts)
		return ExitOK
	}
}
