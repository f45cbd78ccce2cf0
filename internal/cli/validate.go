package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"exambank/internal/bank"
	"exambank/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		if err := flags.Parse(args); err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "expected exactly one bank file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		questions, err := question.LoadFile(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		counts := bank.New(questions...).CountByLevel()
		parts := make([]string, 0, len(question.Levels))
		for _, level := range question.Levels {
			parts = append(parts, fmt.Sprintf("%d %s", counts[level], strings.ToLower(level.String())))
		}
		fmt.Fprintf(stdout, "Bank OK (%d questions: %s)\n", len(questions), strings.Join(parts, ", "))
		return ExitOK
	}
}
