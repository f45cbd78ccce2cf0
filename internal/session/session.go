package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"exambank/internal/bank"
	"exambank/internal/verbose"
)

// Messages shown when numeric input is rejected.
const (
	msgInvalidNumber = "Invalid input. Please enter a number."
	msgInvalidMarks  = "Invalid input. Please enter a number for marks."
	msgInvalidLevel  = "Invalid input. Please select a valid level."
	msgInvalidChoice = "Invalid input. Please enter a valid choice number."
)

// Options configures a session.
type Options struct {
	// NoColor disables styling of menu headings, errors and results.
	NoColor bool
	// Logger receives diagnostic events; nil disables them.
	Logger *verbose.Logger
}

// Session runs the interactive menu against a bank it owns.
type Session struct {
	bank    *bank.Bank
	console *console
	log     *verbose.Logger
}

// New returns a session reading answers from in and writing prompts to out.
func New(b *bank.Bank, in io.Reader, out io.Writer, opts Options) *Session {
	if b == nil {
		b = bank.New()
	}
	return &Session{
		bank: b,
		console: &console{
			reader:  bufio.NewReader(in),
			out:     out,
			palette: verbose.PaletteFor(out, opts.NoColor),
		},
		log: opts.Logger,
	}
}

// Bank returns the bank owned by the session.
func (s *Session) Bank() *bank.Bank {
	return s.bank
}

// Run shows the main menu until the user exits or input ends.
func (s *Session) Run() error {
	for {
		s.console.styled(verbose.StyleHeading, "Main Menu:")
		s.console.println("1. Doctor Mode")
		s.console.println("2. Student Mode")
		s.console.println("3. Exit")

		choice, err := s.console.readLine()
		if err != nil {
			return endOfInput(err)
		}
		switch choice {
		case "1":
			err = s.DoctorMode()
		case "2":
			err = s.StudentMode()
		case "3":
			s.log.Infof("exit selected with %d questions in the bank", s.bank.Len())
			return nil
		default:
			continue
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput treats exhausted input as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("session: %w", err)
}

// finish reports an aborted flow and swallows the abort.
func (s *Session) finish(mode string, err error) error {
	var aborted *abortError
	if errors.As(err, &aborted) {
		s.console.styled(verbose.StyleError, aborted.message)
		s.log.Warnf("%s aborted: %s", mode, aborted.reason)
		return nil
	}
	return err
}
