package question

import (
	"fmt"
	"io"
	"strings"
)

// ChoiceCount is the fixed number of choices on choice-based questions.
const ChoiceCount = 4

// Kind identifies a question variant.
type Kind string

const (
	KindTrueFalse      Kind = "true_false"
	KindChooseOne      Kind = "choose_one"
	KindMultipleChoice Kind = "multiple_choice"
)

// Info holds the attributes shared by every question kind.
type Info struct {
	ID     string
	Header string
	// Marks is carried for display and export only; scoring counts questions.
	Marks int
	Level Level
}

// Details returns the common attributes of a question.
func (info Info) Details() Info {
	return info
}

// Question is implemented by the three question kinds.
type Question interface {
	Details() Info
	Kind() Kind
	Display(w io.Writer)
	CheckAnswer(answer string) (bool, error)
}

// TrueFalse is answered with T or F.
type TrueFalse struct {
	Info
	CorrectAnswer bool
}

// ChooseOne has exactly one correct choice.
type ChooseOne struct {
	Info
	Choices [ChoiceCount]string
	// CorrectChoice is 0-based.
	CorrectChoice int
}

// MultipleChoice has a set of correct choices.
type MultipleChoice struct {
	Info
	Choices [ChoiceCount]string
	// CorrectChoices are 0-based.
	CorrectChoices []int
}

func (TrueFalse) Kind() Kind      { return KindTrueFalse }
func (ChooseOne) Kind() Kind      { return KindChooseOne }
func (MultipleChoice) Kind() Kind { return KindMultipleChoice }

// Display writes the header followed by the T/F hint.
func (q TrueFalse) Display(w io.Writer) {
	fmt.Fprintf(w, "%s (T/F)\n", q.Header)
}

// Display writes the header and the numbered choices.
func (q ChooseOne) Display(w io.Writer) {
	displayChoices(w, q.Header, q.Choices)
}

// Display writes the header and the numbered choices.
func (q MultipleChoice) Display(w io.Writer) {
	displayChoices(w, q.Header, q.Choices)
}

func displayChoices(w io.Writer, header string, choices [ChoiceCount]string) {
	fmt.Fprintln(w, header)
	for i, choice := range choices {
		fmt.Fprintf(w, "%d. %s\n", i+1, choice)
	}
}

// Summary returns a single-line description of the correct answer in 1-based form.
func Summary(q Question) string {
	switch typed := q.(type) {
	case TrueFalse:
		if typed.CorrectAnswer {
			return "T"
		}
		return "F"
	case ChooseOne:
		return fmt.Sprintf("%d", typed.CorrectChoice+1)
	case MultipleChoice:
		parts := make([]string, 0, len(typed.CorrectChoices))
		for _, choice := range typed.CorrectChoices {
			parts = append(parts, fmt.Sprintf("%d", choice+1))
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}
