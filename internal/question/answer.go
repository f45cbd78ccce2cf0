package question

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidNumber indicates that a value is not an integer.
var ErrInvalidNumber = errors.New("not a number")

// AnswerFormatError reports a comma-separated choice list with a non-numeric entry.
type AnswerFormatError struct {
	Input string
	Token string
}

// Error returns a readable message for the malformed list.
func (err *AnswerFormatError) Error() string {
	return fmt.Sprintf("choice list %q: %q is not a number", err.Input, err.Token)
}

// Unwrap allows errors.Is(err, ErrInvalidNumber).
func (err *AnswerFormatError) Unwrap() error {
	return ErrInvalidNumber
}

// ParseNumber parses an integer, ignoring surrounding whitespace.
func ParseNumber(value string) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return number, nil
}

// ParseChoiceList parses a comma-separated list of 1-based choice numbers.
// Values are returned as entered; range checks are left to the caller.
func ParseChoiceList(value string) ([]int, error) {
	tokens := strings.Split(value, ",")
	choices := make([]int, 0, len(tokens))
	for _, token := range tokens {
		number, err := ParseNumber(token)
		if err != nil {
			return nil, &AnswerFormatError{Input: value, Token: strings.TrimSpace(token)}
		}
		choices = append(choices, number)
	}
	return choices, nil
}

// CheckAnswer matches T against a true answer and F against a false one.
// Any other input never matches.
func (q TrueFalse) CheckAnswer(answer string) (bool, error) {
	switch strings.ToUpper(answer) {
	case "T":
		return q.CorrectAnswer, nil
	case "F":
		return !q.CorrectAnswer, nil
	default:
		return false, nil
	}
}

// CheckAnswer matches a 1-based choice number. Non-numeric input is a wrong answer.
func (q ChooseOne) CheckAnswer(answer string) (bool, error) {
	choice, err := ParseNumber(answer)
	if err != nil {
		return false, nil
	}
	return choice-1 == q.CorrectChoice, nil
}

// CheckAnswer accepts a comma-separated list of 1-based choice numbers.
// Every submitted choice must be correct; missing correct choices are not penalized.
func (q MultipleChoice) CheckAnswer(answer string) (bool, error) {
	selected, err := ParseChoiceList(answer)
	if err != nil {
		return false, err
	}
	for _, choice := range selected {
		if !slices.Contains(q.CorrectChoices, choice-1) {
			return false, nil
		}
	}
	return true, nil
}
