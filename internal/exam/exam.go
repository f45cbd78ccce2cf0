package exam

import (
	"fmt"

	"exambank/internal/question"
)

// Type is the exam size policy.
type Type int

const (
	// Final takes every question at the selected level.
	Final Type = iota
	// Practical takes the first half of the questions at the selected level.
	Practical
)

// String returns the display name of the exam type.
func (t Type) String() string {
	if t == Practical {
		return "Practical"
	}
	return "Final"
}

// ParseType maps selector 1 to Practical. Every other value selects Final.
func ParseType(value string) Type {
	if value == "1" {
		return Practical
	}
	return Final
}

// Select picks the exam questions from a level-filtered list without reordering.
func Select(questions []question.Question, examType Type) []question.Question {
	if examType == Practical {
		return questions[:len(questions)/2]
	}
	return questions
}

// Result is the tally of an exam.
type Result struct {
	Correct int
	Total   int
}

// Record counts one answered question.
func (r *Result) Record(correct bool) {
	r.Total++
	if correct {
		r.Correct++
	}
}

// String formats the result as "correct / total".
func (r Result) String() string {
	return fmt.Sprintf("%d / %d", r.Correct, r.Total)
}
