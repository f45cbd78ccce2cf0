package bank

import "exambank/internal/question"

// Bank is the ordered, append-only collection of authored questions.
type Bank struct {
	questions []question.Question
}

// New returns a bank seeded with the given questions in order.
func New(questions ...question.Question) *Bank {
	b := &Bank{}
	for _, q := range questions {
		b.Append(q)
	}
	return b
}

// Append adds a question to the end of the bank. Nil questions are ignored.
func (b *Bank) Append(q question.Question) {
	if q == nil {
		return
	}
	b.questions = append(b.questions, q)
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns the questions in insertion order.
func (b *Bank) All() []question.Question {
	out := make([]question.Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// FilterByLevel returns the questions at the given level in insertion order.
func (b *Bank) FilterByLevel(level question.Level) []question.Question {
	out := make([]question.Question, 0, len(b.questions))
	for _, q := range b.questions {
		if q.Details().Level == level {
			out = append(out, q)
		}
	}
	return out
}

// CountByLevel returns the number of questions per level.
func (b *Bank) CountByLevel() map[question.Level]int {
	counts := make(map[question.Level]int, len(question.Levels))
	for _, q := range b.questions {
		counts[q.Details().Level]++
	}
	return counts
}
