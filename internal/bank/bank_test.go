package bank

import (
	"testing"

	"exambank/internal/question"
)

func tf(id string, level question.Level) question.Question {
	return question.TrueFalse{Info: question.Info{ID: id, Header: id, Marks: 1, Level: level}, CorrectAnswer: true}
}

// TestFilterByLevelPreservesOrder verifies filtering keeps relative insertion order.
func TestFilterByLevelPreservesOrder(t *testing.T) {
	b := New(tf("first", question.Easy), tf("hard", question.Hard), tf("second", question.Easy))

	easy := b.FilterByLevel(question.Easy)
	if len(easy) != 2 {
		t.Fatalf("expected 2 easy questions, got %d", len(easy))
	}
	if easy[0].Details().ID != "first" || easy[1].Details().ID != "second" {
		t.Fatalf("unexpected order: %s, %s", easy[0].Details().ID, easy[1].Details().ID)
	}
	if medium := b.FilterByLevel(question.Medium); len(medium) != 0 {
		t.Fatalf("expected no medium questions, got %d", len(medium))
	}
}

// TestAppendIgnoresNil verifies a nil question never reaches the bank.
func TestAppendIgnoresNil(t *testing.T) {
	b := New()
	b.Append(nil)
	b.Append(tf("one", question.Medium))
	if b.Len() != 1 {
		t.Fatalf("expected 1 question, got %d", b.Len())
	}
}

// TestAllReturnsCopy verifies callers cannot mutate the bank through All.
func TestAllReturnsCopy(t *testing.T) {
	b := New(tf("one", question.Easy))
	all := b.All()
	all[0] = tf("other", question.Hard)
	if b.All()[0].Details().ID != "one" {
		t.Fatalf("expected bank to be unchanged")
	}
}

// TestCountByLevel verifies per-level counts.
func TestCountByLevel(t *testing.T) {
	b := New(tf("a", question.Easy), tf("b", question.Hard), tf("c", question.Easy))
	counts := b.CountByLevel()
	if counts[question.Easy] != 2 || counts[question.Hard] != 1 || counts[question.Medium] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
