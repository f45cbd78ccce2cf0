package exam

import (
	"strconv"
	"testing"

	"exambank/internal/question"
)

func questions(n int) []question.Question {
	out := make([]question.Question, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, question.TrueFalse{Info: question.Info{ID: strconv.Itoa(i)}})
	}
	return out
}

// TestSelectPractical verifies practical exams take the first floor(n/2) questions.
func TestSelectPractical(t *testing.T) {
	cases := map[int]int{0: 0, 1: 0, 2: 1, 5: 2, 6: 3}
	for size, want := range cases {
		selected := Select(questions(size), Practical)
		if len(selected) != want {
			t.Fatalf("size %d: expected %d questions, got %d", size, want, len(selected))
		}
		for i, q := range selected {
			if q.Details().ID != strconv.Itoa(i) {
				t.Fatalf("size %d: expected question %d in order, got %s", size, i, q.Details().ID)
			}
		}
	}
}

// TestSelectFinal verifies final exams take every question.
func TestSelectFinal(t *testing.T) {
	if got := len(Select(questions(5), Final)); got != 5 {
		t.Fatalf("expected 5 questions, got %d", got)
	}
}

// TestParseType verifies only selector 1 picks a practical exam.
func TestParseType(t *testing.T) {
	if ParseType("1") != Practical {
		t.Fatalf("expected practical")
	}
	for _, value := range []string{"2", "", "x", " 1"} {
		if ParseType(value) != Final {
			t.Fatalf("expected final for %q", value)
		}
	}
}

// TestResultString verifies the tally format, including an empty exam.
func TestResultString(t *testing.T) {
	var result Result
	if result.String() != "0 / 0" {
		t.Fatalf("expected 0 / 0, got %q", result.String())
	}
	result.Record(true)
	result.Record(false)
	if result.String() != "1 / 2" {
		t.Fatalf("expected 1 / 2, got %q", result.String())
	}
}
