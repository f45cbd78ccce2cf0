package banktable

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"exambank/internal/question"
)

func sampleQuestions() []question.Question {
	return []question.Question{
		question.TrueFalse{Info: question.Info{ID: "0123456789", Header: "Sky is blue", Marks: 1, Level: question.Easy}, CorrectAnswer: true},
		question.MultipleChoice{Info: question.Info{ID: "mc", Header: "Primes", Marks: 2, Level: question.Hard}, CorrectChoices: []int{0, 2}},
	}
}

// TestRows verifies each question becomes one row with a 1-based answer.
func TestRows(t *testing.T) {
	rows := Rows(sampleQuestions())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	first := rows[0]
	if first[0] != "01234567" || first[1] != "true_false" || first[2] != "Easy" || first[3] != "1" || first[5] != "T" {
		t.Fatalf("unexpected first row: %v", first)
	}
	if rows[1][5] != "1,3" {
		t.Fatalf("expected answer 1,3, got %q", rows[1][5])
	}
}

// TestShortIDKeepsRunesWhole verifies non-ASCII ids are cut on rune boundaries.
func TestShortIDKeepsRunesWhole(t *testing.T) {
	got := shortID("aÄÄÄÄÄÄÄÄÄ")
	if got != "aÄÄÄÄÄÄÄ" {
		t.Fatalf("unexpected short id %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("expected valid UTF-8, got %q", got)
	}
	if got := shortID("aÄÄÄ"); got != "aÄÄÄ" {
		t.Fatalf("expected short id unchanged, got %q", got)
	}
}

// TestPrintRendersTable verifies the plain rendering lists the bank.
func TestPrintRendersTable(t *testing.T) {
	var out bytes.Buffer
	Print(sampleQuestions(), &out, Options{Title: "Bank", NoColor: true})
	text := out.String()
	for _, want := range []string{"Bank", "Header", "Sky is blue", "Primes", "2 questions"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

// TestUpdateQuitKeys verifies q quits the program.
func TestUpdateQuitKeys(t *testing.T) {
	model := NewModel(sampleQuestions(), Options{NoColor: true})
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

// TestUpdateResizeWidensHeader verifies the header column grows with the window.
func TestUpdateResizeWidensHeader(t *testing.T) {
	model := NewModel(sampleQuestions(), Options{NoColor: true})
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 160, Height: 20})
	columns := updated.(Model).table.Columns()
	if columns[4].Width <= headerWidth {
		t.Fatalf("expected wider header column, got %d", columns[4].Width)
	}
}

// TestFooterSingular verifies the footer wording for one question.
func TestFooterSingular(t *testing.T) {
	if footer(1) != "1 question" {
		t.Fatalf("unexpected footer %q", footer(1))
	}
}
