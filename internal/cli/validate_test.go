package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	path := writeBank(t, t.TempDir(), sampleBank)
	var out, err bytes.Buffer
	code := Run([]string{"validate", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Bank OK (3 questions: 2 easy, 0 medium, 1 hard)") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandFailure verifies validate command error handling.
func TestValidateCommandFailure(t *testing.T) {
	path := writeBank(t, t.TempDir(), `version: 1
questions:
  - type: choose_one
    header: "Pick"
    marks: 1
    level: easy
    choices: ["a", "b"]
    correct_choice: 1
`)
	var out, err bytes.Buffer
	code := Run([]string{"validate", path}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "Validation failed") || !strings.Contains(err.String(), "questions[0].choices") {
		t.Fatalf("expected validation failure, got %q", err.String())
	}
}

// TestValidateRequiresFile verifies a missing argument is a usage error.
func TestValidateRequiresFile(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run([]string{"validate"}, &out, &err); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
