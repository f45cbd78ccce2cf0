package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// TestListPlainOutput verifies a non-TTY list prints the table once.
func TestListPlainOutput(t *testing.T) {
	path := writeBank(t, t.TempDir(), sampleBank)
	var out, stderr bytes.Buffer
	code := Run([]string{"list", "--no-color", path}, &out, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	for _, want := range []string{"questions.yml", "Sky is blue", "Capital of France", "Primes", "3 questions"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

// TestListFiltersByLevel verifies --level keeps only matching questions.
func TestListFiltersByLevel(t *testing.T) {
	path := writeBank(t, t.TempDir(), sampleBank)
	var out, stderr bytes.Buffer
	code := Run([]string{"list", "--level", "hard", "--ui", "plain", path}, &out, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	if strings.Contains(out.String(), "Sky is blue") || !strings.Contains(out.String(), "Primes") {
		t.Fatalf("expected only hard questions, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "1 question") {
		t.Fatalf("expected single question footer, got:\n%s", out.String())
	}
}

// TestListLiveFallsBackWithoutTTY verifies the live UI warning on non-TTY stdout.
func TestListLiveFallsBackWithoutTTY(t *testing.T) {
	orig := isTerminal
	isTerminal = func(io.Writer) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	path := writeBank(t, t.TempDir(), sampleBank)
	var out, stderr bytes.Buffer
	code := Run([]string{"list", "--ui", "live", path}, &out, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "falling back to plain output") {
		t.Fatalf("expected fallback warning, got %q", stderr.String())
	}
}

// TestListInvalidLevel verifies an unknown level is a usage error.
func TestListInvalidLevel(t *testing.T) {
	path := writeBank(t, t.TempDir(), sampleBank)
	var out, stderr bytes.Buffer
	if code := Run([]string{"list", "--level", "extreme", path}, &out, &stderr); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

// TestListArgumentOverridesStaleConfig verifies an explicit file wins over a missing bank_file.
func TestListArgumentOverridesStaleConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "version: 1\nbank_file: gone.yml\n")
	path := writeBank(t, t.TempDir(), sampleBank)
	t.Chdir(dir)

	var out, stderr bytes.Buffer
	code := Run([]string{"list", "--ui", "plain", path}, &out, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	if !strings.Contains(out.String(), "3 questions") {
		t.Fatalf("expected full bank, got:\n%s", out.String())
	}
}
