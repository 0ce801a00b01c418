package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadBankEmbedded(t *testing.T) {
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("Embedded bank failed to load: %v", err)
	}
	if len(bank) != 34 {
		t.Errorf("Expected 34 questions, got %d", len(bank))
	}
	for i, q := range bank {
		if q.CorrectIndex() < 0 {
			t.Errorf("Question %d has no correct answer", i+1)
		}
		if len(q.Answers) != 4 {
			t.Errorf("Question %d has %d answers, want 4", i+1, len(q.Answers))
		}
	}
	if !strings.Contains(bank[0].Text, "Declaration of Independence") {
		t.Errorf("Unexpected first question %q", bank[0].Text)
	}
}

func TestParseBankValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"Empty file", ``, ErrEmptyBank},
		{"Blank question", `
[[question]]
text = "  "
[[question.answer]]
text = "a"
correct = true
[[question.answer]]
text = "b"
`, ErrBlankQuestion},
		{"No correct answer", `
[[question]]
text = "q"
[[question.answer]]
text = "a"
[[question.answer]]
text = "b"
`, ErrNoCorrectAnswer},
		{"Two correct answers", `
[[question]]
text = "q"
[[question.answer]]
text = "a"
correct = true
[[question.answer]]
text = "b"
correct = true
`, ErrMultipleCorrect},
		{"Single answer", `
[[question]]
text = "q"
[[question.answer]]
text = "a"
correct = true
`, ErrTooFewAnswers},
		{"Too many answers", `
[[question]]
text = "q"
[[question.answer]]
text = "a"
correct = true
[[question.answer]]
text = "b"
[[question.answer]]
text = "c"
[[question.answer]]
text = "d"
[[question.answer]]
text = "e"
`, ErrTooManyAnswers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseBankRejectsUnknownFields(t *testing.T) {
	data := `
[[question]]
text = "q"
hint = "not a field"
[[question.answer]]
text = "a"
correct = true
[[question.answer]]
text = "b"
`
	if _, err := ParseBank([]byte(data)); err == nil {
		t.Fatal("Expected error for unknown field")
	}
}

func TestParseBankErrorNamesQuestion(t *testing.T) {
	data := `
[[question]]
text = "ok"
[[question.answer]]
text = "a"
correct = true
[[question.answer]]
text = "b"

[[question]]
text = "broken"
[[question.answer]]
text = "a"
[[question.answer]]
text = "b"
`
	_, err := ParseBank([]byte(data))
	if err == nil || !strings.Contains(err.Error(), "question 2") {
		t.Errorf("Expected error naming question 2, got %v", err)
	}
}

func TestLoadBankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.toml")
	data := `
[[question]]
text = "Capital?"
[[question.answer]]
text = "Washington D.C."
correct = true
[[question.answer]]
text = "Chicago"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write bank: %v", err)
	}

	bank, err := LoadBankFile(path)
	if err != nil {
		t.Fatalf("LoadBankFile failed: %v", err)
	}
	if len(bank) != 1 || bank[0].CorrectIndex() != 0 {
		t.Errorf("Unexpected bank %+v", bank)
	}

	if _, err := LoadBankFile(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
