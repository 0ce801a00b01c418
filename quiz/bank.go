package quiz

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed questions.toml
var defaultBank []byte

// Sentinel errors for bank validation
var (
	ErrEmptyBank       = errors.New("question bank is empty")
	ErrBlankQuestion   = errors.New("question text is blank")
	ErrNoCorrectAnswer = errors.New("question has no correct answer")
	ErrMultipleCorrect = errors.New("question has more than one correct answer")
	ErrTooFewAnswers   = errors.New("question needs at least two answers")
	ErrTooManyAnswers  = errors.New("question has more answers than selection keys")
)

// MaxAnswers is the number of answer slots the input layer can select
const MaxAnswers = 4

// Answer is one choice of a question
type Answer struct {
	Text    string `toml:"text"`
	Correct bool   `toml:"correct"`
}

// Question is a prompt with ordered answers, exactly one of which is correct
type Question struct {
	Text    string   `toml:"text"`
	Answers []Answer `toml:"answer"`
}

type bankFile struct {
	Questions []Question `toml:"question"`
}

// LoadBank returns the embedded question bank
func LoadBank() ([]Question, error) {
	return ParseBank(defaultBank)
}

// LoadBankFile reads a bank from a TOML file on disk
func LoadBankFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBank(data)
}

// ParseBank decodes and validates a TOML question bank
func ParseBank(data []byte) ([]Question, error) {
	var f bankFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	if len(f.Questions) == 0 {
		return nil, ErrEmptyBank
	}
	for i := range f.Questions {
		if err := f.Questions[i].validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return f.Questions, nil
}

func (q Question) validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrBlankQuestion
	}
	if len(q.Answers) < 2 {
		return ErrTooFewAnswers
	}
	if len(q.Answers) > MaxAnswers {
		return ErrTooManyAnswers
	}

	correct := 0
	for _, a := range q.Answers {
		if a.Correct {
			correct++
		}
	}
	switch {
	case correct == 0:
		return ErrNoCorrectAnswer
	case correct > 1:
		return ErrMultipleCorrect
	}
	return nil
}

// CorrectIndex returns the index of the correct answer
func (q Question) CorrectIndex() int {
	for i, a := range q.Answers {
		if a.Correct {
			return i
		}
	}
	return -1
}

// clone copies the question so shuffling never touches the bank
func (q Question) clone() Question {
	q.Answers = append([]Answer(nil), q.Answers...)
	return q
}
