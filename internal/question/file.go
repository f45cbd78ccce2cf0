package question

import (
	"fmt"

	"github.com/google/uuid"
)

// File defines the bank file schema loaded from JSON or YAML.
type File struct {
	Version   int      `json:"version" yaml:"version"`
	Questions []Record `json:"questions" yaml:"questions"`
}

// Record is a single question as written in a bank file. Choice numbers are 1-based.
type Record struct {
	ID             string   `json:"id,omitempty" yaml:"id,omitempty"`
	Type           string   `json:"type" yaml:"type"`
	Header         string   `json:"header" yaml:"header"`
	Marks          int      `json:"marks" yaml:"marks"`
	Level          string   `json:"level" yaml:"level"`
	CorrectAnswer  *bool    `json:"correct_answer,omitempty" yaml:"correct_answer,omitempty"`
	Choices        []string `json:"choices,omitempty" yaml:"choices,omitempty"`
	CorrectChoice  int      `json:"correct_choice,omitempty" yaml:"correct_choice,omitempty"`
	CorrectChoices []int    `json:"correct_choices,omitempty" yaml:"correct_choices,omitempty"`
}

var bankNamespace = uuid.MustParse("9c5b94b1-35ad-49bb-b118-8e8fc24abf80")

// NewID returns a random question id.
func NewID() string {
	return uuid.NewString()
}

// recordID derives a stable id for a bank file record without one.
func recordID(index int, header string) string {
	return uuid.NewSHA1(bankNamespace, []byte(fmt.Sprintf("%d:%s", index, header))).String()
}
