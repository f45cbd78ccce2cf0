package session

import (
	"fmt"
	"strings"

	"exambank/internal/question"
)

// DoctorMode asks for a number of questions and appends each one to the bank.
// Invalid numeric input stops the flow; questions already added stay in the bank.
func (s *Session) DoctorMode() error {
	return s.finish("doctor mode", s.author())
}

func (s *Session) author() error {
	line, err := s.console.prompt("Enter the number of questions to add:")
	if err != nil {
		return err
	}
	count, err := question.ParseNumber(line)
	if err != nil {
		return abort(msgInvalidNumber, fmt.Sprintf("question count %q", line))
	}
	for i := 0; i < count; i++ {
		q, err := s.authorQuestion()
		if err != nil {
			return err
		}
		if q == nil {
			s.log.Warnf("question %d of %d skipped: unknown type", i+1, count)
			continue
		}
		s.bank.Append(q)
		info := q.Details()
		s.log.Infof("added %s question %s (%s, %d marks)", q.Kind(), info.ID, info.Level, info.Marks)
	}
	return nil
}

// authorQuestion reads one question. It returns nil without error when the
// type selector is not one of the known kinds.
func (s *Session) authorQuestion() (question.Question, error) {
	kind, err := s.console.prompt("Select question type: 1. True/False 2. Choose One 3. Multiple Choice")
	if err != nil {
		return nil, err
	}
	header, err := s.console.prompt("Enter question header:")
	if err != nil {
		return nil, err
	}
	line, err := s.console.prompt("Enter marks:")
	if err != nil {
		return nil, err
	}
	marks, err := question.ParseNumber(line)
	if err != nil {
		return nil, abort(msgInvalidMarks, fmt.Sprintf("marks %q", line))
	}
	line, err = s.console.prompt("Select level: 1. Easy 2. Medium 3. Hard")
	if err != nil {
		return nil, err
	}
	level, err := question.ParseLevelSelector(line)
	if err != nil {
		return nil, abort(msgInvalidLevel, fmt.Sprintf("level %q", line))
	}

	info := question.Info{ID: question.NewID(), Header: header, Marks: marks, Level: level}
	switch kind {
	case "1":
		line, err := s.console.prompt("Enter correct answer (T/F):")
		if err != nil {
			return nil, err
		}
		return question.TrueFalse{Info: info, CorrectAnswer: strings.ToUpper(strings.TrimSpace(line)) == "T"}, nil
	case "2":
		choices, err := s.readChoices()
		if err != nil {
			return nil, err
		}
		line, err := s.console.prompt("Enter the correct choice number (1-4):")
		if err != nil {
			return nil, err
		}
		correct, err := question.ParseNumber(line)
		if err != nil || correct < 1 || correct > question.ChoiceCount {
			return nil, abort(msgInvalidChoice, fmt.Sprintf("correct choice %q", line))
		}
		return question.ChooseOne{Info: info, Choices: choices, CorrectChoice: correct - 1}, nil
	case "3":
		choices, err := s.readChoices()
		if err != nil {
			return nil, err
		}
		line, err := s.console.prompt("Enter correct choice numbers (comma separated, e.g. 1,2):")
		if err != nil {
			return nil, err
		}
		selected, err := question.ParseChoiceList(line)
		if err != nil {
			return nil, abort("Invalid input: "+err.Error(), err.Error())
		}
		correct := make([]int, 0, len(selected))
		for _, choice := range selected {
			correct = append(correct, choice-1)
		}
		return question.MultipleChoice{Info: info, Choices: choices, CorrectChoices: correct}, nil
	default:
		return nil, nil
	}
}

func (s *Session) readChoices() ([question.ChoiceCount]string, error) {
	var choices [question.ChoiceCount]string
	s.console.println(fmt.Sprintf("Enter %d choices:", question.ChoiceCount))
	for i := range choices {
		line, err := s.console.readLine()
		if err != nil {
			return choices, err
		}
		choices[i] = line
	}
	return choices, nil
}
