package session

import (
	"errors"
	"fmt"

	"exambank/internal/exam"
	"exambank/internal/question"
	"exambank/internal/verbose"
)

// StudentMode runs an exam over the questions at one level and prints the score.
func (s *Session) StudentMode() error {
	return s.finish("student mode", s.takeExam())
}

func (s *Session) takeExam() error {
	line, err := s.console.prompt("Choose exam type: 1. Practical 2. Final")
	if err != nil {
		return err
	}
	examType := exam.ParseType(line)
	line, err = s.console.prompt("Select level: 1. Easy 2. Medium 3. Hard")
	if err != nil {
		return err
	}
	level, err := question.ParseLevelSelector(line)
	if err != nil {
		return abort(msgInvalidLevel, fmt.Sprintf("level %q", line))
	}

	available := s.bank.FilterByLevel(level)
	chosen := exam.Select(available, examType)
	s.log.Infof("%s exam at %s: %d of %d questions selected", examType, level, len(chosen), len(available))

	var result exam.Result
	for _, q := range chosen {
		q.Display(s.console.out)
		answer, err := s.console.prompt("Your Answer:")
		if err != nil {
			return err
		}
		correct, err := q.CheckAnswer(answer)
		if err != nil {
			var formatErr *question.AnswerFormatError
			if errors.As(err, &formatErr) {
				return abort("Invalid answer: "+formatErr.Error(), fmt.Sprintf("question %s: %v", q.Details().ID, err))
			}
			return err
		}
		result.Record(correct)
	}

	s.console.styled(verbose.StyleSuccess, "Your Result: "+result.String())
	s.log.Resultf("%s exam at %s scored %s", examType, level, result)
	return nil
}
