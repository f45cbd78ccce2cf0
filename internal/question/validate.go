package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a bank file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("bank file validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Build validates a bank file and converts its records into questions.
func Build(file File) ([]Question, error) {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}
	if len(file.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	questions := make([]Question, 0, len(file.Questions))
	seenIDs := map[string]struct{}{}
	for i, record := range file.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		info := buildInfo(collector, prefix, i, record)
		if info.ID != "" {
			if _, exists := seenIDs[info.ID]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", info.ID))
			}
			seenIDs[info.ID] = struct{}{}
		}

		var built Question
		switch Kind(strings.TrimSpace(record.Type)) {
		case KindTrueFalse:
			built = buildTrueFalse(collector, prefix, info, record)
		case KindChooseOne:
			built = buildChooseOne(collector, prefix, info, record)
		case KindMultipleChoice:
			built = buildMultipleChoice(collector, prefix, info, record)
		case "":
			collector.add(prefix+".type", "is required")
		default:
			collector.add(prefix+".type", fmt.Sprintf("unknown type %q (expected true_false|choose_one|multiple_choice)", record.Type))
		}
		if built != nil {
			questions = append(questions, built)
		}
	}

	if err := collector.result(); err != nil {
		return nil, err
	}
	return questions, nil
}

func buildInfo(collector *issueCollector, prefix string, index int, record Record) Info {
	info := Info{
		ID:     strings.TrimSpace(record.ID),
		Header: strings.TrimSpace(record.Header),
		Marks:  record.Marks,
	}
	if info.Header == "" {
		collector.add(prefix+".header", "is required")
	}
	if info.ID == "" {
		info.ID = recordID(index, info.Header)
	}
	if info.Marks <= 0 {
		collector.add(prefix+".marks", "must be a positive integer")
	}
	level, err := ParseLevelName(record.Level)
	if err != nil {
		collector.add(prefix+".level", fmt.Sprintf("unknown level %q (expected easy|medium|hard)", record.Level))
	}
	info.Level = level
	return info
}

func buildTrueFalse(collector *issueCollector, prefix string, info Info, record Record) Question {
	if record.CorrectAnswer == nil {
		collector.add(prefix+".correct_answer", "is required")
		return nil
	}
	if len(record.Choices) > 0 {
		collector.add(prefix+".choices", "is not allowed for true_false")
	}
	return TrueFalse{Info: info, CorrectAnswer: *record.CorrectAnswer}
}

func buildChooseOne(collector *issueCollector, prefix string, info Info, record Record) Question {
	choices, ok := buildChoices(collector, prefix, record.Choices)
	if record.CorrectChoice < 1 || record.CorrectChoice > ChoiceCount {
		collector.add(prefix+".correct_choice", fmt.Sprintf("must be between 1 and %d", ChoiceCount))
		ok = false
	}
	if !ok {
		return nil
	}
	return ChooseOne{Info: info, Choices: choices, CorrectChoice: record.CorrectChoice - 1}
}

func buildMultipleChoice(collector *issueCollector, prefix string, info Info, record Record) Question {
	choices, ok := buildChoices(collector, prefix, record.Choices)
	if len(record.CorrectChoices) == 0 {
		collector.add(prefix+".correct_choices", "must include at least one entry")
		ok = false
	}
	correct := make([]int, 0, len(record.CorrectChoices))
	for j, choice := range record.CorrectChoices {
		if choice < 1 || choice > ChoiceCount {
			collector.add(fmt.Sprintf("%s.correct_choices[%d]", prefix, j), fmt.Sprintf("must be between 1 and %d", ChoiceCount))
			ok = false
			continue
		}
		correct = append(correct, choice-1)
	}
	if !ok {
		return nil
	}
	return MultipleChoice{Info: info, Choices: choices, CorrectChoices: correct}
}

func buildChoices(collector *issueCollector, prefix string, values []string) ([ChoiceCount]string, bool) {
	var choices [ChoiceCount]string
	if len(values) != ChoiceCount {
		collector.add(prefix+".choices", fmt.Sprintf("must include exactly %d entries, got %d", ChoiceCount, len(values)))
		return choices, false
	}
	ok := true
	for j, value := range values {
		choices[j] = strings.TrimSpace(value)
		if choices[j] == "" {
			collector.add(fmt.Sprintf("%s.choices[%d]", prefix, j), "is required")
			ok = false
		}
	}
	return choices, ok
}
