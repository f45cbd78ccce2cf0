package question

import (
	"errors"
	"strconv"
	"strings"
)

// Level is the difficulty of a question.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

// Levels lists every level in selector order.
var Levels = []Level{Easy, Medium, Hard}

// ErrInvalidLevel indicates a level selector or name outside the known levels.
var ErrInvalidLevel = errors.New("invalid level")

// String returns the display name of the level.
func (level Level) String() string {
	switch level {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Level(" + strconv.Itoa(int(level)) + ")"
	}
}

// Valid reports whether the level is one of the known levels.
func (level Level) Valid() bool {
	return level >= Easy && level <= Hard
}

// ParseLevelSelector maps the menu selectors 1..3 to a level.
func ParseLevelSelector(value string) (Level, error) {
	selector, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || selector < 1 || selector > len(Levels) {
		return 0, ErrInvalidLevel
	}
	return Levels[selector-1], nil
}

// ParseLevelName maps easy, medium or hard (any case) to a level.
func ParseLevelName(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, ErrInvalidLevel
	}
}
