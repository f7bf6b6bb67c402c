package matching

import (
	"fmt"
	"strings"
)

// Level is the three-valued classification of a dimension score.
type Level int

const (
	LevelUnknown Level = iota // Zero value; never produced by classification
	LevelLow
	LevelMedium
	LevelHigh
)

// AllLevels returns the valid levels from lowest to highest.
func AllLevels() []Level {
	return []Level{LevelLow, LevelMedium, LevelHigh}
}

// String returns the canonical lowercase name used in quiz content.
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Valid reports whether l is one of low, medium or high.
func (l Level) Valid() bool {
	return l >= LevelLow && l <= LevelHigh
}

// ParseLevel parses "low", "medium" or "high".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return LevelLow, nil
	case "medium":
		return LevelMedium, nil
	case "high":
		return LevelHigh, nil
	default:
		return LevelUnknown, fmt.Errorf("invalid level %q (want low, medium or high)", s)
	}
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal level %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
