package matching

import "strings"

// ScoreMap maps a dimension key to its accumulated answer score.
type ScoreMap map[string]int

// LevelMap maps a dimension key to its classified level.
type LevelMap map[string]Level

// Constraint requires one dimension to sit at one level.
type Constraint struct {
	Dimension string
	Level     Level
}

// Condition is an ordered list of constraints. The empty condition is the
// catch-all and takes no part in exact or partial matching.
type Condition []Constraint

// Satisfied counts the constraints met by levels. A dimension absent from
// levels never satisfies a constraint.
func (c Condition) Satisfied(levels LevelMap) int {
	n := 0
	for _, con := range c {
		if con.satisfiedBy(levels) {
			n++
		}
	}
	return n
}

// Matches reports whether every constraint is met. The empty condition
// never matches.
func (c Condition) Matches(levels LevelMap) bool {
	if len(c) == 0 {
		return false
	}
	for _, con := range c {
		if !con.satisfiedBy(levels) {
			return false
		}
	}
	return true
}

// String renders the condition as "energy=high, social=high".
func (c Condition) String() string {
	if len(c) == 0 {
		return "(any)"
	}
	parts := make([]string, len(c))
	for i, con := range c {
		parts[i] = con.Dimension + "=" + con.Level.String()
	}
	return strings.Join(parts, ", ")
}

func (con Constraint) satisfiedBy(levels LevelMap) bool {
	got, ok := levels[con.Dimension]
	return ok && con.Level.Valid() && got == con.Level
}

// ResultLabel is a candidate outcome. Presentation data lives with the
// caller; candidates are identified by Name and list position.
type ResultLabel struct {
	Name      string
	Condition Condition
}
