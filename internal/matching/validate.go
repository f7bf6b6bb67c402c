package matching

import (
	"fmt"
	"strings"
)

// ValidateCandidates checks candidates against the declared dimensions.
// It returns a combined error describing all problems found, or nil.
// Selection does not depend on it: malformed constraints simply never match.
func ValidateCandidates(dimensions []string, candidates []ResultLabel) error {
	if errs := CandidateProblems(dimensions, candidates); len(errs) > 0 {
		return fmt.Errorf("result validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// CandidateProblems returns one message per problem found by
// ValidateCandidates.
func CandidateProblems(dimensions []string, candidates []ResultLabel) []string {
	var errs []string

	if len(candidates) == 0 {
		errs = append(errs, "at least one result candidate is required")
	}

	dimSet := make(map[string]bool, len(dimensions))
	for _, d := range dimensions {
		dimSet[d] = true
	}

	names := make(map[string]bool, len(candidates))
	for i, c := range candidates {
		label := fmt.Sprintf("result %q", c.Name)
		if c.Name == "" {
			label = fmt.Sprintf("result #%d", i)
			errs = append(errs, fmt.Sprintf("%s has an empty name", label))
		} else if names[c.Name] {
			errs = append(errs, fmt.Sprintf("duplicate result name: %q", c.Name))
		}
		names[c.Name] = true

		seen := make(map[string]bool, len(c.Condition))
		for _, con := range c.Condition {
			if !dimSet[con.Dimension] {
				errs = append(errs, fmt.Sprintf("%s references unknown dimension %q", label, con.Dimension))
			}
			if !con.Level.Valid() {
				errs = append(errs, fmt.Sprintf("%s has invalid level for dimension %q", label, con.Dimension))
			}
			if seen[con.Dimension] {
				errs = append(errs, fmt.Sprintf("%s constrains dimension %q more than once", label, con.Dimension))
			}
			seen[con.Dimension] = true
		}
	}

	return errs
}
