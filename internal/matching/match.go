package matching

// MatchExact returns the fully matching candidate with the largest
// condition. Among equally sized conditions the earliest candidate wins.
// Candidates with an empty condition are skipped.
func MatchExact(levels LevelMap, candidates []ResultLabel) (ResultLabel, bool) {
	i := matchExact(levels, candidates)
	if i < 0 {
		return ResultLabel{}, false
	}
	return candidates[i], true
}

// MatchPartial returns the candidate satisfying the most constraints,
// preferring the larger condition on a tie and then the earliest one.
// Candidates satisfying nothing are never chosen; if every candidate
// satisfies nothing the last candidate is returned. An empty list yields
// the zero ResultLabel.
func MatchPartial(levels LevelMap, candidates []ResultLabel) ResultLabel {
	if len(candidates) == 0 {
		return ResultLabel{}
	}
	i, _ := matchPartial(levels, candidates)
	if i < 0 {
		return candidates[len(candidates)-1]
	}
	return candidates[i]
}

func matchExact(levels LevelMap, candidates []ResultLabel) int {
	best := -1
	for i, c := range candidates {
		if !c.Condition.Matches(levels) {
			continue
		}
		// Strictly larger only: an equal-sized later match keeps the earlier one.
		if best < 0 || len(c.Condition) > len(candidates[best].Condition) {
			best = i
		}
	}
	return best
}

// matchPartial returns the index of the best partial candidate and its
// satisfied count, or -1 when no candidate satisfies any constraint.
func matchPartial(levels LevelMap, candidates []ResultLabel) (int, int) {
	best, bestCount := -1, 0
	for i, c := range candidates {
		if len(c.Condition) == 0 {
			continue
		}
		n := c.Condition.Satisfied(levels)
		if n == 0 {
			continue
		}
		switch {
		case best < 0, n > bestCount:
			best, bestCount = i, n
		case n == bestCount && len(c.Condition) > len(candidates[best].Condition):
			best = i
		}
	}
	return best, bestCount
}
