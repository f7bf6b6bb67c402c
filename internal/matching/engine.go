package matching

import "errors"

// ErrNoCandidates is returned when a selection is attempted with an empty
// candidate list.
var ErrNoCandidates = errors.New("matching: no result candidates")

// Phase records how a result was selected.
type Phase string

const (
	PhaseExact    Phase = "exact"    // Every constraint of the result holds
	PhasePartial  Phase = "partial"  // Best partial match
	PhaseFallback Phase = "fallback" // Nothing matched; last candidate
)

// DisplayName returns a human-readable label for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseExact:
		return "Exact match"
	case PhasePartial:
		return "Closest match"
	case PhaseFallback:
		return "Default result"
	default:
		return string(p)
	}
}

// Outcome is the full result of one scoring run.
type Outcome struct {
	Result ResultLabel
	// Index is the position of Result in the candidate list.
	Index  int
	Phase  Phase
	Levels LevelMap
	// Satisfied is the number of Result's constraints met by Levels.
	Satisfied int
}

// Engine selects results using a fixed Config. The zero Engine is not
// usable; construct one with NewEngine or use the package-level functions.
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns an Engine using it.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

var defaultEngine = &Engine{cfg: DefaultConfig()}

// Default returns the engine backed by DefaultConfig.
func Default() *Engine {
	return defaultEngine
}

// Config returns the engine's thresholds.
func (e *Engine) Config() Config {
	return e.cfg
}

// ClassifyAll classifies every declared dimension. Dimensions missing from
// scores count as zero; dimensions missing from questionCounts use the
// configured default count.
func (e *Engine) ClassifyAll(scores ScoreMap, dimensions []string, questionCounts map[string]int) LevelMap {
	levels := make(LevelMap, len(dimensions))
	for _, dim := range dimensions {
		levels[dim] = e.cfg.Classify(scores[dim], e.cfg.MaxScore(questionCounts[dim]))
	}
	return levels
}

// Evaluate classifies scores and selects a result: the most specific exact
// match, else the best partial match, else the last candidate.
func (e *Engine) Evaluate(scores ScoreMap, dimensions []string, candidates []ResultLabel, questionCounts map[string]int) (Outcome, error) {
	if len(candidates) == 0 {
		return Outcome{}, ErrNoCandidates
	}

	levels := e.ClassifyAll(scores, dimensions, questionCounts)

	if i := matchExact(levels, candidates); i >= 0 {
		return Outcome{
			Result:    candidates[i],
			Index:     i,
			Phase:     PhaseExact,
			Levels:    levels,
			Satisfied: len(candidates[i].Condition),
		}, nil
	}

	if i, n := matchPartial(levels, candidates); i >= 0 {
		return Outcome{
			Result:    candidates[i],
			Index:     i,
			Phase:     PhasePartial,
			Levels:    levels,
			Satisfied: n,
		}, nil
	}

	last := len(candidates) - 1
	return Outcome{
		Result: candidates[last],
		Index:  last,
		Phase:  PhaseFallback,
		Levels: levels,
	}, nil
}

// SelectResult returns only the selected candidate of Evaluate.
func (e *Engine) SelectResult(scores ScoreMap, dimensions []string, candidates []ResultLabel, questionCounts map[string]int) (ResultLabel, error) {
	out, err := e.Evaluate(scores, dimensions, candidates, questionCounts)
	if err != nil {
		return ResultLabel{}, err
	}
	return out.Result, nil
}

// Evaluate runs Engine.Evaluate with the default thresholds.
func Evaluate(scores ScoreMap, dimensions []string, candidates []ResultLabel, questionCounts map[string]int) (Outcome, error) {
	return defaultEngine.Evaluate(scores, dimensions, candidates, questionCounts)
}

// SelectResult runs Engine.SelectResult with the default thresholds.
func SelectResult(scores ScoreMap, dimensions []string, candidates []ResultLabel, questionCounts map[string]int) (ResultLabel, error) {
	return defaultEngine.SelectResult(scores, dimensions, candidates, questionCounts)
}
