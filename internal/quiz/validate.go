package quiz

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dayoumin/mbti-sub003/internal/matching"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed quiz.schema.json
var quizSchemaJSON []byte

// printer formats schema validation error messages.
var printer = message.NewPrinter(language.English)

var quizSchema = mustCompileSchema(quizSchemaJSON, "quiz.schema.json")

func mustCompileSchema(raw []byte, name string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// ValidationError lists every problem found in a quiz document.
type ValidationError struct {
	Source   string
	Problems []string
}

func (e *ValidationError) Error() string {
	src := e.Source
	if src == "" {
		src = "quiz"
	}
	return fmt.Sprintf("%s validation failed:\n  %s", src, strings.Join(e.Problems, "\n  "))
}

// ValidateSchema checks raw YAML against the quiz JSON Schema and returns
// one message per violation.
func ValidateSchema(data []byte) []string {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}

	// Round-trip through JSON so numbers reach the validator as json.Number.
	raw, err := json.Marshal(doc)
	if err != nil {
		return []string{fmt.Sprintf("document is not JSON-compatible: %v", err)}
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return []string{fmt.Sprintf("document is not JSON-compatible: %v", err)}
	}

	err = quizSchema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(printer)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}

// Check performs the structural checks the schema cannot express: unique
// keys, references between questions, dimensions and results, option score
// ranges and scoring thresholds. It returns a *ValidationError or nil.
func (q *Quiz) Check() error {
	var errs []string

	cfg := q.Config()
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	dimSet := make(map[string]bool, len(q.Dimensions))
	for _, d := range q.Dimensions {
		if dimSet[d.Key] {
			errs = append(errs, fmt.Sprintf("duplicate dimension key: %q", d.Key))
		}
		dimSet[d.Key] = true
	}
	if len(q.Dimensions) == 0 {
		errs = append(errs, "at least one dimension is required")
	}

	idSet := make(map[string]bool, len(q.Questions))
	perDim := make(map[string]int, len(q.Dimensions))
	for _, qu := range q.Questions {
		if idSet[qu.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", qu.ID))
		}
		idSet[qu.ID] = true

		if !dimSet[qu.Dimension] {
			errs = append(errs, fmt.Sprintf("question %q references unknown dimension %q", qu.ID, qu.Dimension))
		}
		perDim[qu.Dimension]++

		if len(qu.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %q needs at least 2 options, got %d", qu.ID, len(qu.Options)))
		}
		for i, opt := range qu.Options {
			if opt.Score < 1 || opt.Score > cfg.MaxPerQuestion {
				errs = append(errs, fmt.Sprintf("question %q option %d: score must be in [1, %d], got %d",
					qu.ID, i, cfg.MaxPerQuestion, opt.Score))
			}
		}
	}

	for _, d := range q.Dimensions {
		if perDim[d.Key] == 0 {
			errs = append(errs, fmt.Sprintf("dimension %q has no questions", d.Key))
		}
	}

	errs = append(errs, matching.CandidateProblems(q.DimensionKeys(), q.Candidates())...)

	if len(errs) > 0 {
		return &ValidationError{Source: q.ID, Problems: errs}
	}
	return nil
}

// Warnings reports authoring smells that do not prevent scoring.
func (q *Quiz) Warnings() []string {
	var warns []string
	if n := len(q.Results); n > 0 && len(q.Results[n-1].Condition) > 0 {
		warns = append(warns, fmt.Sprintf("last result %q is the default but has a condition; it is still returned when nothing matches", q.Results[n-1].Name))
	}
	for i, r := range q.Results[:max(len(q.Results)-1, 0)] {
		if len(r.Condition) == 0 {
			warns = append(warns, fmt.Sprintf("result %q (#%d) has an empty condition and can only be selected as the last result", r.Name, i))
		}
	}
	return warns
}
