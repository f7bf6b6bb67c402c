package quiz

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Parse validates raw YAML against the schema, decodes it and runs Check.
// Any problems are returned as a *ValidationError.
func Parse(data []byte) (*Quiz, error) {
	if problems := ValidateSchema(data); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	var q Quiz
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	if err := q.Check(); err != nil {
		return nil, err
	}
	return &q, nil
}

// Load reads and parses the quiz file at path.
func Load(path string) (*Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	q, err := Parse(data)
	if err != nil {
		if ve, ok := err.(*ValidationError); ok {
			ve.Source = path
			return nil, ve
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}

// LoadAll loads the files concurrently. Results keep the order of paths.
// The first failure cancels the remaining loads and is returned.
func LoadAll(ctx context.Context, paths []string) ([]*Quiz, error) {
	quizzes := make([]*Quiz, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			q, err := Load(p)
			if err != nil {
				return err
			}
			quizzes[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Report is the outcome of linting one quiz document.
type Report struct {
	Source   string
	Errors   []string
	Warnings []string
}

// OK reports whether the document has no errors.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// Lint collects every schema and structural problem plus warnings for one
// document without stopping at the first failing stage where possible.
func Lint(source string, data []byte) Report {
	r := Report{Source: source}
	r.Errors = ValidateSchema(data)

	var q Quiz
	if err := yaml.Unmarshal(data, &q); err != nil {
		if len(r.Errors) == 0 {
			r.Errors = append(r.Errors, fmt.Sprintf("decode quiz: %v", err))
		}
		return r
	}
	if err := q.Check(); err != nil {
		if ve, ok := err.(*ValidationError); ok {
			r.Errors = appendUnique(r.Errors, ve.Problems...)
		} else {
			r.Errors = append(r.Errors, err.Error())
		}
	}
	r.Warnings = q.Warnings()
	return r
}

// LintFiles lints each file concurrently. Unreadable files produce a report
// with a single error.
func LintFiles(ctx context.Context, paths []string) ([]Report, error) {
	reports := make([]Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(p)
			if err != nil {
				reports[i] = Report{Source: p, Errors: []string{fmt.Sprintf("read: %v", err)}}
				return nil
			}
			reports[i] = Lint(p, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func appendUnique(dst []string, items ...string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range items {
		if !seen[s] {
			dst = append(dst, s)
			seen[s] = true
		}
	}
	return dst
}
