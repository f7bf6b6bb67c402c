package quiz

import (
	"fmt"

	"github.com/dayoumin/mbti-sub003/internal/matching"
	"gopkg.in/yaml.v3"
)

// Quiz is one authored personality quiz.
type Quiz struct {
	ID          string      `yaml:"id"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Dimensions  []Dimension `yaml:"dimensions"`
	Questions   []Question  `yaml:"questions"`
	Results     []Result    `yaml:"results"`
	Scoring     *Scoring    `yaml:"scoring,omitempty"`
}

// Dimension is a scoring axis. Only Key matters for matching.
type Dimension struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Emoji       string `yaml:"emoji"`
	Description string `yaml:"description"`
}

// Question asks about exactly one dimension.
type Question struct {
	ID        string   `yaml:"id"`
	Dimension string   `yaml:"dimension"`
	Text      string   `yaml:"text"`
	Options   []Option `yaml:"options"`
}

// Option is one answer choice and the score it adds to its dimension.
type Option struct {
	Text  string `yaml:"text"`
	Score int    `yaml:"score"`
}

// Result is an authored outcome. The last result is the default.
type Result struct {
	Name        string    `yaml:"name"`
	Emoji       string    `yaml:"emoji"`
	Description string    `yaml:"description"`
	Traits      []string  `yaml:"traits"`
	Condition   Condition `yaml:"condition"`
}

// Scoring overrides the default thresholds for one quiz. Zero fields keep
// the default.
type Scoring struct {
	HighPercent          int `yaml:"high_percent"`
	LowPercent           int `yaml:"low_percent"`
	MaxPerQuestion       int `yaml:"max_per_question"`
	DefaultQuestionCount int `yaml:"default_question_count"`
}

// Condition is a result condition decoded in authored key order.
type Condition matching.Condition

// UnmarshalYAML decodes a mapping of dimension to level, keeping the order
// the keys appear in the document. Unrecognized levels decode as
// matching.LevelUnknown and are reported by Check.
func (c *Condition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*c = nil
			return nil
		}
	case yaml.MappingNode:
		out := make(Condition, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			level, _ := matching.ParseLevel(val.Value)
			out = append(out, matching.Constraint{Dimension: key.Value, Level: level})
		}
		*c = out
		return nil
	}
	return fmt.Errorf("line %d: condition must be a mapping of dimension to level", node.Line)
}

// MarshalYAML encodes the condition as an ordered mapping.
func (c Condition) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, con := range c {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: con.Dimension},
			&yaml.Node{Kind: yaml.ScalarNode, Value: con.Level.String()},
		)
	}
	return node, nil
}
