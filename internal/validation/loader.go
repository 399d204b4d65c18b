package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPatternFile classifies structural problems in a custom pattern file.
var ErrInvalidPatternFile = errors.New("invalid pattern file")

type patternFile struct {
	Patterns []patternSpec `yaml:"patterns"`
}

type patternSpec struct {
	Name        string   `yaml:"name"`
	Match       string   `yaml:"match"`
	Description string   `yaml:"description"`
	Severity    string   `yaml:"severity"`
	Suggestions []string `yaml:"suggestions"`
}

// LoadPatterns reads caller-supplied custom patterns from a YAML file.
// Unknown fields are rejected so typos surface instead of silently vanishing.
func LoadPatterns(path string) ([]ForbiddenPattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}
	return ParsePatterns(data)
}

// ParsePatterns decodes and compiles custom pattern definitions.
func ParsePatterns(data []byte) ([]ForbiddenPattern, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	var file patternFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatternFile, err)
	}

	seen := map[string]bool{}
	out := make([]ForbiddenPattern, 0, len(file.Patterns))
	for i, spec := range file.Patterns {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: pattern %d has no name", ErrInvalidPatternFile, i)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("%w: duplicate pattern name %q", ErrInvalidPatternFile, spec.Name)
		}
		seen[spec.Name] = true

		if spec.Match == "" {
			return nil, fmt.Errorf("%w: pattern %q has no match expression", ErrInvalidPatternFile, spec.Name)
		}
		matcher, err := regexp.Compile(spec.Match)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidPatternFile, spec.Name, err)
		}

		severity := Severity(spec.Severity)
		switch severity {
		case SeverityError, SeverityWarning:
		default:
			return nil, fmt.Errorf("%w: pattern %q has unknown severity %q", ErrInvalidPatternFile, spec.Name, spec.Severity)
		}

		out = append(out, ForbiddenPattern{
			Matcher:     matcher,
			Name:        spec.Name,
			Description: spec.Description,
			Suggestions: spec.Suggestions,
			Severity:    severity,
		})
	}
	return out, nil
}
