// Package validation decides which candidate expressions are acceptable to
// ship, using deterministic pattern matching over a fixed rule table.
package validation

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Status is the overall verdict for one validated expression.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusWarning Status = "warning"
	StatusFailed  Status = "failed"
)

// Result is produced fresh per Validate call and never mutated afterwards.
// Identical expression + identical pattern set always yields an identical Result.
type Result struct {
	Status          Status   `json:"status"`
	Expression      string   `json:"expression"`
	ConfidenceScore float64  `json:"confidenceScore"`
	MatchedPatterns []string `json:"matchedPatterns"`
	Suggestions     []string `json:"suggestions"`
	Reason          string   `json:"reason,omitempty"`
}

// Confidence scoring weights.
const (
	errorPenalty     = 0.30
	warningPenalty   = 0.10
	formalNudge      = 0.05
	contractionNudge = 0.05
)

var (
	formalMarkerRe = regexp.MustCompile(`(?i)\b(?:i am|you are|he is|she is|it is|we are|they are|that is)\b`)
	negationRe     = regexp.MustCompile(`(?i)\b(?:not|never|no)\b|n't\b`)
	contractionRe  = regexp.MustCompile(`(?i)\b(?:i'm|you're|he's|she's|it's|we're|they're|that's|don't|doesn't|didn't|can't|won't|isn't|aren't|wasn't|let's|i'll|you'll|i've|i'd|gonna|wanna)\b`)
)

var foldCaser = cases.Fold()

// Normalize lowers an expression to its comparison form: trimmed and
// case-folded. Used consistently by the validator, ledger and exclusion
// filter so the three agree on expression identity.
func Normalize(s string) string {
	return foldCaser.String(strings.TrimSpace(s))
}

// Validator evaluates expressions against the built-in rule table plus any
// caller-supplied custom patterns. Validate is pure and safe for concurrent
// use; Register must finish before Validate is called from multiple goroutines.
type Validator struct {
	patterns []ForbiddenPattern
}

// New builds a Validator over the built-in table composed with custom
// patterns. The built-in set itself is never mutated.
func New(custom ...ForbiddenPattern) *Validator {
	return &Validator{patterns: append(BuiltinPatterns(), custom...)}
}

// Register appends an additional pattern to this validator instance.
func (v *Validator) Register(p ForbiddenPattern) {
	v.patterns = append(v.patterns, p)
}

// PatternCount reports the size of the active pattern set.
func (v *Validator) PatternCount() int {
	return len(v.patterns)
}

// Validate tests expression against every active pattern. Matching is not
// short-circuited: multiple patterns may match the same expression and each
// contributes its severity and suggestions.
func (v *Validator) Validate(expression string) Result {
	var (
		matchedNames []string
		descriptions []string
		suggestions  []string
		seenName     = map[string]bool{}
		seenSugg     = map[string]bool{}
		errors       int
		warnings     int
	)

	for _, p := range v.patterns {
		if !p.Matcher.MatchString(expression) {
			continue
		}
		if seenName[p.Name] {
			continue
		}
		seenName[p.Name] = true
		matchedNames = append(matchedNames, p.Name)
		descriptions = append(descriptions, p.Description)
		switch p.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
		for _, s := range p.Suggestions {
			if !seenSugg[s] {
				seenSugg[s] = true
				suggestions = append(suggestions, s)
			}
		}
	}

	status := StatusPassed
	switch {
	case errors > 0:
		status = StatusFailed
	case warnings > 0:
		status = StatusWarning
	}

	score := 1.0
	score -= float64(errors) * errorPenalty
	score -= float64(warnings) * warningPenalty
	if formalMarkerRe.MatchString(expression) && !negationRe.MatchString(expression) {
		score -= formalNudge
	}
	if contractionRe.MatchString(expression) {
		score += contractionNudge
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return Result{
		Status:          status,
		Expression:      expression,
		ConfidenceScore: score,
		MatchedPatterns: matchedNames,
		Suggestions:     suggestions,
		Reason:          strings.Join(descriptions, "; "),
	}
}

// ValidateAll evaluates each expression independently, preserving input order.
func (v *Validator) ValidateAll(expressions []string) []Result {
	out := make([]Result, len(expressions))
	for i, e := range expressions {
		out[i] = v.Validate(e)
	}
	return out
}
