package validation

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_OverlyFormalApology(t *testing.T) {
	v := New()

	res := v.Validate("I am sorry for bothering you")

	require.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.MatchedPatterns, "overly-formal-apology")
	assert.Contains(t, res.Suggestions, "Sorry to bother you")
	assert.Less(t, res.ConfidenceScore, 1.0)
	// 1.0 - 0.30 (error) - 0.05 (uncontracted "I am", no negation)
	assert.InDelta(t, 0.65, res.ConfidenceScore, 1e-9)
	assert.NotEmpty(t, res.Reason)
}

func TestValidate_EmptyString(t *testing.T) {
	v := New()

	res := v.Validate("")

	assert.Equal(t, StatusPassed, res.Status)
	assert.Empty(t, res.MatchedPatterns)
	assert.Empty(t, res.Suggestions)
	assert.Empty(t, res.Reason)
	assert.Equal(t, 1.0, res.ConfidenceScore)
}

func TestValidate_CleanExpressionPasses(t *testing.T) {
	v := New()

	res := v.Validate("Sorry to bother you, got a sec?")

	assert.Equal(t, StatusPassed, res.Status)
	assert.Empty(t, res.MatchedPatterns)
	assert.Equal(t, 1.0, res.ConfidenceScore)
}

func TestValidate_ContractionNudgeClampsAtOne(t *testing.T) {
	v := New()

	res := v.Validate("I'm good, thanks for asking")

	assert.Equal(t, StatusPassed, res.Status)
	assert.Equal(t, 1.0, res.ConfidenceScore)
}

func TestValidate_MultipleMatchesAccumulate(t *testing.T) {
	v := New()

	res := v.Validate("How do you do? My name is Tom.")

	require.Equal(t, StatusFailed, res.Status)
	// Table order: the error pattern precedes the warning pattern.
	assert.Equal(t, []string{"how-do-you-do", "my-name-is"}, res.MatchedPatterns)
	// 1.0 - 0.30 (error) - 0.10 (warning)
	assert.InDelta(t, 0.60, res.ConfidenceScore, 1e-9)
}

func TestValidate_WarningOnly(t *testing.T) {
	v := New()

	res := v.Validate("This cake is very delicious")

	assert.Equal(t, StatusWarning, res.Status)
	assert.Equal(t, []string{"very-delicious"}, res.MatchedPatterns)
	assert.InDelta(t, 0.90, res.ConfidenceScore, 1e-9)
}

func TestValidate_ScoreClampsAtZero(t *testing.T) {
	v := New()

	res := v.Validate("How do you do? I am sorry for bothering you. Please teach me, would you be so kind as to discuss about it? Looking forward to meet you.")

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, 0.0, res.ConfidenceScore)
	assert.GreaterOrEqual(t, len(res.MatchedPatterns), 5)
}

func TestValidate_WordBoundaries(t *testing.T) {
	v := New()

	// "let usher" contains the letters of "let us" but no word boundary
	// after "us", so the pattern must not fire.
	res := v.Validate("They let ushers seat the guests")

	assert.NotContains(t, res.MatchedPatterns, "uncontracted-let-us")
}

func TestValidate_Deterministic(t *testing.T) {
	v := New()
	expr := "It is a pleasure to meet you, my name is Jane"

	first := v.Validate(expr)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, v.Validate(expr)); diff != "" {
			t.Fatalf("validation not deterministic (-first +repeat):\n%s", diff)
		}
	}
}

func TestValidate_CustomPatternComposition(t *testing.T) {
	custom := ForbiddenPattern{
		Matcher:     regexp.MustCompile(`(?i)\bkindly revert\b`),
		Name:        "kindly-revert",
		Description: "business-mail filler that confuses native listeners",
		Suggestions: []string{"please get back to me"},
		Severity:    SeverityError,
	}

	v := New(custom)
	res := v.Validate("Kindly revert at the earliest")
	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.MatchedPatterns, "kindly-revert")

	// The built-in table must not observe the composition.
	fresh := New()
	assert.Equal(t, len(builtinPatterns), fresh.PatternCount())
	assert.Equal(t, StatusPassed, fresh.Validate("Kindly revert at the earliest").Status)
}

func TestValidate_Register(t *testing.T) {
	v := New()
	before := v.PatternCount()

	v.Register(ForbiddenPattern{
		Matcher:     regexp.MustCompile(`(?i)\bso so\b`),
		Name:        "so-so",
		Description: "filler answer",
		Suggestions: []string{"it was okay"},
		Severity:    SeverityWarning,
	})

	assert.Equal(t, before+1, v.PatternCount())
	assert.Equal(t, StatusWarning, v.Validate("The movie was so so").Status)
}

func TestValidate_SuggestionsDeduplicated(t *testing.T) {
	// Two patterns sharing a suggestion must surface it once, first-seen order.
	a := ForbiddenPattern{
		Matcher:     regexp.MustCompile(`(?i)\balpha\b`),
		Name:        "alpha",
		Description: "alpha",
		Suggestions: []string{"shared", "only-a"},
		Severity:    SeverityWarning,
	}
	b := ForbiddenPattern{
		Matcher:     regexp.MustCompile(`(?i)\bbeta\b`),
		Name:        "beta",
		Description: "beta",
		Suggestions: []string{"shared", "only-b"},
		Severity:    SeverityWarning,
	}

	v := New(a, b)
	res := v.Validate("alpha beta")

	assert.Equal(t, []string{"shared", "only-a", "only-b"}, res.Suggestions)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello there", Normalize("  Hello THERE "))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, Normalize("I'M GOOD"), Normalize("i'm good"))
}
