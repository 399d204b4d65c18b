package validation

import "regexp"

// Severity classifies how bad a matched pattern is for a candidate expression.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ForbiddenPattern is one entry of the linguistic rule table. Patterns are
// value records: matching is a uniform fold over the table, there is no
// per-pattern behaviour beyond the matcher itself.
type ForbiddenPattern struct {
	// Matcher must be anchored with word boundaries so that unrelated
	// expressions sharing tokens do not produce false positives.
	Matcher     *regexp.Regexp
	Name        string
	Description string
	Suggestions []string
	Severity    Severity
}

// builtinPatterns is the closed, hard-coded rule table of surface patterns
// that read like textbook English rather than conversation. Order matters:
// matched descriptions and suggestions are reported in table order.
var builtinPatterns = []ForbiddenPattern{
	{
		Matcher:     regexp.MustCompile(`(?i)\bi am (?:very |terribly |so )?sorry (?:for|to) (?:bother(?:ing)?|disturb(?:ing)?) you\b`),
		Name:        "overly-formal-apology",
		Description: "apology phrased like a textbook; native speakers shorten it",
		Suggestions: []string{"Sorry to bother you", "Sorry to interrupt"},
		Severity:    SeverityError,
	},
	{
		Matcher:     regexp.MustCompile(`(?i)\bhow do you do\b`),
		Name:        "how-do-you-do",
		Description: "greeting that is effectively extinct in everyday speech",
		Suggestions: []string{"How's it going?", "Nice to meet you"},
		Severity:    SeverityError,
	},
	{
		Matcher:     regexp.MustCompile(`(?i)\b(?:i am|i'm) fine,? thank you\b`),
		Name:        "fine-thank-you",
		Description: "classroom response no native speaker uses unprompted",
		Suggestions: []string{"I'm good", "Pretty good, thanks"},
		Severity:    SeverityError,
	},
	{
		Matcher:     regexp.MustCompile(`(?i)\bit is a (?:great |real )?pleasure to meet you\b`),
		Name:        "pleasure-to-meet",
		Description: "overly ceremonial first-meeting phrase",
		Suggestions: []string{"Great to meet you", "Nice meeting you"},
		Severity:    SeverityWarning,
	},
	{
		Matcher:     regexp.MustCompile(`(?i)\bmy name is\b`),
		Name:        "my-name-is",
		Description: "stiff self-introduction; conversation prefers the contraction",
		Suggestions: []string{"I'm <name>"},
		Severity:    SeverityWarning,
	},
	{
		Matcher:     regexp.MustCompile(`(?i)\bwould you be so kind as to\b`),
		Name:        "would-you-be-so-kind",
		Description: "request politeness level that reads as sarcasm today",
		Suggestions: []string{"Could you ...?", "Do you mind ...?"},
		Severity:    SeverityError,
	},
	{
		Matcher:     regexp.MustCompile(`(?i)\bplease teach me\b`),
		Name:        "please-teach-me",
		Description: "direct translation artifact; sounds demanding in English",
		Suggestions: []string{"Can you show me how?", "Could you walk me through it?"},
		Severity:    SeverityError,
	},
	{
		Matcher:     regexp.MustCompile(`(?i)\blook(?:ing)? forward to meet you\b`),
		Name:        "forward-to-meet",
		Description: "grammar slip: 'to' here takes the -ing form",
		Suggestions: []string{"Looking forward to meeting you"},
		Severity:    SeverityError,
	},
	{
		Matcher:     regexp.MustCompile(`(?i)\blet us\b`),
		Name:        "uncontracted-let-us",
		Description: "uncontracted 'let us' sounds stiff outside formal writing",
		Suggestions: []string{"Let's ..."},
		Severity:    SeverityWarning,
	},
	{
		Matcher:     regexp.MustCompile(`(?i)\bvery delicious\b`),
		Name:        "very-delicious",
		Description: "'delicious' resists 'very'; natives intensify differently",
		Suggestions: []string{"really good", "amazing"},
		Severity:    SeverityWarning,
	},
	{
		Matcher:     regexp.MustCompile(`(?i)\bdiscuss about\b`),
		Name:        "discuss-about",
		Description: "'discuss' already contains 'about'",
		Suggestions: []string{"discuss"},
		Severity:    SeverityError,
	},
}

// BuiltinPatterns returns a copy of the built-in rule table. Callers may
// append to the returned slice without affecting the built-in set.
func BuiltinPatterns() []ForbiddenPattern {
	out := make([]ForbiddenPattern, len(builtinPatterns))
	copy(out, builtinPatterns)
	return out
}
