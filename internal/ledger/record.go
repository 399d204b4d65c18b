package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category classifies an expression by conversational situation.
type Category string

const (
	CategoryGreeting  Category = "greeting"
	CategoryApology   Category = "apology"
	CategoryRequest   Category = "request"
	CategorySmallTalk Category = "smalltalk"
	CategoryBusiness  Category = "business"
	CategoryDaily     Category = "daily"
)

// Difficulty grades an expression for the target audience.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ErrInvalidRecord classifies structural validation failures of an input
// record. Such inputs are rejected synchronously and never partially applied.
var ErrInvalidRecord = errors.New("invalid expression record")

// Input is what the pipeline supplies when committing an expression to a
// produced video.
type Input struct {
	Expression string     `json:"expression"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// Validate checks the structural requirements of an input record.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Expression) == "" {
		return fmt.Errorf("%w: missing expression text", ErrInvalidRecord)
	}
	switch in.Category {
	case CategoryGreeting, CategoryApology, CategoryRequest, CategorySmallTalk, CategoryBusiness, CategoryDaily:
	default:
		return fmt.Errorf("%w: unrecognized category %q", ErrInvalidRecord, in.Category)
	}
	switch in.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return fmt.Errorf("%w: unrecognized difficulty %q", ErrInvalidRecord, in.Difficulty)
	}
	return nil
}

// dateLayout is the calendar-date stamp of a usage record. ISO layout keeps
// lexical comparison equal to chronological comparison.
const dateLayout = "2006-01-02"

// Record is an append-only usage entry: once written it is never modified,
// only superseded by future appends.
type Record struct {
	Expression string     `json:"expression"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	VideoID    string     `json:"videoId"`
	UsedAt     string     `json:"usedAt"` // calendar date, YYYY-MM-DD
}

// snapshot is the persisted shape of one channel's ledger.
type snapshot struct {
	Expressions []Record  `json:"expressions"`
	Blacklist   []string  `json:"blacklist"`
	LastUpdated time.Time `json:"lastUpdated"`
}
