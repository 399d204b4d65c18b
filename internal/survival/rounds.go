package survival

// Character identifies one of the two recurring quiz characters.
type Character string

const (
	CharacterTomi Character = "tomi"
	CharacterNabi Character = "nabi"
)

// defaultWinner breaks overall ties deterministically.
const defaultWinner = CharacterTomi

// WinnerDecision fixes one round's outcome before any script is written.
// Generated once per round, immutable thereafter.
type WinnerDecision struct {
	RoundID int       `json:"roundId"`
	Winner  Character `json:"winner"`
	Loser   Character `json:"loser"`
}

// RoundAssignment binds validated expressions to a decided round outcome.
type RoundAssignment struct {
	RoundID          int       `json:"roundId"`
	Winner           Character `json:"winner"`
	WinnerExpression string    `json:"winnerExpression"`
	Loser            Character `json:"loser"`
	LoserExpression  string    `json:"loserExpression"`
}

// DecideRounds pre-assigns a ~50/50 win/loss outcome per round, threading the
// generator state through and returning the final state so callers can keep
// drawing from the same sequence.
func DecideRounds(roundCount int, state uint64) ([]WinnerDecision, uint64) {
	decisions := make([]WinnerDecision, 0, roundCount)
	for round := 1; round <= roundCount; round++ {
		var tomiWins bool
		state, tomiWins = NextBool(state)
		d := WinnerDecision{RoundID: round, Winner: CharacterTomi, Loser: CharacterNabi}
		if !tomiWins {
			d.Winner, d.Loser = CharacterNabi, CharacterTomi
		}
		decisions = append(decisions, d)
	}
	return decisions, state
}

// AssignExpressions binds the validated native expression to the round's
// designated winner and the intentionally incorrect non-native expression to
// the loser. Pure relabeling; nothing here is randomized.
func AssignExpressions(decision WinnerDecision, native, nonNative string) RoundAssignment {
	return RoundAssignment{
		RoundID:          decision.RoundID,
		Winner:           decision.Winner,
		WinnerExpression: native,
		Loser:            decision.Loser,
		LoserExpression:  nonNative,
	}
}

// DetermineFinalWinner sums per-character wins across all rounds. Ties go to
// the fixed default character; resolution is never randomized.
func DetermineFinalWinner(decisions []WinnerDecision) Character {
	wins := map[Character]int{}
	for _, d := range decisions {
		wins[d.Winner]++
	}
	if wins[CharacterNabi] > wins[CharacterTomi] {
		return CharacterNabi
	}
	return defaultWinner
}
