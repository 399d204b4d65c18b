package ledger

import (
	"context"

	"github.com/hyelim-oh/lingoreel/internal/metrics"
	"github.com/hyelim-oh/lingoreel/internal/validation"
)

// ExclusionReason explains why a candidate expression was excluded.
type ExclusionReason string

const (
	ReasonBlacklisted  ExclusionReason = "blacklisted"
	ReasonRecentlyUsed ExclusionReason = "recently_used"
)

// ExclusionCheck is the per-candidate verdict of CheckExclusion.
type ExclusionCheck struct {
	Expression string
	Excluded   bool
	Reason     ExclusionReason
}

// ExcludedExpressions returns the normalized union of the recent-usage set
// and the blacklist for one channel ledger.
func ExcludedExpressions(ctx context.Context, l *Ledger, recentVideoCount int) map[string]bool {
	excluded := map[string]bool{}
	for _, e := range l.RecentExpressions(ctx, recentVideoCount) {
		excluded[validation.Normalize(e)] = true
	}
	for _, b := range l.Blacklist(ctx) {
		excluded[validation.Normalize(b)] = true
	}
	return excluded
}

// FilterExcluded removes candidates whose normalized form is excluded,
// preserving input order.
func FilterExcluded(ctx context.Context, l *Ledger, candidates []string, recentVideoCount int) []string {
	excluded := ExcludedExpressions(ctx, l, recentVideoCount)
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if excluded[validation.Normalize(c)] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CheckExclusion reports, per candidate, whether and why it is excluded.
// The blacklist takes priority over recency when both apply.
func CheckExclusion(ctx context.Context, l *Ledger, candidates []string, recentVideoCount int) []ExclusionCheck {
	recent := map[string]bool{}
	for _, e := range l.RecentExpressions(ctx, recentVideoCount) {
		recent[validation.Normalize(e)] = true
	}

	out := make([]ExclusionCheck, len(candidates))
	for i, c := range candidates {
		check := ExclusionCheck{Expression: c}
		switch {
		case l.IsBlacklisted(ctx, c):
			check.Excluded = true
			check.Reason = ReasonBlacklisted
		case recent[validation.Normalize(c)]:
			check.Excluded = true
			check.Reason = ReasonRecentlyUsed
		}
		if check.Excluded {
			metrics.RecordExclusion(string(check.Reason))
		}
		out[i] = check
	}
	return out
}
