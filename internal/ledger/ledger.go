// Package ledger keeps the persistent per-channel record of expressions used
// in past videos, and derives the exclusion set that gates new candidates.
package ledger

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/hyelim-oh/lingoreel/internal/ledger/store"
	"github.com/hyelim-oh/lingoreel/internal/log"
	"github.com/hyelim-oh/lingoreel/internal/metrics"
	"github.com/hyelim-oh/lingoreel/internal/validation"
)

// DefaultRecentWindow is the number of most recent videos consulted by
// recency checks when the caller has no channel-specific override.
const DefaultRecentWindow = 10

// Ledger owns one channel's expression history. It loads lazily on first
// access and persists the whole snapshot after every mutation. One logical
// writer per channel at a time; concurrent reads are safe once loaded.
type Ledger struct {
	channel string
	store   store.Store
	logger  zerolog.Logger
	now     func() time.Time

	loaded bool
	data   snapshot
}

// New binds a ledger to a channel identity on the given store.
func New(channel string, st store.Store) (*Ledger, error) {
	if err := store.ValidateChannel(channel); err != nil {
		return nil, err
	}
	return &Ledger{
		channel: channel,
		store:   st,
		logger:  log.WithComponent("ledger").With().Str(log.FieldChannelID, channel).Logger(),
		now:     time.Now,
	}, nil
}

// Channel returns the channel identity this ledger is bound to.
func (l *Ledger) Channel() string { return l.channel }

// ensureLoaded reads the snapshot on first access. Malformed or unreadable
// persisted data is treated as corruption and replaced with an empty ledger;
// loading never fails.
func (l *Ledger) ensureLoaded(ctx context.Context) {
	if l.loaded {
		return
	}
	l.loaded = true
	l.data = snapshot{}

	raw, err := l.store.Load(ctx, l.channel)
	metrics.RecordLedgerOp("load", err)
	if err != nil {
		l.logger.Warn().Err(err).Msg("ledger unreadable, starting empty")
		metrics.RecordCorruptLoad()
		return
	}
	if raw == nil {
		l.logger.Debug().Msg("no ledger snapshot yet, starting empty")
		return
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		l.logger.Warn().Err(err).Msg("ledger snapshot corrupt, starting empty")
		metrics.RecordCorruptLoad()
		return
	}
	l.data = snap
	metrics.SetLedgerSize(l.channel, len(snap.Expressions))
	l.logger.Debug().
		Int("expressions", len(snap.Expressions)).
		Int("blacklist", len(snap.Blacklist)).
		Msg("ledger loaded")
}

// persist writes the whole snapshot. Failures propagate to the caller of the
// mutating operation; in-memory state keeps the attempted mutation (no
// partial-commit guarantee is given to subsequent reads).
func (l *Ledger) persist(ctx context.Context) error {
	l.data.LastUpdated = l.now().UTC()
	raw, err := json.MarshalIndent(l.data, "", "  ")
	if err == nil {
		err = l.store.Save(ctx, l.channel, raw)
	}
	metrics.RecordLedgerOp("save", err)
	if err != nil {
		l.logger.Error().Err(err).Msg("ledger persist failed")
		return err
	}
	metrics.SetLedgerSize(l.channel, len(l.data.Expressions))
	return nil
}

// AddExpression appends one record stamped with the current calendar date.
func (l *Ledger) AddExpression(ctx context.Context, in Input, videoID string) error {
	return l.AddExpressions(ctx, []Input{in}, videoID)
}

// AddExpressions appends records for a produced video and persists once.
// All inputs are validated before any is applied.
func (l *Ledger) AddExpressions(ctx context.Context, inputs []Input, videoID string) error {
	for _, in := range inputs {
		if err := in.Validate(); err != nil {
			metrics.RecordLedgerOp("add", err)
			return err
		}
	}

	l.ensureLoaded(ctx)
	usedAt := l.now().Format(dateLayout)
	for _, in := range inputs {
		l.data.Expressions = append(l.data.Expressions, Record{
			Expression: in.Expression,
			Category:   in.Category,
			Difficulty: in.Difficulty,
			VideoID:    videoID,
			UsedAt:     usedAt,
		})
	}
	err := l.persist(ctx)
	metrics.RecordLedgerOp("add", err)
	if err == nil {
		l.logger.Info().
			Int("count", len(inputs)).
			Str(log.FieldVideoID, videoID).
			Msg("expressions recorded")
	}
	return err
}

// recentVideoIDs returns the videoCount most recently dated distinct video
// IDs. A video's recency is its latest recorded usage date, compared
// lexically. Ordering among videos sharing a date is date-granular only: the
// sort is stable on first appearance in the ledger, but callers must not rely
// on intra-date ordering.
func (l *Ledger) recentVideoIDs(videoCount int) map[string]bool {
	if videoCount <= 0 {
		return map[string]bool{}
	}

	type videoUse struct {
		id     string
		latest string
		order  int
	}
	byID := map[string]*videoUse{}
	var videos []*videoUse
	for i, rec := range l.data.Expressions {
		if v, ok := byID[rec.VideoID]; ok {
			if rec.UsedAt > v.latest {
				v.latest = rec.UsedAt
			}
			continue
		}
		v := &videoUse{id: rec.VideoID, latest: rec.UsedAt, order: i}
		byID[rec.VideoID] = v
		videos = append(videos, v)
	}

	sort.SliceStable(videos, func(i, j int) bool {
		if videos[i].latest != videos[j].latest {
			return videos[i].latest > videos[j].latest
		}
		return videos[i].order < videos[j].order
	})

	if videoCount > len(videos) {
		videoCount = len(videos)
	}
	selected := make(map[string]bool, videoCount)
	for _, v := range videos[:videoCount] {
		selected[v.id] = true
	}
	return selected
}

// RecentExpressions returns the unique expression texts used across the most
// recent videoCount distinct videos, in first-seen order. Empty for
// videoCount <= 0.
func (l *Ledger) RecentExpressions(ctx context.Context, videoCount int) []string {
	l.ensureLoaded(ctx)

	selected := l.recentVideoIDs(videoCount)
	if len(selected) == 0 {
		return nil
	}

	seen := map[string]bool{}
	var out []string
	for _, rec := range l.data.Expressions {
		if !selected[rec.VideoID] {
			continue
		}
		key := validation.Normalize(rec.Expression)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rec.Expression)
	}
	return out
}

// WasUsedRecently reports whether expression appears among the recent window,
// case-insensitively and ignoring surrounding whitespace. Pass
// DefaultRecentWindow when no channel-specific window applies.
func (l *Ledger) WasUsedRecently(ctx context.Context, expression string, videoCount int) bool {
	key := validation.Normalize(expression)
	for _, used := range l.RecentExpressions(ctx, videoCount) {
		if validation.Normalize(used) == key {
			return true
		}
	}
	return false
}

// IsBlacklisted reports blacklist membership, normalized for lookup.
func (l *Ledger) IsBlacklisted(ctx context.Context, expression string) bool {
	l.ensureLoaded(ctx)
	key := validation.Normalize(expression)
	for _, b := range l.data.Blacklist {
		if validation.Normalize(b) == key {
			return true
		}
	}
	return false
}

// AddToBlacklist stores expression with its original casing. Duplicate
// inserts are no-ops and do not touch storage.
func (l *Ledger) AddToBlacklist(ctx context.Context, expression string) error {
	if l.IsBlacklisted(ctx, expression) {
		return nil
	}
	l.data.Blacklist = append(l.data.Blacklist, expression)
	err := l.persist(ctx)
	metrics.RecordLedgerOp("blacklist_add", err)
	return err
}

// RemoveFromBlacklist removes expression from the blacklist set. Historical
// usage records are untouched. Removing an absent entry is a no-op.
func (l *Ledger) RemoveFromBlacklist(ctx context.Context, expression string) error {
	l.ensureLoaded(ctx)
	key := validation.Normalize(expression)
	kept := l.data.Blacklist[:0]
	removed := false
	for _, b := range l.data.Blacklist {
		if validation.Normalize(b) == key {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		return nil
	}
	l.data.Blacklist = kept
	err := l.persist(ctx)
	metrics.RecordLedgerOp("blacklist_remove", err)
	return err
}

// Blacklist returns the stored blacklist entries with original casing.
func (l *Ledger) Blacklist(ctx context.Context) []string {
	l.ensureLoaded(ctx)
	out := make([]string, len(l.data.Blacklist))
	copy(out, l.data.Blacklist)
	return out
}

// TotalCount is the number of usage records ever appended.
func (l *Ledger) TotalCount(ctx context.Context) int {
	l.ensureLoaded(ctx)
	return len(l.data.Expressions)
}

// UniqueCount is the number of distinct expressions, compared normalized.
func (l *Ledger) UniqueCount(ctx context.Context) int {
	l.ensureLoaded(ctx)
	seen := map[string]bool{}
	for _, rec := range l.data.Expressions {
		seen[validation.Normalize(rec.Expression)] = true
	}
	return len(seen)
}
