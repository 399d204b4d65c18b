// Package pipeline wires the content-validation and retention-timing
// components into the single entry point the surrounding production
// orchestration calls per generated video.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hyelim-oh/lingoreel/internal/config"
	"github.com/hyelim-oh/lingoreel/internal/ledger"
	"github.com/hyelim-oh/lingoreel/internal/ledger/store"
	"github.com/hyelim-oh/lingoreel/internal/log"
	"github.com/hyelim-oh/lingoreel/internal/metrics"
	"github.com/hyelim-oh/lingoreel/internal/survival"
	"github.com/hyelim-oh/lingoreel/internal/timing"
	"github.com/hyelim-oh/lingoreel/internal/validation"
)

// ErrNoAcceptedExpressions is returned when every candidate was excluded or
// failed validation. The orchestration layer reacts by requesting fresh
// candidates; this core never retries on its own.
var ErrNoAcceptedExpressions = errors.New("no candidate expressions accepted")

// CandidatePair is one proposed round: the natural expression and its
// intentionally incorrect counterpart.
type CandidatePair struct {
	Native     string            `json:"native"`
	NonNative  string            `json:"nonNative"`
	Category   ledger.Category   `json:"category"`
	Difficulty ledger.Difficulty `json:"difficulty"`
}

// Request describes one generation run.
type Request struct {
	// VideoID identifies the produced video; generated when empty.
	VideoID string
	// Candidates are script-proposed expression pairs, in proposal order.
	Candidates []CandidatePair
	// Seed fixes the round-outcome sequence; nil draws one from the OS.
	Seed *uint64
}

// RejectedCandidate explains why a pair did not make the cut.
type RejectedCandidate struct {
	Pair   CandidatePair
	Stage  string // "exclusion" or "validation"
	Reason string
}

// AcceptedCandidate carries a surviving pair with its validation verdict.
type AcceptedCandidate struct {
	Pair       CandidatePair
	Validation validation.Result
}

// Result is the full temporal and content plan for one video.
type Result struct {
	VideoID     string
	Seed        uint64
	Accepted    []AcceptedCandidate
	Rejected    []RejectedCandidate
	Rounds      []survival.RoundAssignment
	FinalWinner survival.Character
	Timing      timing.VideoTiming
	Chapters    []timing.Chapter
	ChapterText string
}

// Engine binds a validator, a channel ledger and a pacing profile.
type Engine struct {
	cfg       config.Engine
	validator *validation.Validator
	ledger    *ledger.Ledger
	profile   timing.Profile
	burst     timing.BurstConfig
	logger    zerolog.Logger
}

// New assembles an engine. The burst configuration derives from the profile.
func New(cfg config.Engine, v *validation.Validator, l *ledger.Ledger, profile timing.Profile) *Engine {
	return &Engine{
		cfg:       cfg,
		validator: v,
		ledger:    l,
		profile:   profile,
		burst:     timing.DefaultBurstConfig(profile),
		logger: log.WithComponent("pipeline").With().
			Str(log.FieldChannelID, l.Channel()).
			Str(log.FieldProfile, string(profile.Name)).
			Logger(),
	}
}

// NewFromConfig opens the configured store backend and assembles an engine
// bound to one channel ledger. The returned closer releases the store.
func NewFromConfig(cfg config.Engine, channel string, profileName timing.ProfileName, custom ...validation.ForbiddenPattern) (*Engine, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	profile, ok := timing.ProfileByName(profileName)
	if !ok {
		return nil, nil, fmt.Errorf("unknown timing profile: %s", profileName)
	}
	st, err := store.Open(cfg.StoreBackend, cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	l, err := ledger.New(channel, st)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return New(cfg, validation.New(custom...), l, profile), st.Close, nil
}

// Run executes one full generation pass: exclusion filter, candidate
// validation, round outcome assignment, timing layout, chapter rendering, and
// finally the ledger commit of newly used expressions.
func (e *Engine) Run(ctx context.Context, req Request) (*Result, error) {
	res, err := e.run(ctx, req)
	accepted := 0
	if res != nil {
		accepted = len(res.Accepted)
	}
	metrics.RecordPipelineRun(err, accepted)
	return res, err
}

func (e *Engine) run(ctx context.Context, req Request) (*Result, error) {
	videoID := req.VideoID
	if videoID == "" {
		videoID = uuid.NewString()
	}
	ctx = log.ContextWithVideoID(ctx, videoID)
	logger := e.logger.With().Str(log.FieldVideoID, videoID).Logger()

	// Exclusion: recently used or blacklisted natives never reach validation.
	natives := make([]string, len(req.Candidates))
	for i, c := range req.Candidates {
		natives[i] = c.Native
	}
	checks := ledger.CheckExclusion(ctx, e.ledger, natives, e.cfg.RecentVideoWindow)

	var (
		survivors []CandidatePair
		rejected  []RejectedCandidate
	)
	for i, check := range checks {
		if check.Excluded {
			rejected = append(rejected, RejectedCandidate{
				Pair:   req.Candidates[i],
				Stage:  "exclusion",
				Reason: string(check.Reason),
			})
			logger.Debug().
				Str(log.FieldExpression, check.Expression).
				Str(log.FieldReason, string(check.Reason)).
				Msg("candidate excluded")
			continue
		}
		survivors = append(survivors, req.Candidates[i])
	}

	// Validation: the validator is pure, so survivors are scored in parallel.
	verdicts := make([]validation.Result, len(survivors))
	g, _ := errgroup.WithContext(ctx)
	for i, pair := range survivors {
		g.Go(func() error {
			verdicts[i] = e.validator.Validate(pair.Native)
			return nil
		})
	}
	_ = g.Wait()

	var accepted []AcceptedCandidate
	for i, verdict := range verdicts {
		metrics.RecordValidation(string(verdict.Status), verdict.ConfidenceScore)
		if verdict.Status == validation.StatusFailed {
			rejected = append(rejected, RejectedCandidate{
				Pair:   survivors[i],
				Stage:  "validation",
				Reason: verdict.Reason,
			})
			logger.Debug().
				Str(log.FieldExpression, verdict.Expression).
				Str(log.FieldStatus, string(verdict.Status)).
				Str(log.FieldReason, verdict.Reason).
				Msg("candidate failed validation")
			continue
		}
		accepted = append(accepted, AcceptedCandidate{Pair: survivors[i], Validation: verdict})
	}

	if len(accepted) == 0 {
		logger.Warn().
			Int("candidates", len(req.Candidates)).
			Int("rejected", len(rejected)).
			Msg("no candidates survived")
		return &Result{VideoID: videoID, Rejected: rejected}, ErrNoAcceptedExpressions
	}

	// Round outcomes: seeded when requested, otherwise entropy-seeded but
	// logged so any run can be replayed.
	var seed uint64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		var err error
		seed, err = survival.SeedFromEntropy()
		if err != nil {
			return nil, err
		}
	}
	decisions, _ := survival.DecideRounds(len(accepted), seed)
	rounds := make([]survival.RoundAssignment, len(decisions))
	for i, d := range decisions {
		rounds[i] = survival.AssignExpressions(d, accepted[i].Pair.Native, accepted[i].Pair.NonNative)
	}

	// Temporal layout: one segment per accepted round.
	vt := timing.CalculateVideoTiming(len(accepted), e.profile, e.burst,
		e.cfg.HookSeconds, e.cfg.CTASeconds, e.cfg.TransitionSeconds)
	chapters := timing.GenerateChapters(vt)

	// Commit: newly used expressions enter the ledger for future exclusion.
	inputs := make([]ledger.Input, len(accepted))
	for i, a := range accepted {
		inputs[i] = ledger.Input{
			Expression: a.Pair.Native,
			Category:   a.Pair.Category,
			Difficulty: a.Pair.Difficulty,
		}
	}
	if err := e.ledger.AddExpressions(ctx, inputs, videoID); err != nil {
		return nil, err
	}

	logger.Info().
		Uint64(log.FieldSeed, seed).
		Int("accepted", len(accepted)).
		Int("rejected", len(rejected)).
		Int(log.FieldSegments, len(vt.SegmentTimings)).
		Float64(log.FieldSeconds, vt.TotalDurationSeconds).
		Msg("video plan generated")

	return &Result{
		VideoID:     videoID,
		Seed:        seed,
		Accepted:    accepted,
		Rejected:    rejected,
		Rounds:      rounds,
		FinalWinner: survival.DetermineFinalWinner(decisions),
		Timing:      vt,
		Chapters:    chapters,
		ChapterText: timing.RenderChapters(chapters),
	}, nil
}
