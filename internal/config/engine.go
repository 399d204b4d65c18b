package config

import (
	"fmt"
	"strings"
)

// Engine bundles the tunable defaults of the retention-timing and
// content-validation core. Values come from the environment with sane
// fallbacks; the orchestration layer may override any field before use.
type Engine struct {
	// DataDir is the root directory for per-channel ledger storage.
	DataDir string
	// StoreBackend selects the ledger storage backend: file, badger, sqlite, memory.
	StoreBackend string

	// FrameRate is the target video frame rate for frame conversions.
	FrameRate float64
	// HookSeconds is the duration of the opening hook before the first segment.
	HookSeconds float64
	// CTASeconds is the duration of the closing call-to-action.
	CTASeconds float64
	// TransitionSeconds is the gap inserted between consecutive segments.
	TransitionSeconds float64

	// RecentVideoWindow is the number of most recent videos consulted when
	// excluding previously used expressions.
	RecentVideoWindow int
}

// Defaults mirror the production channel presets.
const (
	DefaultStoreBackend      = "file"
	DefaultFrameRate         = 30.0
	DefaultHookSeconds       = 5.0
	DefaultCTASeconds        = 15.0
	DefaultTransitionSeconds = 0.5
	DefaultRecentVideoWindow = 10
)

// FromEnv builds an Engine config from LINGOREEL_* environment variables.
func FromEnv() Engine {
	return Engine{
		DataDir:           resolveDataDir(),
		StoreBackend:      ParseString("LINGOREEL_STORE_BACKEND", DefaultStoreBackend),
		FrameRate:         ParseFloat("LINGOREEL_FRAME_RATE", DefaultFrameRate),
		HookSeconds:       ParseFloat("LINGOREEL_HOOK_SECONDS", DefaultHookSeconds),
		CTASeconds:        ParseFloat("LINGOREEL_CTA_SECONDS", DefaultCTASeconds),
		TransitionSeconds: ParseFloat("LINGOREEL_TRANSITION_SECONDS", DefaultTransitionSeconds),
		RecentVideoWindow: ParseInt("LINGOREEL_RECENT_VIDEO_WINDOW", DefaultRecentVideoWindow),
	}
}

// resolveDataDir resolves the ledger data directory from supported environment keys.
func resolveDataDir() string {
	if v := strings.TrimSpace(ParseString("LINGOREEL_DATA_DIR", "")); v != "" {
		return v
	}
	if v := strings.TrimSpace(ParseString("LINGOREEL_DATA", "")); v != "" {
		return v
	}
	return "data"
}

// Validate rejects values the engine cannot run with.
func (e Engine) Validate() error {
	if e.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %v", e.FrameRate)
	}
	if e.HookSeconds < 0 || e.CTASeconds < 0 || e.TransitionSeconds < 0 {
		return fmt.Errorf("durations must be non-negative (hook=%v cta=%v transition=%v)",
			e.HookSeconds, e.CTASeconds, e.TransitionSeconds)
	}
	switch e.StoreBackend {
	case "file", "badger", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown store backend: %s", e.StoreBackend)
	}
	return nil
}
