// Package timing decides the temporal structure of a generated video:
// per-segment durations, periodic burst sequences against viewer fatigue,
// absolute segment offsets and derived chapter markers. Everything here is a
// pure function of its inputs.
package timing

// ProfileName selects a pacing regime for an entire video.
type ProfileName string

const (
	ProfileFast     ProfileName = "fast"
	ProfileNormal   ProfileName = "normal"
	ProfileSuspense ProfileName = "suspense"
)

// Profile is an immutable pacing preset.
type Profile struct {
	Name                   ProfileName `json:"name"`
	SegmentDurationSeconds float64     `json:"segmentDurationSeconds"`
	BurstDurationSeconds   float64     `json:"burstDurationSeconds"`
	Description            string      `json:"description"`
}

var profiles = map[ProfileName]Profile{
	ProfileFast: {
		Name:                   ProfileFast,
		SegmentDurationSeconds: 7,
		BurstDurationSeconds:   4,
		Description:            "rapid-fire pacing for shorts and compilation cuts",
	},
	ProfileNormal: {
		Name:                   ProfileNormal,
		SegmentDurationSeconds: 10,
		BurstDurationSeconds:   5,
		Description:            "default long-form pacing with room for repetition",
	},
	ProfileSuspense: {
		Name:                   ProfileSuspense,
		SegmentDurationSeconds: 13,
		BurstDurationSeconds:   6,
		Description:            "slow reveal pacing for quiz and survival formats",
	},
}

// ProfileByName returns the named preset.
func ProfileByName(name ProfileName) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// BurstConfig parameterizes when and for how long segments become bursts.
type BurstConfig struct {
	// TriggerEveryNSegments places trigger points at 0-based indices
	// N-1, 2N-1, ... Each trigger converts the following BurstLength
	// segments into burst segments.
	TriggerEveryNSegments int     `json:"triggerEveryNSegments"`
	BurstLength           int     `json:"burstLength"`
	BurstDurationSeconds  float64 `json:"burstDurationSeconds"`
}

// DefaultBurstConfig derives the standard burst parameters for a profile.
func DefaultBurstConfig(profile Profile) BurstConfig {
	return BurstConfig{
		TriggerEveryNSegments: 5,
		BurstLength:           3,
		BurstDurationSeconds:  profile.BurstDurationSeconds,
	}
}
