package timing

// minSegmentsForBurst is the video length below which burst sequences are
// not worth the editing churn; short videos keep uniform pacing.
const minSegmentsForBurst = 15

// SegmentTiming is the resolved temporal placement of one segment.
// EndTimeSeconds == StartTimeSeconds + DurationSeconds always holds.
type SegmentTiming struct {
	SegmentIndex     int     `json:"segmentIndex"`
	DurationSeconds  float64 `json:"durationSeconds"`
	IsBurst          bool    `json:"isBurst"`
	StartTimeSeconds float64 `json:"startTimeSeconds"`
	EndTimeSeconds   float64 `json:"endTimeSeconds"`
}

// VideoTiming is the derived temporal layout of a whole video. It carries no
// hidden state: recomputation with identical inputs yields identical output.
type VideoTiming struct {
	Profile              Profile         `json:"profile"`
	SegmentTimings       []SegmentTiming `json:"segmentTimings"`
	TotalDurationSeconds float64         `json:"totalDurationSeconds"`
	BurstSequenceCount   int             `json:"burstSequenceCount"`
	HookDurationSeconds  float64         `json:"hookDurationSeconds"`
	CTADurationSeconds   float64         `json:"ctaDurationSeconds"`
}

// IsBurstSegment reports whether the 0-based segment index falls inside a
// burst run. A segment is claimed by at most the nearest preceding trigger,
// and only while that trigger's run of BurstLength segments is unexhausted.
func IsBurstSegment(index, totalSegments int, cfg BurstConfig) bool {
	if totalSegments < minSegmentsForBurst {
		return false
	}
	if cfg.TriggerEveryNSegments <= 0 || cfg.BurstLength <= 0 {
		return false
	}
	if index <= 0 || index >= totalSegments {
		return false
	}

	// Triggers sit at k*N-1. The nearest trigger strictly below index has
	// k = index/N; k == 0 means no trigger precedes this segment.
	k := index / cfg.TriggerEveryNSegments
	if k == 0 {
		return false
	}
	trigger := k*cfg.TriggerEveryNSegments - 1
	return index-trigger <= cfg.BurstLength
}

// BurstSegmentIndices lists every burst segment index for a video.
func BurstSegmentIndices(totalSegments int, cfg BurstConfig) []int {
	var out []int
	for i := 0; i < totalSegments; i++ {
		if IsBurstSegment(i, totalSegments, cfg) {
			out = append(out, i)
		}
	}
	return out
}

// CountBurstSequences counts trigger points that yield at least one burst
// segment, i.e. triggers whose burst-start index is still in range.
func CountBurstSequences(totalSegments int, cfg BurstConfig) int {
	if totalSegments < minSegmentsForBurst || cfg.TriggerEveryNSegments <= 0 || cfg.BurstLength <= 0 {
		return 0
	}
	count := 0
	for trigger := cfg.TriggerEveryNSegments - 1; trigger+1 < totalSegments; trigger += cfg.TriggerEveryNSegments {
		count++
	}
	return count
}

// SegmentDuration resolves one segment's duration under the active profile.
func SegmentDuration(index, totalSegments int, profile Profile, cfg BurstConfig) float64 {
	if IsBurstSegment(index, totalSegments, cfg) {
		return cfg.BurstDurationSeconds
	}
	return profile.SegmentDurationSeconds
}

// CalculateVideoTiming walks segments in order, accumulating offsets from the
// hook onward. A transition gap follows every segment except the last; the
// closing call-to-action is appended after the final segment.
func CalculateVideoTiming(totalSegments int, profile Profile, cfg BurstConfig, hookSeconds, ctaSeconds, transitionSeconds float64) VideoTiming {
	segments := make([]SegmentTiming, 0, totalSegments)
	current := hookSeconds
	for i := 0; i < totalSegments; i++ {
		dur := SegmentDuration(i, totalSegments, profile, cfg)
		seg := SegmentTiming{
			SegmentIndex:     i,
			DurationSeconds:  dur,
			IsBurst:          IsBurstSegment(i, totalSegments, cfg),
			StartTimeSeconds: current,
			EndTimeSeconds:   current + dur,
		}
		segments = append(segments, seg)
		current = seg.EndTimeSeconds + transitionSeconds
	}

	total := current + ctaSeconds
	if totalSegments > 0 {
		// No trailing transition after the last segment.
		total = current - transitionSeconds + ctaSeconds
	}

	return VideoTiming{
		Profile:              profile,
		SegmentTimings:       segments,
		TotalDurationSeconds: total,
		BurstSequenceCount:   CountBurstSequences(totalSegments, cfg),
		HookDurationSeconds:  hookSeconds,
		CTADurationSeconds:   ctaSeconds,
	}
}

// EstimateVideoDuration computes the total duration in closed form, without
// materializing segment timings. It must agree with CalculateVideoTiming.
func EstimateVideoDuration(totalSegments int, profile Profile, cfg BurstConfig, hookSeconds, ctaSeconds, transitionSeconds float64) float64 {
	burst := len(BurstSegmentIndices(totalSegments, cfg))
	total := hookSeconds + ctaSeconds
	total += float64(burst) * cfg.BurstDurationSeconds
	total += float64(totalSegments-burst) * profile.SegmentDurationSeconds
	if totalSegments > 1 {
		total += float64(totalSegments-1) * transitionSeconds
	}
	return total
}
