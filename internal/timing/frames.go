package timing

import "math"

// SecondsToFrames converts a duration to a whole frame count at the given
// frame rate, rounding half away from zero.
func SecondsToFrames(seconds, frameRate float64) int {
	return int(math.Round(seconds * frameRate))
}

// FramesToSeconds converts a frame count back to seconds.
func FramesToSeconds(frames int, frameRate float64) float64 {
	return float64(frames) / frameRate
}
