package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecondsToFrames(t *testing.T) {
	cases := []struct {
		seconds   float64
		frameRate float64
		want      int
	}{
		{0, 30, 0},
		{1, 30, 30},
		{1.5, 30, 45},
		{0.05, 30, 2},    // 1.5 frames rounds half away from zero
		{0.0166, 30, 0},  // just under half a frame
		{0.0167, 30, 1},  // just over half a frame
		{10, 24, 240},
		{2.5, 60, 150},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SecondsToFrames(tc.seconds, tc.frameRate),
			"seconds=%v fps=%v", tc.seconds, tc.frameRate)
	}
}

func TestFramesToSeconds(t *testing.T) {
	assert.Equal(t, 1.0, FramesToSeconds(30, 30))
	assert.Equal(t, 1.5, FramesToSeconds(45, 30))
	assert.Equal(t, 0.0, FramesToSeconds(0, 24))
}

func TestFrameConversionRoundTrip(t *testing.T) {
	for frames := 0; frames < 300; frames++ {
		seconds := FramesToSeconds(frames, 30)
		assert.Equal(t, frames, SecondsToFrames(seconds, 30))
	}
}
