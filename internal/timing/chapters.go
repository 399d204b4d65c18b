package timing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Chapter is one human-readable marker in a video description.
type Chapter struct {
	Seconds int    `json:"seconds"`
	Title   string `json:"title"`
}

// FormatTimestamp renders whole seconds as "M:SS". Minutes are unpadded,
// seconds always two digits.
func FormatTimestamp(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// FormatTimestampPadded renders whole seconds as "MM:SS" for targets that
// require zero-padded minutes.
func FormatTimestampPadded(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

var timestampRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimestamp recovers whole seconds from a "M:SS" or "MM:SS" marker.
func ParseTimestamp(s string) (int, error) {
	m := timestampRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("malformed timestamp: %q", s)
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	if seconds > 59 {
		return 0, fmt.Errorf("seconds out of range in timestamp: %q", s)
	}
	return minutes*60 + seconds, nil
}

// GenerateChapters emits, in chronological order, an intro marker at 0:00,
// one marker per segment at its start time, and a closing marker at
// totalDuration - cta (the end of the final segment).
func GenerateChapters(vt VideoTiming) []Chapter {
	chapters := make([]Chapter, 0, len(vt.SegmentTimings)+2)
	chapters = append(chapters, Chapter{Seconds: 0, Title: "Intro"})
	for _, seg := range vt.SegmentTimings {
		chapters = append(chapters, Chapter{
			Seconds: wholeSeconds(seg.StartTimeSeconds),
			Title:   fmt.Sprintf("Expression %d", seg.SegmentIndex+1),
		})
	}
	chapters = append(chapters, Chapter{
		Seconds: wholeSeconds(vt.TotalDurationSeconds - vt.CTADurationSeconds),
		Title:   "Outro",
	})
	return chapters
}

// RenderChapters formats chapters as description lines, one marker per line.
func RenderChapters(chapters []Chapter) string {
	var b strings.Builder
	for i, c := range chapters {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatTimestamp(c.Seconds))
		b.WriteByte(' ')
		b.WriteString(c.Title)
	}
	return b.String()
}

// wholeSeconds floors a non-negative offset to chapter granularity. The tiny
// epsilon absorbs accumulated float error at exact second boundaries.
func wholeSeconds(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Floor(seconds + 1e-9))
}
