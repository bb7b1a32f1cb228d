package compose

import (
	"fmt"
	"math"

	"github.com/labworks/dstools/internal/probe"
)

// Property tolerances when comparing inputs against the baseline.
// Frame rates may differ by float rounding; durations by container
// rounding of the final frame.
const (
	fpsTolerance      = 0.001
	durationTolerance = 0.1
)

// VerifyMatch checks that every input shares the first input's frame
// size, frame rate, and duration. Mismatches are configuration errors:
// the composite would otherwise stretch or freeze columns.
func VerifyMatch(infos []*probe.VideoInfo) error {
	if len(infos) == 0 {
		return fmt.Errorf("no videos to verify")
	}
	base := infos[0]
	for _, v := range infos[1:] {
		if v.Width != base.Width || v.Height != base.Height {
			return fmt.Errorf("video size mismatch: %q is %s, expected %s from %q",
				v.Path, v.Resolution(), base.Resolution(), base.Path)
		}
		if math.Abs(v.FPS-base.FPS) > fpsTolerance {
			return fmt.Errorf("video FPS mismatch: %q is %.3f, expected %.3f from %q",
				v.Path, v.FPS, base.FPS, base.Path)
		}
		if math.Abs(v.Duration-base.Duration) > durationTolerance {
			return fmt.Errorf("video duration mismatch: %q is %.2fs, expected %.2fs from %q",
				v.Path, v.Duration, base.Duration, base.Path)
		}
	}
	return nil
}
