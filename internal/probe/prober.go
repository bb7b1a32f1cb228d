// Package probe provides ffprobe-based video inspection. A single JSON
// call per file yields the properties the comparison tool verifies:
// codec, frame size, frame rate, and duration.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// VideoInfo holds the probed properties of one input video.
type VideoInfo struct {
	Path     string
	Codec    string
	Width    int
	Height   int
	FPS      float64
	Duration float64 // seconds
}

// Resolution returns "WxH" for log output.
func (v *VideoInfo) Resolution() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// Probe runs one ffprobe JSON call against path and returns the parsed
// properties of its primary video stream.
func Probe(ctx context.Context, path string) (*VideoInfo, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	return ParseJSON(path, out)
}

// ParseJSON converts raw ffprobe JSON output into a VideoInfo. Exported
// for testing without a real ffprobe binary.
func ParseJSON(path string, data []byte) (*VideoInfo, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON for %q: %w", path, err)
	}

	for i := range raw.Streams {
		s := &raw.Streams[i]
		if s.CodecType != "video" || s.Disposition["attached_pic"] == 1 {
			continue
		}
		return &VideoInfo{
			Path:     path,
			Codec:    s.CodecName,
			Width:    s.Width,
			Height:   s.Height,
			FPS:      parseRate(s.AvgFrameRate),
			Duration: parseFloat(raw.Format.Duration),
		}, nil
	}
	return nil, fmt.Errorf("%w in %q", ErrNoVideoStream, path)
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecName    string         `json:"codec_name"`
	CodecType    string         `json:"codec_type"`
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	AvgFrameRate string         `json:"avg_frame_rate"`
	Disposition  map[string]int `json:"disposition"`
}

// parseRate converts ffprobe's rational frame rate ("30000/1001", "25/1")
// to a float. Returns 0 for missing or degenerate values.
func parseRate(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "0/0" {
		return 0
	}
	num, den, found := strings.Cut(s, "/")
	if !found {
		return parseFloat(num)
	}
	n := parseFloat(num)
	d := parseFloat(den)
	if d == 0 {
		return 0
	}
	return n / d
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

// ErrNoVideoStream is returned when a probed file carries no usable
// video stream (attached pictures are not usable).
var ErrNoVideoStream = errors.New("no video stream")
