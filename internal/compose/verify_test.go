package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/labworks/dstools/internal/config"
	"github.com/labworks/dstools/internal/probe"
)

func baseline() *probe.VideoInfo {
	return &probe.VideoInfo{
		Path:     "/data/baseline.mp4",
		Codec:    "h264",
		Width:    1920,
		Height:   1080,
		FPS:      29.97,
		Duration: 60.0,
	}
}

func TestVerifyMatch(t *testing.T) {
	t.Run("identical videos pass", func(t *testing.T) {
		b := baseline()
		other := *b
		other.Path = "/data/candidate.mp4"
		assert.NoError(t, VerifyMatch([]*probe.VideoInfo{b, &other}))
	})

	t.Run("single video passes", func(t *testing.T) {
		assert.NoError(t, VerifyMatch([]*probe.VideoInfo{baseline()}))
	})

	t.Run("empty list fails", func(t *testing.T) {
		assert.Error(t, VerifyMatch(nil))
	})

	t.Run("size mismatch", func(t *testing.T) {
		other := baseline()
		other.Path = "/data/candidate.mp4"
		other.Width = 1280
		other.Height = 720
		err := VerifyMatch([]*probe.VideoInfo{baseline(), other})
		assert.ErrorContains(t, err, "size mismatch")
		assert.ErrorContains(t, err, "candidate.mp4")
	})

	t.Run("fps within tolerance passes", func(t *testing.T) {
		other := baseline()
		other.FPS = 29.9705
		assert.NoError(t, VerifyMatch([]*probe.VideoInfo{baseline(), other}))
	})

	t.Run("fps beyond tolerance fails", func(t *testing.T) {
		other := baseline()
		other.FPS = 30.0
		assert.ErrorContains(t, VerifyMatch([]*probe.VideoInfo{baseline(), other}), "FPS mismatch")
	})

	t.Run("duration within tolerance passes", func(t *testing.T) {
		other := baseline()
		other.Duration = 60.05
		assert.NoError(t, VerifyMatch([]*probe.VideoInfo{baseline(), other}))
	})

	t.Run("duration beyond tolerance fails", func(t *testing.T) {
		other := baseline()
		other.Duration = 61.0
		assert.ErrorContains(t, VerifyMatch([]*probe.VideoInfo{baseline(), other}), "duration mismatch")
	})
}

func TestBuildPlan(t *testing.T) {
	cfg := &config.CompareConfig{
		Videos: []config.VideoEntry{
			{Path: "/data/baseline.mp4", Description: "baseline model"},
			{Path: "/data/candidate.mp4", Description: "candidate model"},
		},
		OutputVideo:    "/data/out/comparison.mp4",
		TextAreaHeight: 80,
		TextAreaColor:  "white",
		FontSize:       24,
		FontColor:      "black",
	}
	other := baseline()
	other.Path = "/data/candidate.mp4"
	infos := []*probe.VideoInfo{baseline(), other}

	p := BuildPlan(cfg, infos)
	assert.Equal(t, 1920, p.Width)
	assert.Equal(t, 1080, p.Height)
	assert.Equal(t, 29.97, p.FPS)
	assert.Equal(t, 80, p.BandHeight)
	assert.Equal(t, "/data/out/comparison.mp4", p.OutputPath)
	assert.Equal(t, []Input{
		{Path: "/data/baseline.mp4", Label: "baseline model"},
		{Path: "/data/candidate.mp4", Label: "candidate model"},
	}, p.Inputs)
}
