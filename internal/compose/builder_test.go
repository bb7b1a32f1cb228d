package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoVideoPlan() *Plan {
	return &Plan{
		Inputs: []Input{
			{Path: "/data/baseline.mp4", Label: "baseline model"},
			{Path: "/data/candidate.mp4", Label: "candidate model"},
		},
		Width:      1920,
		Height:     1080,
		FPS:        25,
		BandHeight: 100,
		BandColor:  "white",
		FontSize:   30,
		FontColor:  "black",
		OutputPath: "/data/out/comparison.mp4",
	}
}

func filterOf(t *testing.T, args []string) string {
	t.Helper()
	for i, a := range args {
		if a == "-filter_complex" {
			require.Less(t, i+1, len(args))
			return args[i+1]
		}
	}
	t.Fatal("no -filter_complex in args")
	return ""
}

func TestBuild_TwoVideos(t *testing.T) {
	args := Build(twoVideoPlan(), false)

	assert.Equal(t, "ffmpeg", args[0])
	assert.Equal(t, "/data/out/comparison.mp4", args[len(args)-1])

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-i /data/baseline.mp4")
	assert.Contains(t, joined, "-i /data/candidate.mp4")
	assert.Contains(t, joined, "-map [out]")
	assert.Contains(t, joined, "-c:v libx264")
	assert.Contains(t, joined, "-r 25")
	assert.Contains(t, joined, "-an")

	filter := filterOf(t, args)
	assert.Contains(t, filter, "hstack=inputs=2[out]")
	assert.Contains(t, filter, "[0:v]pad=w=iw:h=ih+100:x=0:y=0:color=white")
	assert.Contains(t, filter, "drawtext=text='baseline model'")
	assert.Contains(t, filter, "y=1080+(100-text_h)/2")
	assert.Contains(t, filter, "[v0][v1]hstack")
}

func TestBuild_SingleVideoSkipsStack(t *testing.T) {
	p := twoVideoPlan()
	p.Inputs = p.Inputs[:1]
	args := Build(p, false)

	filter := filterOf(t, args)
	assert.NotContains(t, filter, "hstack")
	assert.Contains(t, strings.Join(args, " "), "-map [v0]")
}

func TestBuild_ZeroBandHeightDropsLabels(t *testing.T) {
	p := twoVideoPlan()
	p.BandHeight = 0
	filter := filterOf(t, Build(p, false))

	assert.NotContains(t, filter, "pad=")
	assert.NotContains(t, filter, "drawtext")
	assert.Contains(t, filter, "[0:v]null[v0]")
}

func TestBuild_EmptyLabelKeepsBand(t *testing.T) {
	p := twoVideoPlan()
	p.Inputs[1].Label = ""
	filter := filterOf(t, Build(p, false))

	assert.Contains(t, filter, "[1:v]pad=w=iw:h=ih+100:x=0:y=0:color=white[v1]")
}

func TestBuild_VerboseLoglevel(t *testing.T) {
	joined := strings.Join(Build(twoVideoPlan(), true), " ")
	assert.Contains(t, joined, "-loglevel info")

	joined = strings.Join(Build(twoVideoPlan(), false), " ")
	assert.Contains(t, joined, "-loglevel error")
}

func TestEscapeDrawtext(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"ratio 1:2", `ratio 1\:2`},
		{"a,b", `a\,b`},
		{"95% mAP", `95\% mAP`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeDrawtext(tt.in), "input %q", tt.in)
	}
}
