package probe

import (
	"errors"
	"math"
	"testing"
)

const sampleJSON = `{
	"streams": [
		{
			"codec_name": "mjpeg",
			"codec_type": "video",
			"width": 600,
			"height": 400,
			"avg_frame_rate": "0/0",
			"disposition": {"attached_pic": 1}
		},
		{
			"codec_name": "h264",
			"codec_type": "video",
			"width": 1920,
			"height": 1080,
			"avg_frame_rate": "30000/1001",
			"disposition": {"attached_pic": 0}
		},
		{
			"codec_name": "aac",
			"codec_type": "audio"
		}
	],
	"format": {
		"duration": "12.480000"
	}
}`

func TestParseJSON(t *testing.T) {
	info, err := ParseJSON("/videos/a.mp4", []byte(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	if info.Path != "/videos/a.mp4" {
		t.Errorf("Path = %q", info.Path)
	}
	if info.Codec != "h264" {
		t.Errorf("Codec = %q, want h264 (attached pic must be skipped)", info.Codec)
	}
	if info.Width != 1920 || info.Height != 1080 {
		t.Errorf("size = %s, want 1920x1080", info.Resolution())
	}
	if math.Abs(info.FPS-29.97) > 0.01 {
		t.Errorf("FPS = %v, want ~29.97", info.FPS)
	}
	if math.Abs(info.Duration-12.48) > 0.0001 {
		t.Errorf("Duration = %v, want 12.48", info.Duration)
	}
}

func TestParseJSON_NoVideoStream(t *testing.T) {
	_, err := ParseJSON("a.mp4", []byte(`{"streams":[{"codec_type":"audio"}],"format":{}}`))
	if !errors.Is(err, ErrNoVideoStream) {
		t.Errorf("err = %v, want ErrNoVideoStream", err)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	if _, err := ParseJSON("a.mp4", []byte("{")); err == nil {
		t.Error("accepted malformed JSON")
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"25/1", 25},
		{"30000/1001", 29.97002997002997},
		{"0/0", 0},
		{"", 0},
		{"24", 24},
		{"30/0", 0},
	}
	for _, tt := range tests {
		if got := parseRate(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("parseRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
