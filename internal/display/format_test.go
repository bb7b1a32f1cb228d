package display

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0s"},
		{45.25, "45.2s"},
		{60, "1m0.0s"},
		{92.5, "1m32.5s"},
		{-3, "0.0s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFPS(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{25, "25"},
		{29.97, "29.97"},
		{23.976, "23.976"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatFPS(tt.in); got != tt.want {
			t.Errorf("FormatFPS(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"a-very-long-dataset-name", 10, "a-very-..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
