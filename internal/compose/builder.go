package compose

import (
	"fmt"
	"strings"

	"github.com/labworks/dstools/internal/display"
)

// Build constructs the complete ffmpeg argument slice for a plan. Each
// input is extended downward by the label band (pad) with its description
// drawn centered in the band (drawtext); the labeled columns are then
// stacked horizontally. One input skips the stack entirely.
func Build(p *Plan, verbose bool) []string {
	args := make([]string, 0, 32)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")
	if verbose {
		args = append(args, "-loglevel", "info", "-stats")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Inputs ---
	for _, in := range p.Inputs {
		args = append(args, "-i", in.Path)
	}

	// --- Filtergraph ---
	filter, outLabel := buildFilter(p)
	args = append(args, "-filter_complex", filter, "-map", outLabel)

	// --- Output codec ---
	args = append(args,
		"-c:v", "libx264",
		"-preset", "medium",
		"-pix_fmt", "yuv420p",
		"-an",
	)
	if p.FPS > 0 {
		args = append(args, "-r", display.FormatFPS(p.FPS))
	}

	args = append(args, p.OutputPath)
	return args
}

// buildFilter returns the filter_complex expression and the label of the
// final output pad.
func buildFilter(p *Plan) (string, string) {
	chains := make([]string, 0, len(p.Inputs)+1)
	for i, in := range p.Inputs {
		chains = append(chains, fmt.Sprintf("[%d:v]%s[v%d]", i, labelChain(p, in.Label), i))
	}

	if len(p.Inputs) == 1 {
		return strings.Join(chains, ";"), "[v0]"
	}

	var stackIn strings.Builder
	for i := range p.Inputs {
		fmt.Fprintf(&stackIn, "[v%d]", i)
	}
	chains = append(chains, fmt.Sprintf("%shstack=inputs=%d[out]", stackIn.String(), len(p.Inputs)))
	return strings.Join(chains, ";"), "[out]"
}

// labelChain builds the per-input filter chain. A zero band height means
// no label area at all; an empty label keeps the band but draws nothing.
func labelChain(p *Plan, label string) string {
	if p.BandHeight <= 0 {
		return "null"
	}
	pad := fmt.Sprintf("pad=w=iw:h=ih+%d:x=0:y=0:color=%s", p.BandHeight, p.BandColor)
	if label == "" {
		return pad
	}
	drawtext := fmt.Sprintf(
		"drawtext=text='%s':fontsize=%d:fontcolor=%s:x=(w-text_w)/2:y=%d+(%d-text_h)/2",
		escapeDrawtext(label), p.FontSize, p.FontColor, p.Height, p.BandHeight,
	)
	return pad + "," + drawtext
}

// escapeDrawtext escapes characters that terminate or alter the drawtext
// text option inside a filtergraph string.
func escapeDrawtext(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`'`, `'\''`,
		`:`, `\:`,
		`%`, `\%`,
		`,`, `\,`,
		`;`, `\;`,
		`[`, `\[`,
		`]`, `\]`,
	)
	return r.Replace(s)
}
