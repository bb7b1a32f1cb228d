// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation for the external tools both CLIs orchestrate:
// the webauto dataset CLI, ffmpeg, and ffprobe.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned when a required external tool is missing.
var (
	ErrWebautoNotFound = errors.New("webauto CLI not found on PATH")
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck. Defined
// here (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: it reports availability and
// version of every external tool. Informational only; it does not stop
// on failure.
func RunCheck(log Logger) {
	log.Info("=== System Check ===")
	checkTool(log, "webauto", "version")
	checkTool(log, "ffmpeg", "-version")
	checkTool(log, "ffprobe", "-version")
}

// CheckRenameDeps validates the tools dsrename needs before any pipeline
// work, failing fast with a sentinel error.
func CheckRenameDeps() error {
	if _, err := exec.LookPath("webauto"); err != nil {
		return ErrWebautoNotFound
	}
	return nil
}

// CheckCompareDeps validates the tools vidcompare needs.
func CheckCompareDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// checkTool reports whether name is on PATH and logs the first line of
// its version output.
func checkTool(log Logger, name string, versionArg string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return
	}
	out, err := exec.Command(name, versionArg).Output()
	if err != nil {
		log.Warn("%s found but version query failed: %v", name, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
}
