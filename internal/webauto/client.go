// Package webauto is a thin client for the external dataset-management
// CLI. Each operation is one subprocess call; authentication is handled
// out of band by the CLI itself.
package webauto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/uuid"
)

// DefaultBin is the CLI binary resolved on PATH.
const DefaultBin = "webauto"

// Dataset is the subset of the describe output the rename flow needs.
type Dataset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client invokes the dataset CLI for a single project. It carries no
// session state; the binary reads credentials from its own config.
type Client struct {
	ProjectID string
	Bin       string
}

// NewClient returns a client for projectID using the default binary.
func NewClient(projectID string) *Client {
	return &Client{ProjectID: projectID, Bin: DefaultBin}
}

// Search returns the IDs of unapproved annotation datasets whose names
// contain keyword.
func (c *Client) Search(ctx context.Context, keyword string) ([]string, error) {
	cmd := exec.CommandContext(ctx, c.Bin,
		"data", "annotation-dataset", "search",
		"--project-id", c.ProjectID,
		"--name-keyword", keyword,
		"--unapproved",
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("webauto search %q: %w%s", keyword, err, stderrTail(err))
	}
	return ParseSearchOutput(out), nil
}

// Describe fetches a dataset's current state, including its name.
func (c *Client) Describe(ctx context.Context, datasetID string) (*Dataset, error) {
	cmd := exec.CommandContext(ctx, c.Bin,
		"data", "annotation-dataset", "describe",
		"--annotation-dataset-id", datasetID,
		"--project-id", c.ProjectID,
		"--output", "json",
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("webauto describe %s: %w%s", datasetID, err, stderrTail(err))
	}
	return ParseDescribeJSON(out)
}

// Update renames a dataset.
func (c *Client) Update(ctx context.Context, datasetID, newName string) error {
	cmd := exec.CommandContext(ctx, c.Bin,
		"data", "annotation-dataset", "update",
		"--annotation-dataset-id", datasetID,
		"--project-id", c.ProjectID,
		"--name", newName,
	)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("webauto update %s: %w%s", datasetID, err, stderrTail(err))
	}
	return nil
}

// ParseSearchOutput extracts dataset IDs from the CLI's tabular search
// output. Only lines whose first token is "id" and whose second token is
// a canonical UUID are accepted; everything else (headers, separators,
// other attributes) is ignored. Exported for testing without the real
// binary.
func ParseSearchOutput(out []byte) []string {
	var ids []string
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "id" {
			continue
		}
		if isCanonicalUUID(fields[1]) {
			ids = append(ids, fields[1])
		}
	}
	return ids
}

// ParseDescribeJSON decodes the describe --output json payload. Exported
// for testing without the real binary.
func ParseDescribeJSON(out []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(out, &ds); err != nil {
		return nil, fmt.Errorf("parse describe JSON: %w", err)
	}
	if ds.Name == "" {
		return nil, errors.New("describe output has no name field")
	}
	return &ds, nil
}

// isCanonicalUUID reports whether s is a UUID in canonical lowercase
// 8-4-4-4-12 form, the shape dataset IDs take in search output.
func isCanonicalUUID(s string) bool {
	u, err := uuid.Parse(s)
	return err == nil && u.String() == s
}

// stderrTail extracts the last few stderr lines from an *exec.ExitError
// so failures surface the CLI's own diagnostics.
func stderrTail(err error) string {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || len(exitErr.Stderr) == 0 {
		return ""
	}
	lines := strings.Split(strings.TrimSpace(string(exitErr.Stderr)), "\n")
	const keep = 5
	if len(lines) > keep {
		lines = lines[len(lines)-keep:]
	}
	return ": " + strings.Join(lines, " / ")
}
