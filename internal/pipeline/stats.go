package pipeline

// RenameResult records the outcome for one dataset, including datasets no
// rule matched, so the preview covers the whole batch.
type RenameResult struct {
	DatasetID string
	OldName   string
	NewName   string
	Applied   bool
	Err       error
}

// Changed reports whether the computed name differs from the current one.
func (r *RenameResult) Changed() bool {
	return r.Err == nil && r.NewName != r.OldName
}

// RunStats tracks aggregate counters across a rename run.
type RunStats struct {
	Found     int // Unique datasets returned by the search phase.
	Current   int // 1-based index of the dataset being processed.
	Planned   int // Datasets whose name would change.
	Renamed   int // Updates persisted (always 0 in dry-run).
	Unchanged int // Datasets no rule changed.
	Failed    int // Describe or update failures.
}
