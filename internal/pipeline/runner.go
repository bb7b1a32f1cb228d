// Package pipeline orchestrates the rename run: search the dataset
// service, preview rule applications for every match, and, outside
// dry-run, persist the renames one by one.
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/labworks/dstools/internal/config"
	"github.com/labworks/dstools/internal/logging"
	"github.com/labworks/dstools/internal/rules"
	"github.com/labworks/dstools/internal/webauto"
)

// DatasetService is the subset of the webauto client the pipeline needs.
// Defined here (rather than importing a concrete client type) so the run
// loop is testable with a mock service.
type DatasetService interface {
	Search(ctx context.Context, keyword string) ([]string, error)
	Describe(ctx context.Context, datasetID string) (*webauto.Dataset, error)
	Update(ctx context.Context, datasetID, newName string) error
}

// Run executes the full rename flow. A search failure aborts the run
// before anything is mutated; describe and update failures are
// per-dataset and the batch continues, with failures summarized at the
// end.
func Run(ctx context.Context, cfg *config.RenameConfig, opts *config.Options, svc DatasetService, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	ruleSet, err := rules.Compile(cfg.RulesRegexp)
	if err != nil {
		// Load-time validation already compiled these; kept as a guard.
		return stats, err
	}

	ids, err := searchAll(ctx, cfg, svc, log)
	if err != nil {
		return stats, err
	}
	stats.Found = len(ids)
	log.Info("Total unique datasets found: %d", stats.Found)
	if stats.Found == 0 {
		return stats, nil
	}
	fmt.Println()

	results := preview(ctx, ids, ruleSet, svc, log, &stats)

	if opts.DryRun {
		logSummary(log, &stats, results, true)
		return stats, nil
	}

	apply(ctx, results, svc, log, &stats)
	logSummary(log, &stats, results, false)
	return stats, nil
}

// searchAll queries every keyword and returns the deduplicated union of
// dataset IDs, sorted for deterministic processing order.
func searchAll(ctx context.Context, cfg *config.RenameConfig, svc DatasetService, log *logging.Logger) ([]string, error) {
	seen := make(map[string]bool)
	for _, kw := range cfg.NameKeywords {
		log.Info("Searching datasets with keyword: %s", kw)
		ids, err := svc.Search(ctx, kw)
		if err != nil {
			return nil, fmt.Errorf("search aborted, nothing was changed: %w", err)
		}
		log.Info("  %d datasets", len(ids))
		for _, id := range ids {
			seen[id] = true
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// preview describes each dataset and computes its candidate name. Every
// dataset gets a result, including unchanged ones, so the report shows
// the whole batch.
func preview(ctx context.Context, ids []string, ruleSet *rules.Set, svc DatasetService, log *logging.Logger, stats *RunStats) []RenameResult {
	results := make([]RenameResult, 0, len(ids))
	for i, id := range ids {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		log.Info("[%d/%d] %s", stats.Current, len(ids), id)

		ds, err := svc.Describe(ctx, id)
		if err != nil {
			log.Error("  describe failed: %v", err)
			stats.Failed++
			results = append(results, RenameResult{DatasetID: id, Err: err})
			continue
		}

		newName, matched := ruleSet.Apply(ds.Name)
		res := RenameResult{DatasetID: id, OldName: ds.Name, NewName: newName}
		if res.Changed() {
			stats.Planned++
			log.Info("  %s", res.OldName)
			log.Info("  -> %s", res.NewName)
		} else {
			stats.Unchanged++
			if matched {
				log.Info("  %s (rule matched, name already correct)", res.OldName)
			} else {
				log.Info("  %s (no rule matched)", res.OldName)
			}
		}
		results = append(results, res)
	}
	return results
}

// apply persists every changed record. An individual failure is recorded
// and the batch continues.
func apply(ctx context.Context, results []RenameResult, svc DatasetService, log *logging.Logger, stats *RunStats) {
	for i := range results {
		res := &results[i]
		if !res.Changed() {
			continue
		}
		if ctx.Err() != nil {
			log.Warn("Interrupted, remaining updates skipped")
			break
		}

		if err := svc.Update(ctx, res.DatasetID, res.NewName); err != nil {
			log.Error("Update failed for %s: %v", res.DatasetID, err)
			res.Err = err
			stats.Failed++
			continue
		}
		res.Applied = true
		stats.Renamed++
		log.Success("Renamed %s -> %s", res.DatasetID, res.NewName)
	}
}

func logSummary(log *logging.Logger, stats *RunStats, results []RenameResult, dryRun bool) {
	fmt.Println()
	log.Info("==============================")
	if dryRun {
		log.Info("Done (dry run): %d would be renamed, %d unchanged, %d failed",
			stats.Planned, stats.Unchanged, stats.Failed)
	} else {
		log.Info("Done: %d renamed, %d unchanged, %d failed",
			stats.Renamed, stats.Unchanged, stats.Failed)
	}
	if stats.Failed == 0 {
		return
	}
	log.Error("Failures:")
	for _, res := range results {
		if res.Err != nil {
			log.Error("  %s: %v", res.DatasetID, res.Err)
		}
	}
}
