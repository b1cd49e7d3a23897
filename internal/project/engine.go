package project

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bugsniff/bugsniff/internal/analyze"
	"github.com/bugsniff/bugsniff/internal/cache"
	"github.com/bugsniff/bugsniff/internal/ignore"
	"github.com/bugsniff/bugsniff/internal/rules"
	"github.com/bugsniff/bugsniff/internal/types"
)

// IgnoreFileName is the per-repo ignore file consulted during walks.
const IgnoreFileName = ".bugsniffignore"

// Config controls scanning behavior including scope, performance, and
// the detection tuning.
type Config struct {
	Root            string
	IncludeGlobs    string
	ExcludeGlobs    string
	Extensions      string // comma-separated; empty uses the default set
	MaxBytes        int64
	Threads         int
	NoCache         bool
	DefaultExcludes bool
	Tuning          *analyze.Tuning // nil uses analyze.DefaultTuning
	Progress        func()          // called once per completed file; must be goroutine-safe
}

// FileResult pairs a path with its full per-blob result, for consumers
// that need the findings themselves rather than the summary counts.
type FileResult struct {
	Path   string
	Result types.Result
}

// Result contains the project summary and basic scan statistics.
// PerFile carries full results in the same order as Summary.Files.
type Result struct {
	Summary      types.ProjectSummary
	PerFile      []FileResult
	FilesScanned int
	Duration     time.Duration
}

// Scan runs a project scan and returns only the summary.
func Scan(cfg Config) (types.ProjectSummary, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return types.ProjectSummary{}, err
	}
	return res.Summary, nil
}

// outcome is one file's slot in the indexed result set. Slots keep the
// final per-file order equal to input order regardless of which worker
// finishes first.
type outcome struct {
	res     types.Result
	skipped bool
	hash    string
	cached  bool
}

// ScanWithStats walks cfg.Root, analyzes every eligible file across a
// bounded worker pool, and folds the per-file results into a
// ProjectSummary. Unreadable files are recorded as skipped and never
// abort the scan.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result
	started := time.Now()

	tuning := analyze.DefaultTuning()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
	}
	analyzer := analyze.New(rules.Default(), tuning)

	ign, _ := ignore.Load(filepath.Join(cfg.Root, IgnoreFileName))
	targets, err := listTargets(cfg, ign)
	if err != nil {
		return result, err
	}

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]cache.Entry{}
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]outcome, len(targets))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(threads)
	for i, rel := range targets {
		i, rel := i, rel
		g.Go(func() error {
			defer func() {
				if cfg.Progress != nil {
					cfg.Progress()
				}
			}()
			data, err := os.ReadFile(filepath.Join(cfg.Root, rel))
			if err != nil {
				outcomes[i] = outcome{skipped: true}
				return nil
			}
			if looksBinary(data) {
				outcomes[i] = outcome{skipped: true}
				return nil
			}
			h := cache.Hash(data)
			if !cfg.NoCache {
				if e, ok := db.Entries[rel]; ok && e.Hash == h {
					outcomes[i] = outcome{res: e.Result, hash: h, cached: true}
					return nil
				}
			}
			res, err := analyzer.Analyze(data)
			if err != nil {
				outcomes[i] = outcome{skipped: true}
				return nil
			}
			outcomes[i] = outcome{res: res, hash: h}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	agg := NewAggregator()
	dirty := false
	for i, rel := range targets {
		o := outcomes[i]
		if o.skipped {
			agg.Skip(rel)
			continue
		}
		agg.Fold(rel, o.res)
		result.PerFile = append(result.PerFile, FileResult{Path: rel, Result: o.res})
		result.FilesScanned++
		if !cfg.NoCache && !o.cached {
			db.Entries[rel] = cache.Entry{Hash: o.hash, Result: o.res}
			dirty = true
		}
	}
	result.Summary = agg.Summary()
	result.Duration = time.Since(started)
	if dirty {
		_ = cache.Save(cfg.Root, db)
	}
	return result, nil
}

// FoldResults aggregates already-computed per-file results in the order
// given. It backs callers that obtain blobs themselves instead of
// walking a tree. paths and results must be the same length.
func FoldResults(paths []string, results []types.Result) types.ProjectSummary {
	agg := NewAggregator()
	for i := range results {
		agg.Fold(paths[i], results[i])
	}
	return agg.Summary()
}
