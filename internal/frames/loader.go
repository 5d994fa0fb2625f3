package frames

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/banshee-data/orientation.report/internal/fsutil"
	"github.com/banshee-data/orientation.report/internal/monitoring"
)

// framePattern matches the per-frame candidate tables written by an
// evaluation run.
const framePattern = "frame_*_results.csv"

// solutionFile is the single per-run results table with one row per frame.
const solutionFile = "results.csv"

// LoadFrameTable reads every frame_*_results.csv under dir, in sorted name
// order, and concatenates the rows into one candidate table. Row order is
// deterministic: file name order, then row order within each file.
func LoadFrameTable(fsys fsutil.FileSystem, dir string) ([]FrameRecord, error) {
	paths, err := fsys.Glob(filepath.Join(dir, framePattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s files under %s", framePattern, dir)
	}
	sort.Strings(paths)

	var records []FrameRecord
	for _, p := range paths {
		data, err := fsys.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		recs, err := ReadFrameRecords(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		records = append(records, recs...)
	}

	monitoring.Logf("loaded %d candidate rows from %d files under %s", len(records), len(paths), dir)
	return records, nil
}

// LoadSolutionTable reads the run's results.csv from dir.
func LoadSolutionTable(fsys fsutil.FileSystem, dir string) ([]SolutionRecord, error) {
	return LoadSolutionFile(fsys, filepath.Join(dir, solutionFile))
}

// LoadSolutionFile reads a per-frame results table from an explicit path.
func LoadSolutionFile(fsys fsutil.FileSystem, path string) ([]SolutionRecord, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	recs, err := ReadSolutionRecords(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return recs, nil
}
