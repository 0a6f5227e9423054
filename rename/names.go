package rename

import (
	"fmt"
	"math"
	"path/filepath"
)

// DefaultPadding is the width used when there is nothing to estimate from.
const DefaultPadding = 3

// EstimatePadding derives a zero-padding width from a file count. The result
// is one digit wider than the strict minimum for some counts (9 files get
// width 2); this matches the historical behavior and is kept on purpose.
func EstimatePadding(totalFiles int) int {
	if totalFiles <= 0 {
		return DefaultPadding
	}
	return int(math.Ceil(math.Log10(float64(totalFiles)))) + 1
}

// GenerateNames produces a destination name for each file, in input order.
// The 1-based index is left-padded with zeros to paddingWidth digits; an
// index that needs more digits is rendered in full. With includeOriginalName
// the original base name is appended after an underscore, otherwise only the
// original extension survives. Pure function, no filesystem access.
func GenerateNames(files []string, paddingWidth int, includeOriginalName bool) []string {
	names := make([]string, len(files))
	for i, path := range files {
		index := fmt.Sprintf("%0*d", paddingWidth, i+1)
		if includeOriginalName {
			names[i] = index + "_" + filepath.Base(path)
		} else {
			names[i] = index + filepath.Ext(path)
		}
	}
	return names
}

// PlannedFile pairs a source file with the name it will get in the output
// directory.
type PlannedFile struct {
	Source  string
	NewName string
}

// Plan computes the full rename plan for an already enumerated file list.
// Callers use it to preview an operation without touching the filesystem;
// the executor uses the same function, so preview and execution always agree.
func Plan(cfg Config, files []string) []PlannedFile {
	names := GenerateNames(files, cfg.EffectiveWidth(len(files)), cfg.IncludeOriginalName)
	plan := make([]PlannedFile, len(files))
	for i := range files {
		plan[i] = PlannedFile{Source: files[i], NewName: names[i]}
	}
	return plan
}
