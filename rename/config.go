package rename

// Config describes one rename operation. It is supplied once per operation
// and never mutated during execution.
type Config struct {
	InputDir            string
	OutputDir           string
	Extension           string
	PaddingWidth        int
	AutoPadding         bool
	IncludeOriginalName bool
}

// Validate checks that both directories are set before an operation starts.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return ErrNoInputDir
	}
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}
	return nil
}

// EffectiveWidth resolves the padding width for a file count, applying the
// auto-padding heuristic when enabled.
func (c Config) EffectiveWidth(totalFiles int) int {
	if c.AutoPadding {
		return EstimatePadding(totalFiles)
	}
	return c.PaddingWidth
}
