package rename

import (
	"context"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/chelyabinsk/renamer/logger"
)

// Execute runs one rename operation and streams its events. The returned
// channel yields one Progress event per copied file and then a single Done
// event, after which it is closed. Files are copied strictly one at a time
// in natural order; the source files are never modified or removed.
//
// The operation is fail-fast: the first error produces a Done event and stops
// the stream, leaving already copied files in place. Cancellation via ctx is
// checked before each file's copy, never mid-copy.
func Execute(ctx context.Context, fsys afero.Fs, cfg Config) <-chan Event {
	events := make(chan Event)
	go func() {
		defer close(events)
		run(ctx, fsys, cfg, events)
	}()
	return events
}

func run(ctx context.Context, fsys afero.Fs, cfg Config, events chan<- Event) {
	if err := cfg.Validate(); err != nil {
		events <- Done{Err: err}
		return
	}

	files, err := Enumerate(fsys, cfg.InputDir, cfg.Extension)
	if err != nil {
		events <- Done{Err: err}
		return
	}

	total := len(files)
	if total == 0 {
		events <- Done{Err: ErrNoFiles}
		return
	}
	logger.Get().Debug().
		Int("files", total).
		Str("input", cfg.InputDir).
		Str("output", cfg.OutputDir).
		Msg("starting rename operation")

	if err := fsys.MkdirAll(cfg.OutputDir, 0755); err != nil {
		events <- Done{Err: &DirectoryError{Dir: cfg.OutputDir, Err: err}}
		return
	}

	plan := Plan(cfg, files)
	paths := make([]string, 0, total)

	for i, pf := range plan {
		if err := ctx.Err(); err != nil {
			events <- Done{Err: err}
			return
		}

		dest := filepath.Join(cfg.OutputDir, pf.NewName)
		if err := copyFile(fsys, pf.Source, dest); err != nil {
			events <- Done{Err: &CopyError{Source: pf.Source, Dest: dest, Err: err}}
			return
		}
		logger.Get().Debug().
			Str("source", pf.Source).
			Str("dest", dest).
			Msg("file copied")

		paths = append(paths, dest)
		events <- Progress{Completed: i + 1, Total: total}
	}

	events <- Done{Paths: paths}
}

// copyFile copies the file contents byte for byte. No metadata is preserved.
func copyFile(fsys afero.Fs, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
