package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"github.com/chelyabinsk/renamer/logger"
	"github.com/chelyabinsk/renamer/rename"
	"github.com/chelyabinsk/renamer/types"
	"github.com/chelyabinsk/renamer/ui"
	"github.com/chelyabinsk/renamer/utils"
)

// RenameCmd copies every matching file from the input directory into the
// output directory under a zero-padded sequence number, in natural order.
// Source files are left untouched.
type RenameCmd struct {
	Input  string `arg:"" name:"input" help:"Directory to read files from" type:"existingdir"`
	Output string `arg:"" name:"output" help:"Directory to copy renamed files into" type:"path"`

	Extension       string `short:"e" help:"File extension to match, case-insensitive (leading dot optional)"`
	Padding         int    `short:"p" help:"Zero-padding width for sequence numbers (0 = use config / auto)" default:"0"`
	IncludeOriginal *bool  `negatable:"" help:"Keep the original file name after the sequence number"`
	TUI             bool   `help:"Show the interactive progress display"`
}

func (cmd *RenameCmd) Run(appCtx *types.AppContext) error {
	cfg, err := buildConfig(appCtx, cmd.Input, cmd.Output, cmd.Extension, cmd.Padding, cmd.IncludeOriginal)
	if err != nil {
		return err
	}

	if utils.IsNetworkDrive(cmd.Input) || utils.IsNetworkDrive(cmd.Output) {
		fmt.Printf("⚠️  Network drive detected, copying may be slow\n")
	}

	// Interrupt stops the operation before the next file, never mid-copy.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cmd.TUI {
		return cmd.runWithTUI(ctx, appCtx.Fs, cfg, appCtx.Version)
	}
	return cmd.runPlain(ctx, appCtx.Fs, cfg, appCtx.Version)
}

// runPlain consumes the event stream with a simple progress bar.
func (cmd *RenameCmd) runPlain(ctx context.Context, fsys afero.Fs, cfg rename.Config, version string) error {
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Renamer %s", version)))

	var bar *progressbar.ProgressBar
	for ev := range rename.Execute(ctx, fsys, cfg) {
		switch ev := ev.(type) {
		case rename.Progress:
			if bar == nil {
				bar = progressbar.Default(int64(ev.Total), "Copying")
			}
			_ = bar.Set(ev.Completed)

		case rename.Done:
			if ev.Err != nil {
				fmt.Printf("\n%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %v", ev.Err)))
				return ev.Err
			}
			fmt.Printf("\n%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Copied %d files to %s", len(ev.Paths), cfg.OutputDir)))
		}
	}
	return nil
}

// runWithTUI computes the plan up front for the file list, then hands the
// event stream to the bubbletea model. The model gets the cancel func so the
// quit keys stop the executor; the stream is always drained to its terminal
// event, so an aborted run never reads as a success.
func (cmd *RenameCmd) runWithTUI(ctx context.Context, fsys afero.Fs, cfg rename.Config, version string) error {
	files, err := rename.Enumerate(fsys, cfg.InputDir, cfg.Extension)
	if err != nil {
		return err
	}
	plan := rename.Plan(cfg, files)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := rename.Execute(ctx, fsys, cfg)
	model := ui.NewModel(plan, events, cancel, version)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		cancel()
		drainEvents(events)
		return fmt.Errorf("progress display failed: %w", err)
	}

	result := finishResult(final.(ui.Model), cancel, events)
	if result.Err != nil {
		fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %v", result.Err)))
		return result.Err
	}
	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Copied %d files to %s", len(result.Paths), cfg.OutputDir)))
	return nil
}

// finishResult resolves the terminal result of a TUI run. A model that never
// saw the terminal event was quit mid-operation: stop the executor, drain the
// stream so its goroutine exits, and report the run as cancelled rather than
// successful.
func finishResult(m ui.Model, cancel context.CancelFunc, events <-chan rename.Event) rename.Done {
	if m.Finished() {
		return m.Result()
	}

	cancel()
	result := drainEvents(events)
	if result.Err == nil {
		result.Err = context.Canceled
	}
	return result
}

// drainEvents consumes the stream to its end and returns the terminal event.
func drainEvents(events <-chan rename.Event) rename.Done {
	var result rename.Done
	for ev := range events {
		if done, ok := ev.(rename.Done); ok {
			result = done
		}
	}
	return result
}

// buildConfig merges command flags with config-file defaults into one
// operation config. An explicit --padding disables auto-padding; an explicit
// --include-original / --no-include-original overrides the config file.
func buildConfig(appCtx *types.AppContext, input, output, extension string, padding int, includeOriginal *bool) (rename.Config, error) {
	auto := false
	if padding <= 0 {
		padding = rename.DefaultPadding
		auto = true
	}
	include := includeOriginal != nil && *includeOriginal
	if appCtx != nil && appCtx.Config != nil {
		defaults := appCtx.Config.Defaults
		if extension == "" {
			extension = defaults.Extension
		}
		if auto {
			padding = defaults.Padding
			auto = defaults.AutoPadding
		}
		if includeOriginal == nil {
			include = defaults.IncludeOriginalName
		}
	}
	if extension == "" {
		return rename.Config{}, fmt.Errorf("no extension given: pass --extension or set defaults.extension in .renamer.yaml")
	}

	cfg := rename.Config{
		InputDir:            input,
		OutputDir:           output,
		Extension:           extension,
		PaddingWidth:        padding,
		AutoPadding:         auto,
		IncludeOriginalName: include,
	}
	logger.Get().Debug().
		Str("extension", cfg.Extension).
		Int("padding", cfg.PaddingWidth).
		Bool("auto_padding", cfg.AutoPadding).
		Bool("include_original", cfg.IncludeOriginalName).
		Msg("resolved operation config")
	return cfg, nil
}
