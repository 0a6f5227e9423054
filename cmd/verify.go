package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/chelyabinsk/renamer/rename"
	"github.com/chelyabinsk/renamer/types"
	"github.com/chelyabinsk/renamer/ui"
)

// VerifyCmd checks a completed rename run by recomputing the plan and
// comparing CRC32 checksums of each source file against its copy in the
// output directory. Use the same flags the rename run used, otherwise the
// recomputed plan will not match.
type VerifyCmd struct {
	Input  string `arg:"" name:"input" help:"Original input directory" type:"existingdir"`
	Output string `arg:"" name:"output" help:"Output directory of the rename run" type:"existingdir"`

	Extension       string `short:"e" help:"File extension to match, case-insensitive (leading dot optional)"`
	Padding         int    `short:"p" help:"Zero-padding width used by the rename run (0 = use config / auto)" default:"0"`
	IncludeOriginal *bool  `negatable:"" help:"Whether the rename run kept the original file names"`
}

func (cmd *VerifyCmd) Run(appCtx *types.AppContext) error {
	cfg, err := buildConfig(appCtx, cmd.Input, cmd.Output, cmd.Extension, cmd.Padding, cmd.IncludeOriginal)
	if err != nil {
		return err
	}

	files, err := rename.Enumerate(appCtx.Fs, cfg.InputDir, cfg.Extension)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return rename.ErrNoFiles
	}

	plan := rename.Plan(cfg, files)
	fmt.Println(ui.InfoStyle.Render(fmt.Sprintf("Verifying %d files...", len(plan))))

	var verified, failed int
	for _, pf := range plan {
		dest := filepath.Join(cfg.OutputDir, pf.NewName)

		srcSum, err := rename.Checksum(appCtx.Fs, pf.Source)
		if err != nil {
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error reading %s: %v", pf.Source, err)))
			failed++
			continue
		}

		destSum, err := rename.Checksum(appCtx.Fs, dest)
		if err != nil {
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Missing or unreadable copy %s: %v", dest, err)))
			failed++
			continue
		}

		if srcSum == destSum {
			fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %s", pf.NewName)))
			verified++
		} else {
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %s (expected: %08X, got: %08X)", pf.NewName, srcSum, destSum)))
			failed++
		}
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("✅ Verified: %d, ❌ Failed: %d", verified, failed)))
	if failed > 0 {
		return fmt.Errorf("%d of %d copies failed verification", failed, len(plan))
	}
	return nil
}
