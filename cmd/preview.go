package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/chelyabinsk/renamer/rename"
	"github.com/chelyabinsk/renamer/types"
	"github.com/chelyabinsk/renamer/ui"
)

// PreviewCmd prints the rename plan without copying anything. Running the
// same flags with the rename command produces exactly these names.
type PreviewCmd struct {
	Input string `arg:"" name:"input" help:"Directory to read files from" type:"existingdir"`

	Extension       string `short:"e" help:"File extension to match, case-insensitive (leading dot optional)"`
	Padding         int    `short:"p" help:"Zero-padding width for sequence numbers (0 = use config / auto)" default:"0"`
	IncludeOriginal *bool  `negatable:"" help:"Keep the original file name after the sequence number"`
}

func (cmd *PreviewCmd) Run(appCtx *types.AppContext) error {
	cfg, err := buildConfig(appCtx, cmd.Input, "", cmd.Extension, cmd.Padding, cmd.IncludeOriginal)
	if err != nil {
		return err
	}

	files, err := rename.Enumerate(appCtx.Fs, cfg.InputDir, cfg.Extension)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(ui.InfoStyle.Render(rename.ErrNoFiles.Error()))
		return nil
	}

	plan := rename.Plan(cfg, files)
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Plan for %d files (padding width %d):", len(plan), cfg.EffectiveWidth(len(plan)))))
	for _, pf := range plan {
		fmt.Printf("  %s %s %s\n", filepath.Base(pf.Source), ui.ArrowStyle.Render("→"), pf.NewName)
	}
	return nil
}
