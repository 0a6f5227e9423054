package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/chelyabinsk/renamer/cmd"
	"github.com/chelyabinsk/renamer/config"
	"github.com/chelyabinsk/renamer/logger"
	"github.com/chelyabinsk/renamer/types"
)

var Version = "dev"

type CLI struct {
	Rename  cmd.RenameCmd  `cmd:"" help:"Copy files into a new directory with zero-padded sequence numbers"`
	Preview cmd.PreviewCmd `cmd:"" help:"Show the rename plan without copying anything"`
	Verify  cmd.VerifyCmd  `cmd:"" help:"Compare checksums of source files against their copies"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level)

	appCtx := &types.AppContext{
		Version: Version,
		Fs:      afero.NewOsFs(),
		Config:  cfg,
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("renamer"),
		kong.Description("Batch-renames files into sequence-numbered copies, ordered the way a human reads numbers."),
	)
	err = ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}
