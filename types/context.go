package types

import (
	"github.com/spf13/afero"

	"github.com/chelyabinsk/renamer/config"
)

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to commands.
// Fs is the filesystem all commands operate on; tests substitute a memory
// filesystem here.
type AppContext struct {
	Version string
	Fs      afero.Fs
	Config  *config.Config
}
