package ui

import "github.com/chelyabinsk/renamer/rename"

// TUI message types bridging the core event stream into bubbletea

// ProgressMsg is delivered once per copied file.
type ProgressMsg rename.Progress

// DoneMsg carries the terminal result of the operation.
type DoneMsg rename.Done
