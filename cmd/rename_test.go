package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"

	"github.com/chelyabinsk/renamer/config"
	"github.com/chelyabinsk/renamer/rename"
	"github.com/chelyabinsk/renamer/types"
	"github.com/chelyabinsk/renamer/ui"
)

func boolPtr(b bool) *bool { return &b }

func testAppCtx() *types.AppContext {
	cfg := &config.Config{}
	cfg.Defaults.Extension = "mp3"
	cfg.Defaults.Padding = 3
	cfg.Defaults.AutoPadding = true
	return &types.AppContext{Version: "test", Config: cfg}
}

func TestBuildConfig_ExplicitPaddingDisablesAuto(t *testing.T) {
	cfg, err := buildConfig(testAppCtx(), "/in", "/out", "wav", 5, nil)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	if cfg.PaddingWidth != 5 {
		t.Errorf("PaddingWidth = %d, want 5", cfg.PaddingWidth)
	}
	if cfg.AutoPadding {
		t.Error("AutoPadding = true, want false when --padding is explicit")
	}
	if cfg.Extension != "wav" {
		t.Errorf("Extension = %q, want %q", cfg.Extension, "wav")
	}
}

func TestBuildConfig_FallsBackToFileDefaults(t *testing.T) {
	cfg, err := buildConfig(testAppCtx(), "/in", "/out", "", 0, nil)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	if cfg.Extension != "mp3" {
		t.Errorf("Extension = %q, want %q from config file", cfg.Extension, "mp3")
	}
	if !cfg.AutoPadding {
		t.Error("AutoPadding = false, want true from config file")
	}
	if cfg.PaddingWidth != 3 {
		t.Errorf("PaddingWidth = %d, want 3", cfg.PaddingWidth)
	}
}

func TestBuildConfig_MissingExtension(t *testing.T) {
	appCtx := testAppCtx()
	appCtx.Config.Defaults.Extension = ""

	if _, err := buildConfig(appCtx, "/in", "/out", "", 0, nil); err == nil {
		t.Error("buildConfig() expected an error when no extension is available")
	}
}

func TestBuildConfig_NilAppContext(t *testing.T) {
	cfg, err := buildConfig(nil, "/in", "/out", "mp3", 0, boolPtr(true))
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}

	if !cfg.AutoPadding {
		t.Error("AutoPadding = false, want true without explicit padding")
	}
	if cfg.PaddingWidth != rename.DefaultPadding {
		t.Errorf("PaddingWidth = %d, want %d", cfg.PaddingWidth, rename.DefaultPadding)
	}
	if !cfg.IncludeOriginalName {
		t.Error("IncludeOriginalName = false, want true")
	}
}

func TestBuildConfig_IncludeOriginalFromFile(t *testing.T) {
	appCtx := testAppCtx()
	appCtx.Config.Defaults.IncludeOriginalName = true

	cfg, err := buildConfig(appCtx, "/in", "/out", "mp3", 0, nil)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if !cfg.IncludeOriginalName {
		t.Error("IncludeOriginalName = false, want true from config file")
	}
}

func TestBuildConfig_NoIncludeOriginalOverridesFile(t *testing.T) {
	appCtx := testAppCtx()
	appCtx.Config.Defaults.IncludeOriginalName = true

	cfg, err := buildConfig(appCtx, "/in", "/out", "mp3", 0, boolPtr(false))
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if cfg.IncludeOriginalName {
		t.Error("IncludeOriginalName = true, want false when --no-include-original is explicit")
	}
}

func TestFinishResult_FinishedModelKeepsResult(t *testing.T) {
	events := make(chan rename.Event)
	close(events)
	m := ui.NewModel(nil, events, nil, "test")

	updated, _ := m.Update(ui.DoneMsg{Paths: []string{"/out/01.mp3", "/out/02.mp3"}})
	m = updated.(ui.Model)

	result := finishResult(m, func() {}, events)
	if result.Err != nil {
		t.Fatalf("result.Err = %v, want nil", result.Err)
	}
	if len(result.Paths) != 2 {
		t.Errorf("len(result.Paths) = %d, want 2", len(result.Paths))
	}
}

func TestFinishResult_QuitMidRunIsNotSuccess(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, name := range []string{"/in/a.mp3", "/in/b.mp3"} {
		if err := afero.WriteFile(fsys, name, []byte("test content"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}

	cfg := rename.Config{InputDir: "/in", OutputDir: "/out", Extension: "mp3", AutoPadding: true}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The model never consumes an event, as if the user quit immediately.
	events := rename.Execute(ctx, fsys, cfg)
	m := ui.NewModel(rename.Plan(cfg, []string{"/in/a.mp3", "/in/b.mp3"}), events, cancel, "test")

	result := finishResult(m, cancel, events)
	if result.Err == nil {
		t.Fatal("result.Err = nil; a quit mid-run must never be reported as success")
	}
	if !errors.Is(result.Err, context.Canceled) {
		t.Errorf("result.Err = %v, want context.Canceled", result.Err)
	}
}

func TestRenameCmd_RunPlain(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, name := range []string{"/in/track1.mp3", "/in/track2.mp3"} {
		if err := afero.WriteFile(fsys, name, []byte("test content"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}

	appCtx := testAppCtx()
	appCtx.Fs = fsys

	cmd := &RenameCmd{
		Input:           "/in",
		Output:          "/out",
		Extension:       "mp3",
		Padding:         3,
		IncludeOriginal: boolPtr(true),
	}
	if err := cmd.Run(appCtx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, name := range []string{"/out/001_track1.mp3", "/out/002_track2.mp3"} {
		exists, _ := afero.Exists(fsys, name)
		if !exists {
			t.Errorf("destination %s does not exist", name)
		}
	}
}
