package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builder.toml")
	content := `
data_dir = "/tmp/builder"
snap_tolerance = 8

[viewport]
width = 1024
height = 768
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/builder" || cfg.SnapTolerance != 8 {
		t.Errorf("unexpected cfg %+v", cfg)
	}
	if cfg.Viewport != (Viewport{Width: 1024, Height: 768}) {
		t.Errorf("viewport = %+v", cfg.Viewport)
	}
	if cfg.GridSize != 10 || cfg.LogLevel != "info" {
		t.Errorf("defaults not kept: %+v", cfg)
	}
	if cfg.DBPath() != filepath.Join("/tmp/builder", "builder.db") {
		t.Errorf("DBPath = %s", cfg.DBPath())
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "snap_tolerance = ["},
		{"negative tolerance", "snap_tolerance = -1"},
		{"empty viewport", "[viewport]\nwidth = 0\nheight = 10"},
		{"bad level", `log_level = "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "builder.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builder.toml")
	if err := os.WriteFile(path, []byte("snap_tolerance = 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 4)
	if err := Watch(ctx, path, log.New(io.Discard), func(c Config) { changes <- c }); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("snap_tolerance = 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changes:
		if cfg.SnapTolerance != 9 {
			t.Errorf("reloaded tolerance = %v, want 9", cfg.SnapTolerance)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}
