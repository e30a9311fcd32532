// Package config loads the builder's TOML configuration and watches it for
// changes.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Config is the on-disk configuration.
type Config struct {
	DataDir       string   `toml:"data_dir"`
	SnapTolerance float64  `toml:"snap_tolerance"`
	GridSize      float64  `toml:"grid_size"`
	LogLevel      string   `toml:"log_level"`
	Viewport      Viewport `toml:"viewport"`
}

// Viewport is the screen area floating menus must stay inside.
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	dataDir := ".slidebuilder"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".local", "share", "slidebuilder")
	}
	return Config{
		DataDir:       dataDir,
		SnapTolerance: 5,
		GridSize:      10,
		LogLevel:      "info",
		Viewport:      Viewport{Width: 1440, Height: 900},
	}
}

// DBPath is where the SQLite database lives.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "builder.db")
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SnapTolerance < 0 {
		return fmt.Errorf("snap_tolerance must not be negative, got %v", c.SnapTolerance)
	}
	if c.GridSize < 0 {
		return fmt.Errorf("grid_size must not be negative, got %v", c.GridSize)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must have a positive size, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Watch reloads path whenever it is written and passes the new config to
// onChange. Bursts of writes are coalesced. Watch returns once the watcher
// is running; it stops when ctx is cancelled.
func Watch(ctx context.Context, path string, logger *log.Logger, onChange func(Config)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch config: %w", err)
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if name, _ := filepath.Abs(event.Name); name != absPath {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(500*time.Millisecond, func() {
					cfg, err := Load(absPath)
					if err != nil {
						logger.Warn("config reload failed", "path", absPath, "err", err)
						return
					}
					logger.Info("config reloaded", "path", absPath)
					onChange(cfg)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "err", err)
			}
		}
	}()
	return nil
}
