// Package app wires storage, services and configuration into a running
// builder process. The CLI creates one App per invocation.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"slidebuilder/internal/config"
	"slidebuilder/internal/domain"
	mcpserver "slidebuilder/internal/mcp"
	"slidebuilder/internal/service"
	"slidebuilder/internal/storage"
)

// App owns the database and the services built on it.
type App struct {
	db     *storage.DB
	pages  *storage.PageStore
	logger *log.Logger
	mcp    *mcpserver.Server

	Canvas *service.CanvasService
}

// Open creates the data directory if needed, opens the database and builds
// the canvas service from cfg.
func Open(cfg config.Config, emitter service.EventEmitter, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Default()
	}
	if emitter == nil {
		emitter = service.NoopEmitter{}
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	dbPath := cfg.DBPath()
	db, err := storage.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", filepath.Base(dbPath), err)
	}
	logger.Debug("database opened", "path", dbPath)

	a := &App{
		db:     db,
		pages:  storage.NewPageStore(db),
		logger: logger,
	}
	a.Canvas = service.NewCanvasService(a.pages, storage.NewItemStore(db), emitter, logger, Options(cfg))
	return a, nil
}

// Options translates the on-disk config into canvas service options.
func Options(cfg config.Config) service.Options {
	return service.Options{
		SnapTolerance: cfg.SnapTolerance,
		GridSize:      cfg.GridSize,
		Viewport:      domain.Bounds{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height},
	}
}

// MCPServer builds the MCP server over the canvas service. Config reloads
// reach it through ApplyConfig.
func (a *App) MCPServer(version string) *mcpserver.Server {
	a.mcp = mcpserver.New(mcpserver.Deps{Canvas: a.Canvas, Logger: a.logger, Version: version})
	return a.mcp
}

// ApplyConfig pushes a reloaded config into the running services. The data
// directory is fixed for the lifetime of the App.
//
// Prefixed loggers keep their own copy of the level, so the new level is
// set on each of them.
func (a *App) ApplyConfig(cfg config.Config) {
	a.Canvas.SetOptions(Options(cfg))
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return
	}
	a.logger.SetLevel(lvl)
	a.Canvas.SetLogLevel(lvl)
	if a.mcp != nil {
		a.mcp.SetLogLevel(lvl)
	}
}

// Close releases the database.
func (a *App) Close() error {
	return a.db.Close()
}
