// Package cli implements the builder command-line interface.
//
// Every command opens the page database described by the TOML config,
// runs one operation through the canvas service and prints the result.
// The serve command exposes the same operations over MCP on stdio.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr so that stdout stays clean for JSON output and the MCP protocol.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"slidebuilder/internal/app"
	"slidebuilder/internal/config"
	"slidebuilder/internal/service"
)

const appName = "slidebuilder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
	jsonOut    bool
}

// New creates a CLI writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Config: config.Default()}
}

// Execute runs the builder CLI with the given arguments.
func Execute(ctx context.Context, version string, args []string) error {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand(version)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "builder",
		Short:         "Arrange items on slide pages",
		Long:          `builder stores pages of positioned items and runs the arrangement engine on them: z-order moves, fit-to-page, snapping guides and menu placement.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", defaultConfigPath(), "path to the TOML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(c.serveCommand(version))
	root.AddCommand(c.pageCommand())
	root.AddCommand(c.itemCommand())
	root.AddCommand(c.menuCommand())
	root.AddCommand(c.guidesCommand())
	root.AddCommand(c.watchCommand())

	return root
}

// setup loads the config and configures the logger before any command runs.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, _ := log.ParseLevel(cfg.LogLevel)
	if c.verbose {
		level = LogDebug
	}
	c.Logger.SetLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "path", c.configPath, "data_dir", cfg.DataDir)
	return nil
}

// open builds an App from the loaded config.
func (c *CLI) open(emitter service.EventEmitter) (*app.App, error) {
	return app.Open(c.Config, emitter, c.Logger)
}

// defaultConfigPath returns ~/.config/slidebuilder/config.toml, honoring
// XDG_CONFIG_HOME.
func defaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
