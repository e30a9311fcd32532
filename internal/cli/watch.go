package cli

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// eventPrinter writes each emitted event to w as one JSON line.
type eventPrinter struct {
	mu     sync.Mutex
	enc    *json.Encoder
	logger *log.Logger
}

func newEventPrinter(w io.Writer, logger *log.Logger) *eventPrinter {
	return &eventPrinter{enc: json.NewEncoder(w), logger: logger}
}

func (p *eventPrinter) Emit(_ context.Context, event string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.enc.Encode(map[string]any{
		"event": event,
		"data":  data,
		"at":    time.Now().Format(time.RFC3339),
	})
	if err != nil {
		p.logger.Warn("write event failed", "event", event, "err", err)
	}
}

// watchCommand prints a JSON line whenever one of the given pages changes,
// for example while an MCP client edits them through serve.
func (c *CLI) watchCommand() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch <page-id>...",
		Short: "Print page change events until interrupted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := c.open(nil)
			if err != nil {
				return err
			}
			defer a.Close()

			logger := loggerFromContext(ctx)
			if err := a.WatchPages(ctx, args, interval, newEventPrinter(cmd.OutOrStdout(), logger)); err != nil {
				return err
			}
			logger.Info("watching pages", "count", len(args), "interval", interval)
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "poll interval")
	return cmd
}
