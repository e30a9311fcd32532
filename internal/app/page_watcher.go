package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"slidebuilder/internal/service"
	"slidebuilder/internal/storage"
)

// EventPageChanged is emitted when a watched page changes, whichever process
// wrote it.
const EventPageChanged = "canvas:page-changed"

// pageWatcher polls the database for changes to a set of pages so that
// edits made by another process sharing the database (an MCP server, a
// second CLI) become visible as events.
type pageWatcher struct {
	app      *App
	emitter  service.EventEmitter
	interval time.Duration

	mu   sync.Mutex
	last map[string]string // page ID -> fingerprint
}

// WatchPages starts polling the given pages every interval and emits
// EventPageChanged for each one whose fingerprint moves. It returns once
// the first snapshot is taken and stops when ctx is cancelled.
func (a *App) WatchPages(ctx context.Context, pageIDs []string, interval time.Duration, emitter service.EventEmitter) error {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	w := &pageWatcher{app: a, emitter: emitter, interval: interval, last: map[string]string{}}
	for _, id := range pageIDs {
		fp, err := a.pages.Fingerprint(id)
		if err != nil {
			return err
		}
		w.last[id] = fp
	}
	go w.pollLoop(ctx)
	return nil
}

func (w *pageWatcher) pollLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *pageWatcher) check(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, prev := range w.last {
		fp, err := w.app.pages.Fingerprint(id)
		if errors.Is(err, storage.ErrNotFound) {
			delete(w.last, id)
			w.emitter.Emit(ctx, EventPageChanged, map[string]string{"pageId": id})
			continue
		}
		if err != nil {
			w.app.logger.Warn("page watch failed", "page", id, "err", err)
			continue
		}
		if fp == prev {
			continue
		}
		w.last[id] = fp
		w.emitter.Emit(ctx, EventPageChanged, map[string]string{"pageId": id})
	}
}
