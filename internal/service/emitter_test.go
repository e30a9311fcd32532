package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"slidebuilder/internal/service"
)

func TestMockEmitter_RecordsEvents(t *testing.T) {
	m := &service.MockEmitter{}
	ctx := context.Background()

	m.Emit(ctx, "test:event", map[string]string{"foo": "bar"})
	m.Emit(ctx, "test:event2", nil)

	if len(m.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(m.Events))
	}
	if m.Events[0].Event != "test:event" {
		t.Errorf("expected 'test:event', got %q", m.Events[0].Event)
	}
	if names := m.Names(); names[1] != "test:event2" {
		t.Errorf("expected 'test:event2', got %q", names[1])
	}
}

func TestNoopEmitter(t *testing.T) {
	var e service.EventEmitter = service.NoopEmitter{}
	e.Emit(context.Background(), "ignored", 1)
}

func TestLogEmitter_WritesAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	e := service.LogEmitter{Logger: logger}

	e.Emit(context.Background(), "canvas:order-changed", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing at info level, got %q", buf.String())
	}

	logger.SetLevel(log.DebugLevel)
	e.Emit(context.Background(), "canvas:order-changed", nil)
	if !strings.Contains(buf.String(), "canvas:order-changed") {
		t.Errorf("expected event name in output, got %q", buf.String())
	}
}
