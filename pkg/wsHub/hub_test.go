package ws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
)

func newTestHub() *ConnectionHub {
	return NewConnHub(logger.InitLogger("hub-test", logger.LevelError))
}

func TestDeleteConnRemovesOwnConnection(t *testing.T) {
	hub := newTestHub()

	conn := NewConn(context.Background(), "dev-1", nil)
	if err := hub.Add(conn); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := hub.DeleteConn(conn); err != nil {
		t.Fatalf("DeleteConn: %v", err)
	}
	if _, err := hub.GetConn("dev-1"); !errors.Is(err, ErrConnIsNotFound) {
		t.Fatalf("expected ErrConnIsNotFound after delete, got %v", err)
	}
}

func TestStaleDeleteKeepsReplacementAlive(t *testing.T) {
	hub := newTestHub()

	old := NewConn(context.Background(), "dev-1", nil)
	if err := hub.Add(old); err != nil {
		t.Fatalf("Add old: %v", err)
	}

	replacement := NewConn(context.Background(), "dev-1", nil)
	if err := hub.Add(replacement); err != nil {
		t.Fatalf("Add replacement: %v", err)
	}

	// the replaced handler tears down on its way out; the replacement's
	// registration must survive it
	if err := hub.DeleteConn(old); !errors.Is(err, ErrConnIsNotFound) {
		t.Fatalf("stale DeleteConn: expected ErrConnIsNotFound, got %v", err)
	}

	got, err := hub.GetConn("dev-1")
	if err != nil {
		t.Fatalf("GetConn after stale delete: %v", err)
	}
	if got != replacement {
		t.Fatal("replacement connection was removed by the stale handler")
	}
}

func TestCloseReturnsAfterReconnect(t *testing.T) {
	hub := newTestHub()

	old := NewConn(context.Background(), "dev-1", nil)
	if err := hub.Add(old); err != nil {
		t.Fatalf("Add old: %v", err)
	}
	replacement := NewConn(context.Background(), "dev-1", nil)
	if err := hub.Add(replacement); err != nil {
		t.Fatalf("Add replacement: %v", err)
	}

	// both handlers exit: the stale one no-ops, the live one unregisters
	_ = hub.DeleteConn(old)
	if err := hub.DeleteConn(replacement); err != nil {
		t.Fatalf("DeleteConn replacement: %v", err)
	}

	done := make(chan struct{})
	go func() {
		hub.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub.Close did not return")
	}
}
