package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/golddigger/internal/storage"
)

func newTestSSHServer(t *testing.T) *SSHServer {
	t.Helper()
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.DBPath = filepath.Join(dir, "runs.db")
	cfg.HostKeyPath = filepath.Join(dir, "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Fatal("expected run history to open")
	}
	return srv
}

func TestSSHServerShutdownClosesStoreLast(t *testing.T) {
	srv := newTestSSHServer(t)
	store := srv.store

	if _, err := store.SaveRun(storage.Run{Difficulty: "normal", EndReason: storage.EndQuit}); err != nil {
		t.Fatalf("SaveRun() before shutdown failed: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if srv.store != nil {
		t.Error("store should be released after shutdown")
	}
	if _, err := store.SaveRun(storage.Run{Difficulty: "normal"}); err == nil {
		t.Error("store should be closed after shutdown")
	}

	// A second shutdown is harmless
	if err := srv.Shutdown(); err != nil {
		t.Errorf("second Shutdown() failed: %v", err)
	}
}
