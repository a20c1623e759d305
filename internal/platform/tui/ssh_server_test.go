package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/highscore"
)

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	scores, err := highscore.OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir() failed: %v", err)
	}

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")
	cfg.HighScores = scores
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if srv.store == nil {
		t.Error("run history should be open")
	}
	if _, ok := srv.scores.(*highscore.Shared); !ok {
		t.Errorf("sessions should share the high score, got %T", srv.scores)
	}
	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("host key directory missing: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}
