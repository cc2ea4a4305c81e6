package tuning

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWatcherReportsTuningEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("gravity: 500\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if !strings.HasSuffix(name, "tuning.yaml") {
			t.Fatalf("unexpected event for %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for a tuning file edit")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected event for %q", name)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseReleasesChannels(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// The forwarding goroutine closes both channels on exit, so a drain
	// loop keyed on channel state terminates.
	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("expected events channel closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("events channel never closed")
	}
	select {
	case _, ok := <-w.Errors:
		if ok {
			t.Fatalf("expected errors channel closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("errors channel never closed")
	}

	// Close is idempotent.
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}
