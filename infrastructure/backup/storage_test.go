package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewManager_CreatesBaseDir(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "configs")

	manager, err := NewManager(baseDir)
	if err != nil {
		t.Fatalf("NewManager() returned error: %v", err)
	}
	if manager.BaseDir != baseDir {
		t.Errorf("unexpected base dir: %q", manager.BaseDir)
	}
	if _, err := os.Stat(baseDir); err != nil {
		t.Errorf("expected base dir to exist: %v", err)
	}
}

func TestSaveAndList(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager() returned error: %v", err)
	}

	path, err := manager.Save("10.0.0.1", "running", "# Configuration\ncreate vlan default tag 1\n")
	if err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "running-") || !strings.HasSuffix(path, ".cfg") {
		t.Errorf("unexpected snapshot path: %q", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if !strings.Contains(string(content), "create vlan") {
		t.Errorf("unexpected snapshot content: %q", content)
	}

	names, err := manager.List("10.0.0.1")
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(names))
	}
}

func TestSave_RequiresDeviceName(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager() returned error: %v", err)
	}

	if _, err := manager.Save("", "running", "content"); err == nil {
		t.Fatal("expected error for empty device name")
	}
}

func TestList_UnknownDevice(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager() returned error: %v", err)
	}

	names, err := manager.List("10.0.0.99")
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if names != nil {
		t.Errorf("expected no snapshots, got %v", names)
	}
}

func TestPrune(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager() returned error: %v", err)
	}

	// Write snapshots directly so the names sort deterministically
	deviceDir := filepath.Join(manager.BaseDir, "10.0.0.1")
	if err := os.MkdirAll(deviceDir, 0755); err != nil {
		t.Fatalf("failed to create device dir: %v", err)
	}
	for _, name := range []string{
		"running-20240101-000000.cfg",
		"running-20240102-000000.cfg",
		"running-20240103-000000.cfg",
		"candidate-20240101-000000.cfg",
	} {
		if err := os.WriteFile(filepath.Join(deviceDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}
	}

	if err := manager.Prune("10.0.0.1", 2); err != nil {
		t.Fatalf("Prune() returned error: %v", err)
	}

	names, err := manager.List("10.0.0.1")
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 snapshots after prune, got %d: %v", len(names), names)
	}
	for _, name := range names {
		if name == "running-20240101-000000.cfg" {
			t.Error("expected oldest running snapshot to be pruned")
		}
	}
}

func TestPrune_InvalidKeep(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager() returned error: %v", err)
	}

	if err := manager.Prune("10.0.0.1", 0); err == nil {
		t.Fatal("expected error for keep < 1")
	}
}
