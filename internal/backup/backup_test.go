package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dailyhabit/internal/storage"
)

func newJSONStorePath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.json")
	s := storage.NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return path
}

func TestCreateAndList(t *testing.T) {
	path := newJSONStorePath(t)
	m := NewManager(path)

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("backup path = %q, want .json suffix for a JSON store", backupPath)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("List() len = %d, want 1", len(backups))
	}
	if backups[0].Path != backupPath {
		t.Errorf("List()[0].Path = %q, want %q", backups[0].Path, backupPath)
	}
	if backups[0].Size == 0 {
		t.Error("List()[0].Size = 0, want non-empty snapshot")
	}
}

func TestCreateMissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := m.Create(); err == nil {
		t.Error("Create() on a missing store should fail")
	}
}

func TestCreateUniqueNames(t *testing.T) {
	path := newJSONStorePath(t)
	m := NewManager(path)

	first, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first == second {
		t.Errorf("two snapshots share a path: %q", first)
	}
}

func TestListEmptyDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "store.json"))
	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("List() len = %d, want 0", len(backups))
	}
}

func TestRestore(t *testing.T) {
	path := newJSONStorePath(t)
	m := NewManager(path)

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Mutate the live store, then restore the snapshot over it.
	if err := os.WriteFile(path, []byte(`{"version":1,"users":{"x":"y"}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.Restore(backupPath); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	restored, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(restored) != string(original) {
		t.Error("restored store does not match the snapshot")
	}

	// Restore takes a safety backup of the overwritten file.
	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("List() len = %d, want safety backup plus original", len(backups))
	}
}

func TestRestoreRejectsCorrupt(t *testing.T) {
	path := newJSONStorePath(t)
	m := NewManager(path)

	bad := filepath.Join(m.BackupDir(), BackupFilePrefix+"20240101-120000.json")
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.Restore(bad); err == nil {
		t.Error("Restore() of corrupt snapshot should fail")
	}
}

func TestRotation(t *testing.T) {
	path := newJSONStorePath(t)
	m := NewManager(path)
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	// Seed more snapshots than the retention limit with distinct stamps.
	for i := 0; i < MaxBackups+3; i++ {
		name := fmt.Sprintf("%s202401%02d-120000.json", BackupFilePrefix, i+1)
		if err := os.WriteFile(filepath.Join(m.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := m.Create(); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) > MaxBackups {
		t.Errorf("List() len = %d after rotation, want at most %d", len(backups), MaxBackups)
	}
}
