package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestPrepareFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "logs", "nested", "ptr.log")

	if err := PrepareFile(filePath); err != nil {
		t.Fatalf("PrepareFile failed: %v", err)
	}

	if info, err := os.Stat(filepath.Dir(filePath)); err != nil || !info.IsDir() {
		t.Fatalf("Parent directory was not created for %s", filePath)
	}
}

func TestPrepareFile_ParentIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := PrepareFile(filepath.Join(blocker, "sub", "ptr.log")); err == nil {
		t.Error("Expected error when parent path is a file")
	}
}

func TestCreateDirectoryIfNotExists_ParentIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := CreateDirectoryIfNotExists(filepath.Join(blocker, "sub")); err == nil {
		t.Error("Expected error when a path component is a file")
	}

	// an existing file is not a directory either
	if err := CreateDirectoryIfNotExists(blocker); err == nil {
		t.Error("Expected error when the path itself is a file")
	}
}

func TestStateDir(t *testing.T) {
	dir := StateDir()

	if !IsAndroid() && !strings.HasPrefix(dir, xdg.StateHome) {
		t.Errorf("Expected state dir under %s, got %s", xdg.StateHome, dir)
	}

	if dir == "" {
		t.Fatal("State dir should not be empty")
	}
	if !strings.HasSuffix(dir, StateDirName) {
		t.Errorf("Expected state dir to end with %s, got %s", StateDirName, dir)
	}
}
