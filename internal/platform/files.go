package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// StateDirName is the directory created under the user cache directory
const StateDirName = "pulltorefresh"

// IsAndroid reports whether the process runs on Android, including Fyne
// builds that report linux
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist. It fails
// when a path component exists and is not a directory.
func CreateDirectoryIfNotExists(dirPath string) error {
	return os.MkdirAll(dirPath, DefaultDirPermissions)
}

// StateDir returns the per-user directory for logs and recorded traces:
// the XDG state home, or the temp directory on Android.
func StateDir() string {
	if IsAndroid() || xdg.StateHome == "" {
		return filepath.Join(os.TempDir(), StateDirName)
	}
	return filepath.Join(xdg.StateHome, StateDirName)
}

// PrepareFile makes sure the parent directory of filePath exists
func PrepareFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
