package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "classifiles"

	// ConfigFileName is looked up in the working directory first
	ConfigFileName = "config.yaml"

	// LogFileName is the append-only log written next to console output
	LogFileName = "classifiles.log"

	// EnvConfigDir overrides the XDG config directory
	EnvConfigDir = "CLASSIFILES_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory
	EnvStateDir = "CLASSIFILES_STATE_DIR"

	// DefaultMimeInfoDBRoot is used when no XDG data directory holds a mime database
	DefaultMimeInfoDBRoot = "/usr/share/mime"

	// DefaultMagicDBFile is the usual location of the compiled libmagic database
	DefaultMagicDBFile = "/usr/share/file/misc/magic.mgc"
)

// ConfigDir returns the directory searched for config.yaml after the working directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding the log file.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ConfigCandidates lists the config file locations in lookup order.
func ConfigCandidates() []string {
	return []string{
		ConfigFileName,
		filepath.Join(ConfigDir(), ConfigFileName),
	}
}

// FindMimeInfoDB returns the first "mime" directory under the XDG data
// directories, falling back to DefaultMimeInfoDBRoot.
func FindMimeInfoDB() string {
	for _, dataDir := range xdg.DataDirs {
		candidate := filepath.Join(dataDir, "mime")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return DefaultMimeInfoDBRoot
}
