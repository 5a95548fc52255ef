// Package paths resolves the configuration and data directory locations of
// the fridge CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under the platform config and data roots.
const appDirName = "fridge"

// ProjectConfigDirName is the CWD-relative config directory. When it exists
// it takes precedence over the platform default, so a checkout can carry its
// own fridge.
const ProjectConfigDirName = ".fridge"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "FRIDGE_CONFIG_DIR"
	EnvDataDir   = "FRIDGE_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/fridge (fallback ~/.config/fridge)
// macOS:   ~/Library/Application Support/fridge
// Windows: %APPDATA%/fridge
func DefaultConfigDir() (string, error) {
	return platformRoot("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/fridge (fallback ~/.local/share/fridge)
// macOS and Windows: same as DefaultConfigDir, under a data subdirectory.
func DefaultDataDir() (string, error) {
	if platformDir.goos == "linux" {
		return platformRoot("XDG_DATA_HOME", ".local", "share")
	}
	dir, err := platformRoot("XDG_DATA_HOME")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

// platformRoot returns <root>/fridge where root is $xdgEnv, or
// ~/<homeFallback...> on Linux, and os.UserConfigDir elsewhere.
func platformRoot(xdgEnv string, homeFallback ...string) (string, error) {
	if platformDir.goos != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
	if xdg := os.Getenv(xdgEnv); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, homeFallback...), appDirName)...), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > FRIDGE_CONFIG_DIR env > $(CWD)/.fridge when present >
// DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := platformDir.getwd()
	if err != nil {
		return "", err
	}
	project := filepath.Join(cwd, ProjectConfigDirName)
	if info, err := os.Stat(project); err == nil && info.IsDir() {
		return project, nil
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > FRIDGE_DATA_DIR env > DefaultDataDir().
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	for _, v := range []string{flag, configYAMLValue, os.Getenv(EnvDataDir)} {
		if v != "" {
			return filepath.Abs(v)
		}
	}
	return DefaultDataDir()
}
