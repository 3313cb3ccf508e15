package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultGamesDir is where self-play games are kept unless -db says
// otherwise. Linux honours XDG_DATA_HOME; other systems use the user config
// dir (Application Support on macOS, AppData\Roaming on Windows).
func DefaultGamesDir() (string, error) {
	base, err := dataHome()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "greedychess", "games")
	return dir, os.MkdirAll(dir, 0755)
}

func dataHome() (string, error) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return os.UserConfigDir()
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}
