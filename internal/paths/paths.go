package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// FirefoxDir returns the platform's Firefox data directory, the one that
// holds profiles.ini.
func FirefoxDir() string {
	return FirefoxDirFor(runtime.GOOS)
}

// FirefoxDirFor returns the Firefox data directory for the given GOOS.
func FirefoxDirFor(goos string) string {
	switch goos {
	case "windows":
		return filepath.Join(home(), "AppData", "Roaming", "Mozilla", "Firefox")
	case "darwin":
		return filepath.Join(home(), "Library", "Application Support", "Firefox")
	default:
		return filepath.Join(home(), ".mozilla", "firefox")
	}
}

// ConfigDir returns the firefoxcss directory under the user config dir,
// falling back to ~/.config when it cannot be determined.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(home(), ".config")
	}
	return filepath.Join(dir, "firefoxcss")
}

// ConfigFile returns <ConfigDir>/config.yaml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
