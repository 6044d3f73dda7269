package themes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ruminaider/firefoxcss/internal/themeini"
)

// State is where a theme currently lives in the profile.
type State int

const (
	NotInstalled State = iota
	// Inactive themes are stored as chrome_<name>.
	Inactive
	// Active is the theme stored as chrome.
	Active
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	default:
		return "not installed"
	}
}

// dirName maps a state to its on-disk directory name.
func dirName(name string, s State) string {
	if s == Active {
		return ActiveDir
	}
	return InactivePrefix + name
}

// ActivePath returns <profile>/chrome.
func (m *Manager) ActivePath() string {
	return filepath.Join(m.dir, dirName("", Active))
}

// ThemePath returns the inactive directory for name. It does not check
// whether the directory exists.
func (m *Manager) ThemePath(name string) string {
	return filepath.Join(m.dir, dirName(name, Inactive))
}

// List returns the names of inactive themes, sorted. The active theme is not
// included; see Current.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fsError("listing themes", err)
	}

	names := []string{}
	for _, e := range entries {
		name, ok := strings.CutPrefix(e.Name(), InactivePrefix)
		if !ok || name == "" {
			continue
		}
		if !isDir(filepath.Join(m.dir, e.Name())) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Current returns the metadata of the active theme. Returns nil and no error
// when there is no chrome directory or it carries no theme.ini.
func (m *Manager) Current() (*themeini.Theme, error) {
	active := m.ActivePath()
	if !isDir(active) {
		return nil, nil
	}
	t, err := themeini.Read(active)
	if err != nil {
		return nil, fmt.Errorf("reading active theme: %w", err)
	}
	return t, nil
}

// State reports where name lives. A parked chrome_<name> directory wins over
// a chrome directory whose record carries the same name.
func (m *Manager) State(name string) State {
	if !validName(name) {
		return NotInstalled
	}
	if isDir(m.ThemePath(name)) {
		return Inactive
	}
	if cur, err := m.Current(); err == nil && cur != nil && cur.Name == name {
		return Active
	}
	return NotInstalled
}

// Path resolves the directory of name, or of the active theme when name is
// empty. The bool is false when there is no such directory.
func (m *Manager) Path(name string) (string, bool) {
	if name == "" {
		return m.ActivePath(), isDir(m.ActivePath())
	}
	switch s := m.State(name); s {
	case Active, Inactive:
		return filepath.Join(m.dir, dirName(name, s)), true
	default:
		return "", false
	}
}
