// Package themes installs, activates and removes userstyle themes inside a
// Firefox profile directory.
//
// Firefox only reads style overrides from <profile>/chrome. The active theme
// lives there; every other installed theme is parked next to it as
// <profile>/chrome_<name>. Switching themes is therefore a pair of directory
// renames, and nothing is deleted except by Remove and Update.
package themes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/ruminaider/firefoxcss/internal/profile"
	"go.uber.org/zap"
)

const (
	// ActiveDir is the override directory Firefox reads at startup.
	ActiveDir = "chrome"
	// InactivePrefix marks a parked theme directory: chrome_<name>.
	InactivePrefix = ActiveDir + "_"
	// UserJS is the preference override file at the profile root. Themes may
	// ship their own copy.
	UserJS = "user.js"

	tempPrefix        = "temp_"
	placeholderPrefix = "unknown_"
)

var (
	ErrInvalidSource       = errors.New("invalid theme source")
	ErrAlreadyInstalled    = errors.New("theme is already installed")
	ErrFetchFailed         = errors.New("fetching theme failed")
	ErrThemeNotInstalled   = errors.New("theme is not installed")
	ErrActivationConflict  = errors.New("theme directory is occupied")
	ErrMissingOrigin       = errors.New("theme has no recorded origin")
	ErrMetadataWriteFailed = errors.New("writing theme metadata failed")
	// ErrAccessDenied is added to filesystem errors caused by permissions,
	// typically a running Firefox holding the chrome directory.
	ErrAccessDenied = errors.New("access denied, make sure Firefox is closed")
)

// Manager performs theme operations against one profile directory. Build one
// per invocation; it holds no state besides its collaborators.
type Manager struct {
	dir     string
	clock   clockwork.Clock
	fetcher Fetcher
	log     *zap.Logger
	rename  func(oldpath, newpath string) error
}

// Option customizes a Manager.
type Option func(*Manager)

// WithClock sets the clock used for temporary and placeholder names.
func WithClock(c clockwork.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithFetcher replaces the git-based fetcher.
func WithFetcher(f Fetcher) Option {
	return func(m *Manager) { m.fetcher = f }
}

// WithLogger sets the debug logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// NewManager returns a Manager for the existing profile directory dir.
func NewManager(dir string, opts ...Option) (*Manager, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving profile path: %w", err)
	}
	if !isDir(abs) {
		return nil, fmt.Errorf("%w: %s is not a directory", profile.ErrProfileNotFound, abs)
	}

	m := &Manager{
		dir:     abs,
		clock:   clockwork.NewRealClock(),
		fetcher: GitFetcher{},
		log:     zap.NewNop(),
		rename:  os.Rename,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Dir returns the profile directory.
func (m *Manager) Dir() string {
	return m.dir
}

// token is a base36 timestamp, distinct across rapid invocations.
func (m *Manager) token() string {
	return strconv.FormatInt(m.clock.Now().UnixNano(), 36)
}

// uniquePath returns <profile>/<prefix><token>, suffixed until unused.
func (m *Manager) uniquePath(prefix string) string {
	base := filepath.Join(m.dir, prefix+m.token())
	p := base
	for i := 1; exists(p); i++ {
		p = base + "_" + strconv.Itoa(i)
	}
	return p
}

// validName rejects names that would escape the profile directory.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// fsError wraps err and, when it is a permission failure, ErrAccessDenied.
func fsError(action string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%s: %w: %w", action, ErrAccessDenied, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
