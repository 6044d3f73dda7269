package themes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruminaider/firefoxcss/internal/git"
	"github.com/ruminaider/firefoxcss/internal/themeini"
	"go.uber.org/zap"
)

// Fetcher retrieves a theme's source tree into dst, which does not exist yet.
type Fetcher interface {
	Fetch(ctx context.Context, source, dst string) error
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, source, dst string) error

func (f FetcherFunc) Fetch(ctx context.Context, source, dst string) error {
	return f(ctx, source, dst)
}

// GitFetcher clones sources with the git command line.
type GitFetcher struct{}

func (GitFetcher) Fetch(ctx context.Context, source, dst string) error {
	return git.Clone(ctx, source, dst)
}

// ThemeName derives a theme name from the last segment of a URL or path,
// without trailing separators or a .git suffix.
//
//	https://github.com/muckSponge/MaterialFox/ -> MaterialFox
//	git@github.com:user/theme.git              -> theme
func ThemeName(source string) string {
	s := strings.TrimRight(strings.TrimSpace(source), `/\`)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	if strings.HasSuffix(strings.ToLower(s), ".git") {
		s = s[:len(s)-len(".git")]
	}
	return s
}

// Install fetches source into the profile as a new inactive theme and returns
// its name.
//
// The fetch lands in a temp_<token> directory that is always removed before
// Install returns. If the fetched tree has a chrome/ subfolder only that
// folder becomes the theme (plus a root user.js the folder lacks); otherwise
// the whole tree does. Once the theme directory exists it is never rolled
// back: a failed theme.ini write returns the name together with an error
// wrapping ErrMetadataWriteFailed, and the theme stays listable and removable.
func (m *Manager) Install(ctx context.Context, source string) (string, error) {
	name := ThemeName(source)
	if !validName(name) {
		return "", fmt.Errorf("%w: unable to get theme name from %q", ErrInvalidSource, source)
	}

	if m.taken(name) {
		return "", fmt.Errorf("%w: %s", ErrAlreadyInstalled, name)
	}
	themeDir := m.ThemePath(name)

	if isDir(source) {
		m.log.Info("installing from local folder", zap.String("source", source))
	}

	tempDir := m.uniquePath(tempPrefix)
	defer m.removeTemp(tempDir)

	m.log.Debug("fetching theme", zap.String("source", source), zap.String("dir", tempDir))
	if err := m.fetcher.Fetch(ctx, source, tempDir); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFetchFailed, source, err)
	}
	if !isDir(tempDir) {
		return "", fmt.Errorf("%w: %s: nothing was retrieved", ErrFetchFailed, source)
	}

	nested, err := m.promote(tempDir, themeDir)
	if err != nil {
		return "", err
	}

	var userJSErr error
	if nested {
		userJSErr = relocateUserJS(tempDir, themeDir)
	}

	if err := themeini.Write(themeDir, themeini.Theme{Name: name, Repo: strings.TrimSpace(source)}); err != nil {
		m.log.Warn("theme installed without metadata", zap.String("theme", name), zap.Error(err))
		return name, errors.Join(fmt.Errorf("%w: %s: %w", ErrMetadataWriteFailed, name, err), userJSErr)
	}
	if userJSErr != nil {
		return name, userJSErr
	}

	m.log.Debug("theme installed", zap.String("theme", name), zap.String("dir", themeDir))
	return name, nil
}

// promote moves the fetched tree, or its chrome/ subfolder when there is
// one, to themeDir. nested reports which of the two happened.
func (m *Manager) promote(tempDir, themeDir string) (nested bool, err error) {
	sub := filepath.Join(tempDir, ActiveDir)
	if !isDir(sub) {
		if err := os.Rename(tempDir, themeDir); err != nil {
			return false, fsError("moving fetched theme into place", err)
		}
		return false, nil
	}
	if err := os.Rename(sub, themeDir); err != nil {
		return true, fsError("moving fetched chrome folder into place", err)
	}
	m.log.Debug("promoted chrome subfolder", zap.String("dir", themeDir))
	return true, nil
}

// relocateUserJS moves a root-level user.js next to the promoted chrome
// content unless the theme already ships one.
func relocateUserJS(tempDir, themeDir string) error {
	src := filepath.Join(tempDir, UserJS)
	dst := filepath.Join(themeDir, UserJS)
	if !isFile(src) || exists(dst) {
		return nil
	}
	if err := os.Rename(src, dst); err != nil {
		return fsError("moving "+UserJS+" into theme", err)
	}
	return nil
}

func (m *Manager) removeTemp(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		m.log.Warn("could not remove temporary directory", zap.String("dir", dir), zap.Error(err))
	}
}

// taken reports whether name is used by an inactive theme directory or by
// the active theme's record.
func (m *Manager) taken(name string) bool {
	return exists(m.ThemePath(name)) || m.State(name) == Active
}
