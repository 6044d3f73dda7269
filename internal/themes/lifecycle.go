package themes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruminaider/firefoxcss/internal/git"
	"github.com/ruminaider/firefoxcss/internal/themeini"
	"go.uber.org/zap"
)

// userPrefs are written to user.js by Enable.
var userPrefs = []string{
	"toolkit.legacyUserProfileCustomizations.stylesheets",
	"svg.context-properties.content.enabled",
}

// Remove deletes the inactive theme name and returns the removed path.
// Returns false and no error when there is nothing to remove. The active
// theme is never removed; deactivate it first.
func (m *Manager) Remove(name string) (string, bool, error) {
	if m.State(name) != Inactive {
		return "", false, nil
	}
	dir := m.ThemePath(name)
	if err := os.RemoveAll(dir); err != nil {
		return "", false, fsError("removing "+name, err)
	}
	m.log.Debug("theme removed", zap.String("theme", name), zap.String("dir", dir))
	return dir, true, nil
}

// Update reinstalls the inactive theme name from the repo recorded in its
// theme.ini and returns the reinstalled theme's name. A theme directory that
// is its own git repository falls back to its origin remote when the record
// has no repo. Local changes to the theme's files are lost.
func (m *Manager) Update(ctx context.Context, name string) (string, error) {
	if m.State(name) != Inactive {
		return "", fmt.Errorf("%w: %s", ErrThemeNotInstalled, name)
	}

	dir := m.ThemePath(name)
	meta, err := themeini.Read(dir)
	if err != nil {
		return "", fmt.Errorf("reading metadata of %s: %w", name, err)
	}
	repo := ""
	if meta != nil {
		repo = strings.TrimSpace(meta.Repo)
	}
	if repo == "" {
		repo = originRemote(dir)
	}
	if repo == "" {
		if meta == nil {
			return "", fmt.Errorf("%w: no %s found for %s", ErrMissingOrigin, themeini.FileName, name)
		}
		return "", fmt.Errorf("%w: no repo url in %s for %s", ErrMissingOrigin, themeini.FileName, name)
	}

	if _, _, err := m.Remove(name); err != nil {
		return "", err
	}
	m.log.Debug("reinstalling theme", zap.String("theme", name), zap.String("repo", repo))
	return m.Install(ctx, repo)
}

// originRemote returns the origin URL of dir when dir is the top of a git
// repository, or "".
func originRemote(dir string) string {
	if !git.IsRepo(dir) {
		return ""
	}
	url, err := git.RemoteURL(dir, "origin")
	if err != nil {
		return ""
	}
	return url
}

// Enable writes user.js so Firefox loads userChrome.css and userContent.css.
// An existing user.js is kept unless force is set; the bool reports whether
// the file was written.
func (m *Manager) Enable(force bool) (bool, error) {
	path := filepath.Join(m.dir, UserJS)
	if !force && exists(path) {
		return false, nil
	}

	var b strings.Builder
	for _, pref := range userPrefs {
		fmt.Fprintf(&b, "user_pref(%q, true);\n", pref)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return false, fsError("writing "+UserJS, err)
	}
	return true, nil
}

// scaffoldFiles are created empty-but-commented by Create.
var scaffoldFiles = map[string]string{
	"userChrome.css":  "/* Styles for the browser UI. */\n",
	"userContent.css": "/* Styles for web content and internal pages. */\n",
}

// Create scaffolds a new inactive theme named name with empty stylesheets,
// a theme.ini and a git repository whose origin is repo (when given).
// Returns the theme directory. The directory is kept even if git setup
// fails, so it can be removed like any other theme.
func (m *Manager) Create(name, repo string) (string, error) {
	if !validName(name) {
		return "", fmt.Errorf("%w: invalid theme name %q", ErrInvalidSource, name)
	}
	if m.taken(name) {
		return "", fmt.Errorf("%w: %s", ErrAlreadyInstalled, name)
	}
	dir := m.ThemePath(name)

	if err := os.Mkdir(dir, 0755); err != nil {
		return "", fsError("creating theme directory", err)
	}
	for file, contents := range scaffoldFiles {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(contents), 0644); err != nil {
			return dir, fsError("writing "+file, err)
		}
	}
	if err := themeini.Write(dir, themeini.Theme{Name: name, Repo: repo}); err != nil {
		return dir, fmt.Errorf("%w: %s: %w", ErrMetadataWriteFailed, name, err)
	}

	if err := git.Init(dir); err != nil {
		return dir, fmt.Errorf("initializing git repo: %w", err)
	}
	if repo != "" {
		if err := git.RemoteAdd(dir, "origin", repo); err != nil {
			return dir, fmt.Errorf("adding origin remote: %w", err)
		}
	}
	m.log.Debug("theme created", zap.String("theme", name), zap.String("dir", dir))
	return dir, nil
}
