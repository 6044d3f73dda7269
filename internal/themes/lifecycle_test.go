package themes_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/firefoxcss/internal/git"
	"github.com/ruminaider/firefoxcss/internal/themeini"
	"github.com/ruminaider/firefoxcss/internal/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	t.Run("never installed", func(t *testing.T) {
		m := newManager(t)
		path, ok, err := m.Remove("Bar")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, path)
	})

	t.Run("inactive theme", func(t *testing.T) {
		m := newManager(t)
		install(t, m, "https://example.com/Foo")

		path, ok, err := m.Remove("Foo")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, m.ThemePath("Foo"), path)
		assert.NoDirExists(t, path)
		assert.Empty(t, listed(t, m))
	})

	t.Run("active theme is left alone", func(t *testing.T) {
		m := newManager(t)
		install(t, m, "https://example.com/Foo")
		_, err := m.Activate("Foo")
		require.NoError(t, err)

		_, ok, err := m.Remove("Foo")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.DirExists(t, m.ActivePath())
		assert.Equal(t, "Foo", currentName(t, m))
	})

	t.Run("names outside the profile", func(t *testing.T) {
		m := newManager(t)
		_, ok, err := m.Remove("../" + filepath.Base(m.Dir()))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.DirExists(t, m.Dir())
	})
}

func TestUpdate(t *testing.T) {
	t.Run("reinstalls from the recorded origin", func(t *testing.T) {
		calls := 0
		m := newManager(t, themes.WithFetcher(treeFetcher(flatTheme, &calls)))
		const origin = "https://example.com/themes/Foo.git"
		install(t, m, origin)

		edited := filepath.Join(m.ThemePath("Foo"), "userChrome.css")
		require.NoError(t, os.WriteFile(edited, []byte("/* local edit */"), 0644))

		name, err := m.Update(context.Background(), "Foo")
		require.NoError(t, err)
		assert.Equal(t, "Foo", name)
		assert.Equal(t, 2, calls)

		meta, err := themeini.Read(m.ThemePath("Foo"))
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, origin, meta.Repo)

		data, err := os.ReadFile(edited)
		require.NoError(t, err)
		assert.Equal(t, flatTheme["userChrome.css"], string(data), "local edits are discarded")
	})

	t.Run("not installed", func(t *testing.T) {
		m := newManager(t)
		_, err := m.Update(context.Background(), "Foo")
		assert.ErrorIs(t, err, themes.ErrThemeNotInstalled)
	})

	t.Run("no metadata", func(t *testing.T) {
		m := newManager(t)
		require.NoError(t, os.Mkdir(m.ThemePath("Manual"), 0755))

		_, err := m.Update(context.Background(), "Manual")
		assert.ErrorIs(t, err, themes.ErrMissingOrigin)
		assert.DirExists(t, m.ThemePath("Manual"))
	})

	t.Run("falls back to the origin remote", func(t *testing.T) {
		calls := 0
		m := newManager(t, themes.WithFetcher(treeFetcher(flatTheme, &calls)))
		dir, err := m.Create("Mine", "")
		require.NoError(t, err)
		require.NoError(t, git.RemoteAdd(dir, "origin", "https://example.com/me/Mine.git"))

		name, err := m.Update(context.Background(), "Mine")
		require.NoError(t, err)
		assert.Equal(t, "Mine", name)
		assert.Equal(t, 1, calls)

		meta, err := themeini.Read(m.ThemePath("Mine"))
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, "https://example.com/me/Mine.git", meta.Repo)
	})

	t.Run("metadata without repo", func(t *testing.T) {
		m := newManager(t)
		require.NoError(t, os.Mkdir(m.ThemePath("Local"), 0755))
		require.NoError(t, themeini.Write(m.ThemePath("Local"), themeini.Theme{Name: "Local"}))

		_, err := m.Update(context.Background(), "Local")
		assert.ErrorIs(t, err, themes.ErrMissingOrigin)
		assert.DirExists(t, m.ThemePath("Local"))
	})
}

func TestEnable(t *testing.T) {
	t.Run("writes user.js", func(t *testing.T) {
		m := newManager(t)
		written, err := m.Enable(false)
		require.NoError(t, err)
		assert.True(t, written)

		data, err := os.ReadFile(filepath.Join(m.Dir(), themes.UserJS))
		require.NoError(t, err)
		assert.Contains(t, string(data), `user_pref("toolkit.legacyUserProfileCustomizations.stylesheets", true);`)
		assert.Contains(t, string(data), `user_pref("svg.context-properties.content.enabled", true);`)
	})

	t.Run("existing file is kept", func(t *testing.T) {
		m := newManager(t)
		path := filepath.Join(m.Dir(), themes.UserJS)
		require.NoError(t, os.WriteFile(path, []byte("// mine"), 0644))

		written, err := m.Enable(false)
		require.NoError(t, err)
		assert.False(t, written)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "// mine", string(data))
	})

	t.Run("force overwrites", func(t *testing.T) {
		m := newManager(t)
		path := filepath.Join(m.Dir(), themes.UserJS)
		require.NoError(t, os.WriteFile(path, []byte("// mine"), 0644))

		written, err := m.Enable(true)
		require.NoError(t, err)
		assert.True(t, written)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "legacyUserProfileCustomizations")
	})
}

func TestCreate(t *testing.T) {
	t.Run("with repo", func(t *testing.T) {
		m := newManager(t)
		dir, err := m.Create("Mine", "https://example.com/me/Mine.git")
		require.NoError(t, err)
		assert.Equal(t, m.ThemePath("Mine"), dir)

		assert.FileExists(t, filepath.Join(dir, "userChrome.css"))
		assert.FileExists(t, filepath.Join(dir, "userContent.css"))
		assert.True(t, git.IsRepo(dir))

		url, err := git.RemoteURL(dir, "origin")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/me/Mine.git", url)

		meta, err := themeini.Read(dir)
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, themeini.Theme{Name: "Mine", Repo: "https://example.com/me/Mine.git"}, *meta)

		assert.Equal(t, []string{"Mine"}, listed(t, m))
	})

	t.Run("without repo", func(t *testing.T) {
		m := newManager(t)
		dir, err := m.Create("Scratch", "")
		require.NoError(t, err)
		_, err = git.RemoteURL(dir, "origin")
		assert.Error(t, err)

		_, err = m.Update(context.Background(), "Scratch")
		assert.ErrorIs(t, err, themes.ErrMissingOrigin)
	})

	t.Run("invalid name", func(t *testing.T) {
		m := newManager(t)
		for _, name := range []string{"", "a/b", `a\b`, ".."} {
			_, err := m.Create(name, "")
			assert.ErrorIs(t, err, themes.ErrInvalidSource, name)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		m := newManager(t)
		install(t, m, "https://example.com/Foo")
		_, err := m.Create("Foo", "")
		assert.ErrorIs(t, err, themes.ErrAlreadyInstalled)
	})

	t.Run("name of the active theme", func(t *testing.T) {
		m := newManager(t)
		install(t, m, "https://example.com/Foo")
		_, err := m.Activate("Foo")
		require.NoError(t, err)

		_, err = m.Create("Foo", "")
		assert.ErrorIs(t, err, themes.ErrAlreadyInstalled)
		assert.NoDirExists(t, m.ThemePath("Foo"))
	})
}
