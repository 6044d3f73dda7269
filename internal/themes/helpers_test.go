package themes_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ruminaider/firefoxcss/internal/themes"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// treeFetcher returns a fetcher that materializes files (slash-separated
// relative paths) under dst and counts its calls.
func treeFetcher(files map[string]string, calls *int) themes.FetcherFunc {
	return func(ctx context.Context, source, dst string) error {
		if calls != nil {
			*calls++
		}
		for rel, contents := range files {
			p := filepath.Join(dst, filepath.FromSlash(rel))
			if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(p, []byte(contents), 0644); err != nil {
				return err
			}
		}
		return os.MkdirAll(dst, 0755)
	}
}

// failingFetcher leaves a partial tree behind and fails.
func failingFetcher() themes.FetcherFunc {
	return func(ctx context.Context, source, dst string) error {
		if err := os.MkdirAll(filepath.Join(dst, ".git"), 0755); err != nil {
			return err
		}
		return errors.New("fatal: repository not found")
	}
}

var flatTheme = map[string]string{
	"userChrome.css":  "#nav-bar { display: none }",
	"userContent.css": "",
}

func newManager(t *testing.T, opts ...themes.Option) *themes.Manager {
	t.Helper()
	opts = append([]themes.Option{
		themes.WithClock(clockwork.NewFakeClockAt(testTime)),
		themes.WithFetcher(treeFetcher(flatTheme, nil)),
	}, opts...)
	m, err := themes.NewManager(t.TempDir(), opts...)
	require.NoError(t, err)
	return m
}

// install installs each source with m and fails the test on error.
func install(t *testing.T, m *themes.Manager, sources ...string) {
	t.Helper()
	for _, src := range sources {
		_, err := m.Install(context.Background(), src)
		require.NoError(t, err)
	}
}

// entries lists the profile's top-level names.
func entries(t *testing.T, dir string) []string {
	t.Helper()
	list, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.Name())
	}
	return names
}

// initThemeRepo creates a committed git repo at <tmp>/<name> holding files.
func initThemeRepo(t *testing.T, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	run := func(args ...string) {
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	run("init")
	run("config", "user.email", "test@test.com")
	run("config", "user.name", "Test")
	for rel, contents := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(contents), 0644))
	}
	run("add", ".")
	run("commit", "-m", "initial")
	return dir
}
