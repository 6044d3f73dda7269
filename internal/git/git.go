package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotInstalled is returned when the git executable cannot be found.
var ErrNotInstalled = errors.New("git executable not found, make sure Git is installed and on the PATH")

// Run executes a git command in the given directory and returns trimmed output.
func Run(dir string, args ...string) (string, error) {
	return RunContext(context.Background(), dir, args...)
}

// RunContext is Run bound to ctx; the git process is killed when ctx is done.
func RunContext(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrNotInstalled
		}
		return strings.TrimSpace(string(out)), err
	}
	return strings.TrimSpace(string(out)), nil
}

// IsRepo returns true if dir is the top level of a git repository. A
// directory nested inside another repository's work tree is not one.
func IsRepo(dir string) bool {
	top, err := Run(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return false
	}
	return samePath(top, dir)
}

func samePath(a, b string) bool {
	ra, errA := filepath.EvalSymlinks(a)
	rb, errB := filepath.EvalSymlinks(b)
	if errA != nil || errB != nil {
		return false
	}
	return filepath.Clean(ra) == filepath.Clean(rb)
}

// Init initializes a new git repo in dir on branch main.
func Init(dir string) error {
	out, err := Run(dir, "init", "-b", "main")
	if err != nil {
		return commandError(out, err)
	}
	return nil
}

// Clone clones src into dst. The returned error carries git's output so the
// caller can show why the clone failed.
func Clone(ctx context.Context, src, dst string) error {
	out, err := RunContext(ctx, "", "clone", "--quiet", src, dst)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("cloning %s: %w", src, ctxErr)
		}
		return commandError(out, err)
	}
	return nil
}

// RemoteAdd adds a remote.
func RemoteAdd(dir, name, url string) error {
	out, err := Run(dir, "remote", "add", name, url)
	if err != nil {
		return commandError(out, err)
	}
	return nil
}

// RemoteURL returns the URL of the named remote.
func RemoteURL(dir, name string) (string, error) {
	return Run(dir, "remote", "get-url", name)
}

// commandError prefers git's own message over the bare exit status.
func commandError(out string, err error) error {
	if errors.Is(err, ErrNotInstalled) || out == "" {
		return err
	}
	return fmt.Errorf("%s: %w", out, err)
}
