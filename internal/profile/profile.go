// Package profile locates the default Firefox profile directory from the
// profiles.ini registry.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruminaider/firefoxcss/internal/paths"
	"gopkg.in/ini.v1"
)

// RegistryFile is Firefox's profile registry inside its data directory.
const RegistryFile = "profiles.ini"

// ErrProfileNotFound is wrapped by every Locate failure.
var ErrProfileNotFound = errors.New("firefox profile not found")

// Default returns the default profile of the platform's Firefox install.
func Default() (string, error) {
	return Locate(paths.FirefoxDir())
}

// Locate resolves the default profile registered in baseDir/profiles.ini.
//
// Current Firefox releases record the default per install in an
// [Install<hash>] section's Default key, relative to baseDir. Older releases
// only mark a [Profile<n>] section with Default=1; that is used as a fallback.
func Locate(baseDir string) (string, error) {
	if info, err := os.Stat(baseDir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: no Firefox directory at %s", ErrProfileNotFound, baseDir)
	}

	registry := filepath.Join(baseDir, RegistryFile)
	f, err := ini.Load(registry)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrProfileNotFound, registry, err)
	}

	rel, ok := installDefault(f)
	if !ok {
		rel, ok = legacyDefault(f)
	}
	if !ok {
		return "", fmt.Errorf("%w: no default profile entry in %s", ErrProfileNotFound, registry)
	}

	dir := rel
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(baseDir, filepath.FromSlash(rel))
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: default profile %s does not exist", ErrProfileNotFound, dir)
	}
	return dir, nil
}

func installDefault(f *ini.File) (string, bool) {
	for _, sec := range f.Sections() {
		if !strings.HasPrefix(sec.Name(), "Install") {
			continue
		}
		if v := strings.TrimSpace(sec.Key("Default").String()); v != "" {
			return v, true
		}
	}
	return "", false
}

func legacyDefault(f *ini.File) (string, bool) {
	for _, sec := range f.Sections() {
		if !strings.HasPrefix(sec.Name(), "Profile") {
			continue
		}
		if sec.Key("Default").String() != "1" {
			continue
		}
		p := strings.TrimSpace(sec.Key("Path").String())
		if p == "" {
			continue
		}
		if sec.Key("IsRelative").MustInt(1) == 0 && !filepath.IsAbs(p) {
			continue
		}
		return p, true
	}
	return "", false
}
