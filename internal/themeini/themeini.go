// Package themeini reads and writes theme.ini, the metadata record kept in
// every theme directory.
package themeini

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// FileName is the metadata file name inside a theme directory.
const FileName = "theme.ini"

// Theme is the persisted metadata of an installed theme.
type Theme struct {
	Name string `json:"name"`
	// Repo is the URL or local path the theme was installed from.
	Repo string `json:"repo,omitempty"`
}

// loadOptions read values literally: a trailing backslash is part of the
// value and surrounding quotes are kept.
var loadOptions = ini.LoadOptions{
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// Parse decodes theme.ini bytes. Both keys live in the default section.
func Parse(data []byte) (Theme, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return Theme{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	sec := f.Section(ini.DefaultSection)
	return Theme{
		Name: sec.Key("name").String(),
		Repo: sec.Key("repo").String(),
	}, nil
}

// Marshal encodes a Theme. The repo value is quoted by the codec when it
// contains comment or newline characters so it survives a round trip.
// Surrounding whitespace is not kept.
func Marshal(t Theme) ([]byte, error) {
	f := ini.Empty(loadOptions)
	sec := f.Section(ini.DefaultSection)
	if _, err := sec.NewKey("name", strings.TrimSpace(t.Name)); err != nil {
		return nil, fmt.Errorf("encoding name: %w", err)
	}
	if repo := strings.TrimSpace(t.Repo); repo != "" {
		if _, err := sec.NewKey("repo", repo); err != nil {
			return nil, fmt.Errorf("encoding repo: %w", err)
		}
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	return buf.Bytes(), nil
}

// Read loads dir/theme.ini. Returns nil and no error if the file doesn't exist.
func Read(dir string) (*Theme, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Write stores t as dir/theme.ini, replacing any existing record.
func Write(dir string, t Theme) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	return nil
}
