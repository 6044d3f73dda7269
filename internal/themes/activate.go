package themes

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ruminaider/firefoxcss/internal/themeini"
	"go.uber.org/zap"
)

// Activation describes a successful Activate.
type Activation struct {
	Theme string
	// Previous is the theme that was demoted to make room, if any.
	Previous string
}

// Activate makes name the active theme.
//
// Returns nil and no error when name is not an installed inactive theme.
// Any active theme is demoted first, so a failure while promoting name leaves
// both themes inactive rather than losing either one.
func (m *Manager) Activate(name string) (*Activation, error) {
	if m.State(name) != Inactive {
		return nil, nil
	}

	previous, demoted, err := m.Deactivate()
	if err != nil {
		return nil, err
	}

	if err := m.move(m.ThemePath(name), m.ActivePath()); err != nil {
		if demoted {
			m.log.Warn("no theme is active after failed activation",
				zap.String("theme", name), zap.String("previous", previous))
		}
		return nil, fmt.Errorf("activating %s: %w", name, err)
	}

	m.log.Debug("theme activated", zap.String("theme", name), zap.String("previous", previous))
	a := &Activation{Theme: name}
	if demoted {
		a.Previous = previous
	}
	return a, nil
}

// Deactivate parks the active theme under chrome_<name>, taking the name from
// its theme.ini or generating unknown_<token> when there is none. Returns
// false and no error if no theme is active.
func (m *Manager) Deactivate() (string, bool, error) {
	active := m.ActivePath()
	if !isDir(active) {
		return "", false, nil
	}

	name := ""
	meta, err := themeini.Read(active)
	switch {
	case err != nil:
		m.log.Warn("ignoring unreadable metadata of active theme", zap.Error(err))
	case meta != nil && validName(meta.Name):
		name = meta.Name
	}
	if name == "" {
		name = placeholderPrefix + m.token()
	}

	if err := m.move(active, m.ThemePath(name)); err != nil {
		return "", false, fmt.Errorf("deactivating %s: %w", name, err)
	}
	m.log.Debug("theme deactivated", zap.String("theme", name))
	return name, true, nil
}

// move renames a theme directory, refusing to replace anything at dst.
func (m *Manager) move(src, dst string) error {
	if exists(dst) {
		return fmt.Errorf("%w: %s already exists", ErrActivationConflict, dst)
	}
	if err := m.rename(src, dst); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %w", ErrActivationConflict, err)
		}
		return fsError("renaming theme directory", err)
	}
	return nil
}
