package themes

// SetRename replaces the directory rename used by m.
func SetRename(m *Manager, rename func(oldpath, newpath string) error) {
	m.rename = rename
}

var FSError = fsError
