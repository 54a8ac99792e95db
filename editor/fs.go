package editor

import (
	"os"

	"sked/persist"
)

// FS is the slice of the filesystem the workflow needs: enough to save,
// load, probe for overwrite conflicts, and populate the load dialog.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Exists(path string) bool
	ListTreeFiles(dir string) ([]string, error)
}

// osFS is the real filesystem.
type osFS struct{}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFS) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFS) ListTreeFiles(dir string) ([]string, error) {
	return persist.ListTreeFiles(dir)
}
