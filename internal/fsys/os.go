package fsys

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const (
	filePerms = 0o644
	dirPerms  = 0o755
)

// OS implements FS on the real file system
type OS struct{}

// NewOS returns the real file system
func NewOS() *OS {
	return &OS{}
}

func (o *OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes to a temporary file in the target directory and renames it
// over path, so readers never observe partial content. An existing file must be
// writable: the rename alone would replace read-only or locked files.
func (o *OS) WriteFile(path string, data []byte) error {
	existed, err := o.Exists(path)
	if err != nil {
		return err
	}
	if existed {
		if err := checkWritable(path); err != nil {
			return err
		}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}

	// atomic.WriteFile keeps the mode of a replaced file but new files get the
	// temp file's 0600
	if !existed {
		return os.Chmod(path, filePerms)
	}
	return nil
}

func checkWritable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	return f.Close()
}

func (o *OS) MkdirAll(path string) error {
	return os.MkdirAll(path, dirPerms)
}

func (o *OS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (o *OS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

func (o *OS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
