// Package fsys is the file system seam shared by the generator, the patcher and
// the repair tool.
//
//   - [OS] works on the real file system and writes atomically.
//   - [Mem] keeps everything in memory and can inject failures per path.
package fsys

import (
	"io/fs"
)

// FS is the set of file operations the tools need
type FS interface {
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces path with data. The write is all-or-nothing: on failure
	// path keeps its previous content, or stays absent.
	WriteFile(path string, data []byte) error
	// MkdirAll creates path and any missing parents. No error if it exists.
	MkdirAll(path string) error
	// Exists reports whether anything is present at path
	Exists(path string) (bool, error)
	// WalkDir walks the tree rooted at root in lexical order
	WalkDir(root string, fn fs.WalkDirFunc) error
	// Stat describes path
	Stat(path string) (fs.FileInfo, error)
}
