package fsys

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Mem is an in-memory FS. Failures can be injected per path to exercise error
// handling without touching the disk.
type Mem struct {
	files     map[string][]byte
	dirs      map[string]bool
	readErrs  map[string]error
	writeErrs map[string]error

	// Writes counts successful WriteFile calls
	Writes int
}

// NewMem returns an empty in-memory file system
func NewMem() *Mem {
	return &Mem{
		files:     make(map[string][]byte),
		dirs:      make(map[string]bool),
		readErrs:  make(map[string]error),
		writeErrs: make(map[string]error),
	}
}

// FailRead makes every read of path return err. A directory marked this way
// cannot be listed by WalkDir.
func (m *Mem) FailRead(path string, err error) {
	m.readErrs[filepath.Clean(path)] = err
}

// FailWrite makes every write of path return err
func (m *Mem) FailWrite(path string, err error) {
	m.writeErrs[filepath.Clean(path)] = err
}

// Files returns every file path in lexical order
func (m *Mem) Files() []string {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Put stores a file directly, creating parent directories
func (m *Mem) Put(path string, content string) {
	p := filepath.Clean(path)
	m.addDirs(filepath.Dir(p))
	m.files[p] = []byte(content)
}

func (m *Mem) ReadFile(path string) ([]byte, error) {
	p := filepath.Clean(path)
	if err, ok := m.readErrs[p]; ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

func (m *Mem) WriteFile(path string, data []byte) error {
	p := filepath.Clean(path)
	if err, ok := m.writeErrs[p]; ok {
		return &fs.PathError{Op: "open", Path: path, Err: err}
	}
	if m.dirs[p] {
		return &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}
	if parent := filepath.Dir(p); !m.isRoot(parent) && !m.dirs[parent] {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	m.files[p] = slices.Clone(data)
	m.Writes++
	return nil
}

func (m *Mem) MkdirAll(path string) error {
	p := filepath.Clean(path)
	for d := p; !m.isRoot(d); d = filepath.Dir(d) {
		if _, ok := m.files[d]; ok {
			return &fs.PathError{Op: "mkdir", Path: path, Err: errors.New("not a directory")}
		}
	}
	m.addDirs(p)
	return nil
}

func (m *Mem) Exists(path string) (bool, error) {
	p := filepath.Clean(path)
	_, isFile := m.files[p]
	return isFile || m.dirs[p], nil
}

func (m *Mem) Stat(path string) (fs.FileInfo, error) {
	p := filepath.Clean(path)
	if data, ok := m.files[p]; ok {
		return memInfo{name: filepath.Base(p), size: int64(len(data))}, nil
	}
	if m.dirs[p] || m.isRoot(p) {
		return memInfo{name: filepath.Base(p), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

// WalkDir follows filepath.WalkDir semantics, including SkipDir and SkipAll
func (m *Mem) WalkDir(root string, fn fs.WalkDirFunc) error {
	r := filepath.Clean(root)
	info, err := m.Stat(r)
	if err != nil {
		return fn(root, nil, err)
	}
	if !info.IsDir() {
		return skipAllIsNil(fn(root, fs.FileInfoToDirEntry(info), nil))
	}
	if err := fn(root, fs.FileInfoToDirEntry(info), nil); err != nil {
		if errors.Is(err, fs.SkipDir) {
			return nil
		}
		return skipAllIsNil(err)
	}

	var entries []string
	for p := range m.dirs {
		if p != r && isUnder(p, r) {
			entries = append(entries, p)
		}
	}
	for p := range m.files {
		if isUnder(p, r) {
			entries = append(entries, p)
		}
	}
	slices.SortFunc(entries, comparePaths)

	var skipped []string
	for _, p := range entries {
		if slices.ContainsFunc(skipped, func(s string) bool {
			return strings.HasPrefix(p, s+string(filepath.Separator))
		}) {
			continue
		}
		info, _ := m.Stat(p)
		err := fn(p, fs.FileInfoToDirEntry(info), nil)
		if rerr, ok := m.readErrs[p]; ok && err == nil && info.IsDir() {
			// Unreadable directory: reported a second time, contents never visited
			skipped = append(skipped, p)
			err = fn(p, fs.FileInfoToDirEntry(info), &fs.PathError{Op: "readdirent", Path: p, Err: rerr})
		}
		if err == nil {
			continue
		}
		if errors.Is(err, fs.SkipDir) {
			if info.IsDir() {
				skipped = append(skipped, p)
			} else {
				skipped = append(skipped, filepath.Dir(p))
			}
			continue
		}
		return skipAllIsNil(err)
	}
	return nil
}

func (m *Mem) addDirs(path string) {
	for d := filepath.Clean(path); !m.isRoot(d); d = filepath.Dir(d) {
		m.dirs[d] = true
	}
}

func (m *Mem) isRoot(p string) bool {
	return p == "." || p == string(filepath.Separator) || filepath.Dir(p) == p
}

func isUnder(p, root string) bool {
	switch {
	case root == ".":
		return !filepath.IsAbs(p)
	case filepath.Dir(root) == root:
		return filepath.IsAbs(p)
	default:
		return strings.HasPrefix(p, root+string(filepath.Separator))
	}
}

func skipAllIsNil(err error) error {
	if errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

// comparePaths orders paths the way a depth-first lexical walk visits them
func comparePaths(a, b string) int {
	as := strings.Split(a, string(filepath.Separator))
	bs := strings.Split(b, string(filepath.Separator))
	return slices.Compare(as, bs)
}

type memInfo struct {
	name string
	size int64
	dir  bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return i.size }
func (i memInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | dirPerms
	}
	return filePerms
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() any           { return nil }
