package fsys

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOS_WriteFile(t *testing.T) {
	dir := t.TempDir()
	o := NewOS()
	path := filepath.Join(dir, "Sample.h")

	t.Run("creates new file readable by others", func(t *testing.T) {
		if err := o.WriteFile(path, []byte("first")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != filePerms {
			t.Errorf("expected mode %o, got %o", filePerms, info.Mode().Perm())
		}
	})

	t.Run("replaces existing content", func(t *testing.T) {
		if err := o.WriteFile(path, []byte("second")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := o.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(data) != "second" {
			t.Errorf("expected second, got %q", data)
		}
	})

	t.Run("read-only file is refused", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root can write read-only files")
		}
		target := filepath.Join(dir, "ReadOnly.h")
		if err := os.WriteFile(target, []byte("keep"), 0o444); err != nil {
			t.Fatalf("setup: %v", err)
		}

		err := o.WriteFile(target, []byte("new"))
		if !errors.Is(err, fs.ErrPermission) {
			t.Fatalf("expected permission error, got %v", err)
		}
		data, _ := os.ReadFile(target)
		if string(data) != "keep" {
			t.Errorf("read-only file was replaced: %q", data)
		}
	})

	t.Run("missing parent leaves nothing behind", func(t *testing.T) {
		target := filepath.Join(dir, "missing", "Sample.cpp")
		if err := o.WriteFile(target, []byte("x")); err == nil {
			t.Fatal("expected error for missing parent directory")
		}
		exists, err := o.Exists(target)
		if err != nil || exists {
			t.Errorf("expected no file, exists=%v err=%v", exists, err)
		}
	})
}

func TestOS_MkdirAllIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "unit", "core")
	o := NewOS()
	for i := 0; i < 2; i++ {
		if err := o.MkdirAll(dir); err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
	}
}

func TestMem_ReadWrite(t *testing.T) {
	m := NewMem()

	if err := m.WriteFile("unit/A.h", []byte("a")); err == nil {
		t.Error("expected error writing into a missing directory")
	}

	if err := m.MkdirAll("unit"); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := m.WriteFile("unit/A.h", []byte("a")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if m.Writes != 1 {
		t.Errorf("expected 1 write, got %d", m.Writes)
	}

	data, err := m.ReadFile("unit/./A.h")
	if err != nil || string(data) != "a" {
		t.Errorf("expected a, got %q err=%v", data, err)
	}

	if _, err := m.ReadFile("unit/B.h"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestMem_InjectedFailures(t *testing.T) {
	m := NewMem()
	m.Put("t/A.cpp", "a")
	m.FailRead("t/A.cpp", fs.ErrPermission)
	m.FailWrite("t/B.cpp", fs.ErrPermission)

	if _, err := m.ReadFile("t/A.cpp"); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected ErrPermission on read, got %v", err)
	}
	if err := m.WriteFile("t/B.cpp", []byte("b")); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected ErrPermission on write, got %v", err)
	}
	if exists, _ := m.Exists("t/B.cpp"); exists {
		t.Error("failed write must not create the file")
	}
}

func TestMem_WalkDir(t *testing.T) {
	m := NewMem()
	m.Put("tests/unit/core/BTest.cpp", "")
	m.Put("tests/unit/core/ATest.cpp", "")
	m.Put("tests/ui/PagesTest.cpp", "")
	m.Put("tests/.git/config", "")
	m.Put("other/Skip.cpp", "")

	var visited []string
	err := m.WalkDir("tests", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}
		visited = append(visited, filepath.ToSlash(path))
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		"tests",
		"tests/ui",
		"tests/ui/PagesTest.cpp",
		"tests/unit",
		"tests/unit/core",
		"tests/unit/core/ATest.cpp",
		"tests/unit/core/BTest.cpp",
	}
	if diff := cmp.Diff(expected, visited); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestMem_WalkDirMissingRoot(t *testing.T) {
	m := NewMem()
	err := m.WalkDir("nope", func(path string, d fs.DirEntry, err error) error {
		return err
	})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
