package fs

import (
	"os"
	"path/filepath"
)

// File writes an export atomically. Data goes to a temporary file next to
// the target and replaces the target on Commit.
type File struct {
	*os.File
	path string
}

// CreateFile creates the parent directories of path and opens a temporary
// file for writing.
func CreateFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	if err := f.Chmod(0644); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, err
	}
	return &File{File: f, path: path}, nil
}

// Commit closes the temporary file and moves it to the target path.
func (f *File) Commit() error {
	if err := f.File.Close(); err != nil {
		_ = os.Remove(f.File.Name())
		return err
	}
	if err := os.Rename(f.File.Name(), f.path); err != nil {
		_ = os.Remove(f.File.Name())
		return err
	}
	return nil
}

// Abort discards the temporary file. It is safe to call after Commit.
func (f *File) Abort() error {
	_ = f.File.Close()
	err := os.Remove(f.File.Name())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
