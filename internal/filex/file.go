// Package filex holds small filesystem helpers: directory bootstrap for the
// session database and file handles used as multipart attachments.
package filex

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path, if missing.
// A bare file name (no directory part) needs nothing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// LocalFile is an attachment backed by a file on disk. The file is opened
// lazily, at submission time, so staging a selection costs nothing.
type LocalFile struct {
	Path string
}

// OpenLocal checks that path is a regular readable file and returns a
// handle for it.
func OpenLocal(path string) (LocalFile, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return LocalFile{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return LocalFile{}, fmt.Errorf("%s is a directory", path)
	}
	return LocalFile{Path: path}, nil
}

func (f LocalFile) Name() string { return filepath.Base(f.Path) }

func (f LocalFile) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// MemFile is an in-memory attachment.
type MemFile struct {
	FileName string
	Data     []byte
}

func (f MemFile) Name() string { return f.FileName }

func (f MemFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.Data)), nil
}
