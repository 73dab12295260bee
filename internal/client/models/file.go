// Package models defines the data handled by the converter client: the file
// handle chosen by the user and the descriptor of a converted artifact.
package models

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DrawioExt is the only file suffix accepted for conversion. The comparison
// is case-sensitive.
const DrawioExt = ".drawio"

// FileHandle is a user-provided file: a display name plus a way to read the
// payload. The payload is read lazily, only when it is uploaded.
type FileHandle interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// IsDrawioName reports whether name carries the literal ".drawio" suffix.
func IsDrawioName(name string) bool {
	return strings.HasSuffix(name, DrawioExt)
}

// LocalFile is a file on disk.
type LocalFile struct {
	Path string
}

func NewLocalFile(path string) *LocalFile {
	return &LocalFile{Path: path}
}

func (f *LocalFile) Name() string { return filepath.Base(f.Path) }

func (f *LocalFile) Open() (io.ReadCloser, error) { return os.Open(f.Path) }

// MemoryFile keeps the payload in memory.
type MemoryFile struct {
	FileName string
	Content  []byte
}

func (f *MemoryFile) Name() string { return f.FileName }

func (f *MemoryFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.Content)), nil
}
