// Package pal is the platform abstraction layer (spec §1, §6): blocking
// filesystem primitives with an explicit error taxonomy the driver maps to
// diag.IOReadFailed/IOWriteFailed/IOPathInvalid diagnostics (spec §7).
// Sockets and threads are named in spec §1 as part of the PAL surface but
// unused by the front end described here (no component performs network or
// concurrent I/O), so only the filesystem primitives the core actually
// calls (read_all, write_atomic, list_dir, mkdir_p) are implemented.
package pal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrorKind classifies a PAL failure independent of the underlying OS error
// string, so the driver can pick a stable diagnostic code.
type ErrorKind uint8

const (
	ErrKindNone ErrorKind = iota
	ErrKindNotFound
	ErrKindPermission
	ErrKindInvalidPath
	ErrKindOther
)

// Error wraps an underlying OS error with a stable Kind.
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pal: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func classify(op, path string, err error) error {
	if err == nil {
		return nil
	}
	kind := ErrKindOther
	switch {
	case errors.Is(err, os.ErrNotExist):
		kind = ErrKindNotFound
	case errors.Is(err, os.ErrPermission):
		kind = ErrKindPermission
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// ReadAll reads path's entire contents.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classify("read_all", path, err)
	}
	return data, nil
}

// WriteAtomic writes data to path by writing a sibling temp file and
// renaming it into place, so a crash mid-write never leaves a truncated
// file at path.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return classify("write_atomic", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return classify("write_atomic", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return classify("write_atomic", path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return classify("write_atomic", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return classify("write_atomic", path, err)
	}
	return nil
}

// ListDir returns the base names of dir's immediate entries.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, classify("list_dir", dir, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// MkdirP creates dir and any missing parents.
func MkdirP(dir string, perm os.FileMode) error {
	if err := os.MkdirAll(dir, perm); err != nil {
		return classify("mkdir_p", dir, err)
	}
	return nil
}
