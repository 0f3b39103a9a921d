// Package ioutils provides the small set of file system primitives the
// setup flow relies on.
//
// Every write in aoc-init goes through this package so the idempotency rules
// live in one place: directories are created with parents and never fail when
// present, Touch never truncates, and WriteFile is an explicit overwrite.
package ioutils

import (
	"os"
)

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755. If the directory already exists,
// no error is returned, which makes repeated setup runs safe.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists it is
// truncated; callers decide whether overwriting is allowed before calling.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// Touch creates an empty file at path if it does not exist.
//
// Unlike WriteFile, an existing file is left completely untouched, content
// included. This backs example.txt, which the user fills in by hand and which
// must survive re-runs.
func Touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Exists reports whether path exists as a file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
