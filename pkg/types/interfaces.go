package types

import (
	"io"
	"io/fs"
	"path/filepath"
)

// FS is the filesystem interface required for classifiles operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Lstat does not follow symlinks. Filesystems without symlink
	// support fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	// Walk visits root and everything below it in lexical order,
	// parents before children, without following symlinks.
	Walk(root string, fn filepath.WalkFunc) error
}

// SignatureOracle makes a quick content sniff of a file.
type SignatureOracle interface {
	// Detect returns the sniffed MIME type, or false when nothing
	// could be determined.
	Detect(path string) (string, bool)
}

// DeepInspector runs the slower signature database inspection. A single
// handle is tuned for one kind of answer (a MIME type or a list of
// slash separated extensions); the string it returns is that answer.
type DeepInspector interface {
	Inspect(path string) (string, error)
}

// Resolver turns a path into a FileType.
type Resolver interface {
	Resolve(path string) FileType
}
