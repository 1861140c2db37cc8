// Package filesystem provides filesystem implementations for classifiles.
//
// This package contains the afero-backed implementation of the types.FS
// interface. Symlink operations are only available when the underlying
// afero filesystem implements afero.Symlinker (the OS filesystem and
// BasePathFs over it do; the in-memory filesystem does not).
package filesystem
