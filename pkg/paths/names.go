package paths

import (
	"path/filepath"
	"strings"
)

// SplitExt splits a file name into stem and extension. A leading dot
// does not start an extension, so ".bashrc" has none while "a.tar.gz"
// has "gz". The extension is returned without its dot.
func SplitExt(name string) (stem, ext string, ok bool) {
	if name == ".." {
		return name, "", false
	}
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name, "", false
	}
	return name[:idx], name[idx+1:], true
}

// Ext returns the extension of name without its dot, or "" if it has none.
func Ext(name string) string {
	_, ext, _ := SplitExt(name)
	return ext
}

// FileName returns the last element of path, or false when the path has
// no file name component (a root, "." or "..").
func FileName(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	name := filepath.Base(filepath.Clean(path))
	switch name {
	case ".", "..", string(filepath.Separator):
		return "", false
	}
	return name, true
}

// RelativeUnder returns path relative to root, or false when path is
// not inside root. Root itself yields ".".
func RelativeUnder(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// RelativeParent returns the directory holding path, relative to root.
// It is empty when path is not under root or sits directly in it.
func RelativeParent(root, path string) string {
	rel, ok := RelativeUnder(root, filepath.Dir(path))
	if !ok || rel == "." {
		return ""
	}
	return rel
}
