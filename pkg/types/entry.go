package types

import "io/fs"

// EntryKind classifies a filesystem entry found during traversal.
type EntryKind int

const (
	EntryOther EntryKind = iota
	EntryFile
	EntryDir
	EntrySymlink
)

var entryKindNames = []string{
	"other",
	"file",
	"dir",
	"symlink",
}

func (k EntryKind) String() string {
	if int(k) < 0 || int(k) >= len(entryKindNames) {
		return "other"
	}
	return entryKindNames[k]
}

// KindOf maps the mode bits of an lstat result to an EntryKind.
func KindOf(mode fs.FileMode) EntryKind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return EntrySymlink
	case mode.IsDir():
		return EntryDir
	case mode.IsRegular():
		return EntryFile
	default:
		return EntryOther
	}
}

// Entry is a single record yielded by the directory walker.
type Entry struct {
	Path string
	Kind EntryKind
}
