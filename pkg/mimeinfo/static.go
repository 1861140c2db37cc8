package mimeinfo

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// StaticTable is the secondary mime to extension source.
type StaticTable interface {
	// Extensions returns the candidate extensions for mime, without dots.
	// The boolean is false when the table does not list mime at all.
	Extensions(mime string) ([]string, bool)
}

// MapTable is a StaticTable backed by a plain map.
type MapTable map[string][]string

func (t MapTable) Extensions(mime string) ([]string, bool) {
	exts, ok := t[mime]
	return exts, ok
}

// registryTable answers from the type tree built into mimetype.
type registryTable struct{}

// DefaultStaticTable returns the table compiled into the mimetype library.
func DefaultStaticTable() StaticTable {
	return registryTable{}
}

func (registryTable) Extensions(mime string) ([]string, bool) {
	node := mimetype.Lookup(mime)
	if node == nil {
		return nil, false
	}
	ext := strings.TrimPrefix(node.Extension(), ".")
	if ext == "" {
		return []string{}, true
	}
	return []string{ext}, true
}
