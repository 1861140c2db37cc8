// Package walker is the directory traversal used by scan, backup and
// restore. It yields entries lazily, parents before children, and follows
// no symlink except a symlinked root. Entries that cannot be stat'ed or read are skipped
// rather than reported: traversal failures are not processing failures.
package walker

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/rs/zerolog"
)

// ErrStop can be returned from a visit function to end the walk early
// without reporting an error.
var ErrStop = errors.New("stop walking")

// VisitFunc is called once per entry. Returning an error aborts the walk.
type VisitFunc func(entry types.Entry) error

// Walker produces restartable walks over a filesystem.
type Walker struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Walker over fs.
func New(fs types.FS) *Walker {
	return &Walker{
		fs:     fs,
		logger: logging.GetLogger("walker"),
	}
}

// maxRootHops bounds how many symlinks are followed to reach the root directory.
const maxRootHops = 40

// Walk visits root and every entry below it. Each call is an independent
// traversal; nothing is cached between calls.
//
// A root that is a symlink to a directory is followed. Entries are still
// reported under root as given, so a walk of "alias" yields "alias/a.txt".
func (w *Walker) Walk(root string, visit VisitFunc) error {
	resolved := w.resolveRoot(root)

	err := w.fs.Walk(resolved, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			w.logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}
		if info == nil {
			return nil
		}
		return visit(types.Entry{Path: underRoot(root, resolved, path), Kind: types.KindOf(info.Mode())})
	})
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

// resolveRoot follows root while it is a symlink to a directory.
func (w *Walker) resolveRoot(root string) string {
	current := root
	for hop := 0; hop < maxRootHops; hop++ {
		info, err := w.fs.Lstat(current)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return current
		}
		if target, err := w.fs.Stat(current); err != nil || !target.IsDir() {
			return current
		}
		link, err := w.fs.Readlink(current)
		if err != nil {
			return current
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(current), link)
		}
		w.logger.Debug().Str("root", current).Str("target", link).Msg("Following symlinked root")
		current = link
	}
	return current
}

// underRoot rewrites a path found below resolved into the same path below root.
func underRoot(root, resolved, path string) string {
	if resolved == root {
		return path
	}
	rel, err := filepath.Rel(resolved, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

// WalkKind visits only entries of the given kinds.
func (w *Walker) WalkKind(root string, visit VisitFunc, kinds ...types.EntryKind) error {
	return w.Walk(root, func(entry types.Entry) error {
		for _, kind := range kinds {
			if entry.Kind == kind {
				return visit(entry)
			}
		}
		return nil
	})
}

// Count runs a separate traversal and returns how many entries of the
// given kinds it saw. With no kinds every entry is counted.
func (w *Walker) Count(root string, kinds ...types.EntryKind) int {
	total := 0
	count := func(types.Entry) error {
		total++
		return nil
	}

	if len(kinds) == 0 {
		_ = w.Walk(root, count)
	} else {
		_ = w.WalkKind(root, count, kinds...)
	}

	w.logger.Debug().Str("root", root).Int("total", total).Msg("Counted entries")
	return total
}
