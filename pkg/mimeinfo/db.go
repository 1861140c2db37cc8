package mimeinfo

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/beevik/etree"
	"github.com/rs/zerolog"
)

// DB is the extension database. It is not safe for concurrent use.
type DB struct {
	fs     types.FS
	root   string
	static StaticTable
	cache  map[string]Mime
	logger zerolog.Logger
}

// Option configures a DB.
type Option func(*DB)

// WithStaticTable replaces the built-in secondary table.
func WithStaticTable(table StaticTable) Option {
	return func(db *DB) {
		db.static = table
	}
}

// New creates a DB reading glob records from root. A root that is
// missing or not a directory disables disk lookups.
func New(fs types.FS, root string, opts ...Option) *DB {
	db := &DB{
		fs:     fs,
		static: DefaultStaticTable(),
		cache:  make(map[string]Mime),
		logger: logging.GetLogger("mimeinfo"),
	}
	for _, opt := range opts {
		opt(db)
	}

	info, err := fs.Stat(root)
	switch {
	case err != nil:
		db.logger.Warn().Str("root", root).Msg("Ignoring non-existing mime info database root")
	case !info.IsDir():
		db.logger.Warn().Str("root", root).Msg("Ignoring mime info database root, it is not a directory")
	default:
		db.root = root
	}

	return db
}

// Root returns the glob database directory in use, or "" if disabled.
func (db *DB) Root() string {
	return db.root
}

// Get resolves mime, consulting the glob database and then the static
// table on the first call for a given mime and the cache afterwards.
func (db *DB) Get(mime string) Mime {
	if cached, ok := db.cache[mime]; ok {
		return cached
	}

	resolved := Unknown
	source := "none"
	if db.root != "" {
		resolved = db.loadRecord(mime)
		source = "glob database"
	}
	if resolved.IsUnknown() && db.static != nil {
		resolved = db.lookupStatic(mime)
		source = "static table"
	}

	db.cache[mime] = resolved
	db.logger.Debug().
		Str("mime", mime).
		Str("source", source).
		Stringer("result", resolved).
		Msg("Resolved mime type")
	return resolved
}

// Set records ext as the canonical extension of mime, replacing any
// cached value.
func (db *DB) Set(mime, ext string) {
	db.cache[mime] = WithExt(ext)
}

// Len returns the number of cached mime types.
func (db *DB) Len() int {
	return len(db.cache)
}

func (db *DB) lookupStatic(mime string) Mime {
	exts, ok := db.static.Extensions(mime)
	if !ok {
		return Unknown
	}
	if len(exts) == 0 {
		return Generic
	}
	return WithExt(exts[0])
}

func (db *DB) loadRecord(mime string) Mime {
	recordPath := filepath.Join(db.root, mime+".xml")

	data, err := db.fs.ReadFile(recordPath)
	if err != nil {
		return Unknown
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		db.logger.Warn().Err(err).Str("path", recordPath).Msg("Failed to parse mime info record")
		return Unknown
	}

	return extractGlob(doc)
}

// extractGlob reads the first glob element, in document order, of a
// mime-type record.
func extractGlob(doc *etree.Document) Mime {
	glob := firstElement(&doc.Element, "glob")
	if glob == nil {
		return Generic
	}
	pattern := glob.SelectAttr("pattern")
	if pattern == nil {
		return Generic
	}
	return WithExt(strings.TrimPrefix(pattern.Value, "*."))
}

func firstElement(parent *etree.Element, tag string) *etree.Element {
	for _, child := range parent.ChildElements() {
		if child.Tag == tag {
			return child
		}
		if found := firstElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}
