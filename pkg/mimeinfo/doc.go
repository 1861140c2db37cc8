// Package mimeinfo resolves MIME type strings to canonical file extensions.
//
// Lookups consult, in order:
//
//  1. the shared-mime-info glob database: one XML record per type at
//     <root>/<mime-type>.xml whose first <glob pattern="*.ext"/> element
//     names the canonical extension;
//  2. a static table compiled into the binary.
//
// Every answer, including "unknown", is memoized for the lifetime of the
// DB, so a type's record is read from disk at most once per run. Set lets
// callers upgrade an entry with an extension learned elsewhere.
package mimeinfo
