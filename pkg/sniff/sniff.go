// Package sniff is the quick content-signature check: it reads the head
// of a file and matches it against the mimetype signature tree.
package sniff

import (
	"strings"

	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

// Oracle implements types.SignatureOracle.
type Oracle struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates an Oracle reading files through fs.
func New(fs types.FS) *Oracle {
	return &Oracle{
		fs:     fs,
		logger: logging.GetLogger("sniff"),
	}
}

// Detect returns the MIME type of path without parameters, or false
// when the file cannot be read.
func (o *Oracle) Detect(path string) (string, bool) {
	f, err := o.fs.Open(path)
	if err != nil {
		o.logger.Debug().Err(err).Str("path", path).Msg("Cannot open file for sniffing")
		return "", false
	}
	defer func() { _ = f.Close() }()

	detected, err := mimetype.DetectReader(f)
	if err != nil || detected == nil {
		o.logger.Debug().Err(err).Str("path", path).Msg("Sniffing failed")
		return "", false
	}

	mime := baseType(detected.String())
	if mime == "" {
		return "", false
	}
	return mime, true
}

// baseType drops MIME parameters such as "; charset=utf-8".
func baseType(mime string) string {
	base, _, _ := strings.Cut(mime, ";")
	return strings.TrimSpace(base)
}

var _ types.SignatureOracle = (*Oracle)(nil)
