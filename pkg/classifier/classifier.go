// Package classifier resolves a path to a FileType by running the
// detection cascade: quick signature sniff, optional deep MIME
// refinement for configured trigger types, then extension lookup with a
// deep-inspection fallback whose answer is written back into the
// extension database.
//
// The classifier never fails. Inspector errors degrade to the best value
// already known and are only traced.
package classifier

import (
	"strings"

	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/mimeinfo"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/rs/zerolog"
)

// ExtensionDB is the part of mimeinfo.DB the classifier relies on.
type ExtensionDB interface {
	Get(mime string) mimeinfo.Mime
	Set(mime, ext string)
}

// extensionSeparator splits the alternatives reported by an extension inspector.
const extensionSeparator = "/"

// noExtension is the inspector's answer when it knows no extension.
const noExtension = "???"

// Classifier runs the cascade for one run. It is not safe for concurrent use.
type Classifier struct {
	oracle        types.SignatureOracle
	db            ExtensionDB
	mimeInspector types.DeepInspector
	extInspector  types.DeepInspector
	triggers      map[string]struct{}
	logger        zerolog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithMIMEInspector sets the handle used to refine trigger MIME types.
// A nil inspector leaves the handle absent.
func WithMIMEInspector(inspector types.DeepInspector) Option {
	return func(c *Classifier) {
		c.mimeInspector = inspector
	}
}

// WithExtensionInspector sets the handle used to guess extensions for
// refined MIME types. A nil inspector leaves the handle absent.
func WithExtensionInspector(inspector types.DeepInspector) Option {
	return func(c *Classifier) {
		c.extInspector = inspector
	}
}

// New creates a Classifier. triggers lists the MIME types for which deep
// refinement is attempted.
func New(oracle types.SignatureOracle, db ExtensionDB, triggers []string, opts ...Option) *Classifier {
	c := &Classifier{
		oracle:   oracle,
		db:       db,
		triggers: make(map[string]struct{}, len(triggers)),
		logger:   logging.GetLogger("classifier"),
	}
	for _, trigger := range triggers {
		c.triggers[trigger] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Triggers reports whether mime is in the trigger set.
func (c *Classifier) Triggers(mime string) bool {
	_, ok := c.triggers[mime]
	return ok
}

// Resolve classifies path.
func (c *Classifier) Resolve(path string) types.FileType {
	sniffed, ok := c.oracle.Detect(path)
	if !ok {
		c.logger.Info().Str("path", path).Msg("No match, file type unknown")
		return types.UnknownFileType()
	}

	mime, refined := c.refine(path, sniffed)
	c.logger.Info().Str("path", path).Str("mime", mime).Msg("File matches")

	ext, found := c.extension(path, mime, refined)
	if !found {
		return types.FileType{MIME: mime}
	}

	c.logger.Info().Str("path", path).Str("ext", ext).Msg("Guessed extension")
	return types.FileType{MIME: mime, Ext: ext}
}

// refine asks the MIME inspector for a better answer when sniffed is a
// trigger type. The boolean reports whether the inspector's answer was used.
func (c *Classifier) refine(path, sniffed string) (string, bool) {
	if !c.Triggers(sniffed) || c.mimeInspector == nil {
		return sniffed, false
	}

	c.logger.Info().Str("path", path).Str("mime", sniffed).Msg("Match can be further refined")

	refined, err := c.mimeInspector.Inspect(path)
	if err != nil {
		c.logger.Info().Err(err).Str("path", path).Msg("Deep inspection failed, keeping sniffed type")
		return sniffed, false
	}
	return refined, true
}

// extension resolves the extension for mime, falling back to the
// extension inspector only for deep-refined types.
func (c *Classifier) extension(path, mime string, refined bool) (string, bool) {
	if ext, ok := c.db.Get(mime).Ext(); ok {
		return ext, true
	}

	if !refined || c.extInspector == nil {
		return "", false
	}

	candidates, err := c.extInspector.Inspect(path)
	if err != nil {
		c.logger.Info().Err(err).Str("path", path).Msg("Extension inspection failed")
		return "", false
	}

	ext := firstCandidate(candidates)
	if ext == "" {
		return "", false
	}

	// one inspection cannot report both mime and extension, so remember
	// the pairing for later files of the same type
	c.db.Set(mime, ext)
	return ext, true
}

// firstCandidate picks the first of the slash separated alternatives.
func firstCandidate(candidates string) string {
	if candidates == "" || candidates == noExtension {
		return ""
	}
	first, _, _ := strings.Cut(candidates, extensionSeparator)
	return first
}

var _ types.Resolver = (*Classifier)(nil)
