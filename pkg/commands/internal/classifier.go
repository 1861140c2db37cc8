package internal

import (
	"github.com/arthur-debert/classifiles/pkg/classifier"
	"github.com/arthur-debert/classifiles/pkg/config"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/magic"
	"github.com/arthur-debert/classifiles/pkg/mimeinfo"
	"github.com/arthur-debert/classifiles/pkg/sniff"
	"github.com/arthur-debert/classifiles/pkg/types"
)

// NewClassifier wires the full cascade described by cfg. Deep inspection
// handles that fail to load are left out with a warning; classification
// still works without them.
func NewClassifier(fs types.FS, cfg *config.Config, magicOpts ...magic.Option) *classifier.Classifier {
	logger := logging.GetLogger("commands")

	db := mimeinfo.New(fs, cfg.MimeInfoDB.Root)

	var opts []classifier.Option
	if cookie, err := magic.Open(cfg.Libmagic.DBFile, magic.ModeMIMEType, magicOpts...); err != nil {
		logger.Warn().Err(err).Msg("Deep inspection for MIME types disabled")
	} else {
		opts = append(opts, classifier.WithMIMEInspector(cookie))
	}
	if cookie, err := magic.Open(cfg.Libmagic.DBFile, magic.ModeExtension, magicOpts...); err != nil {
		logger.Warn().Err(err).Msg("Deep inspection for extensions disabled")
	} else {
		opts = append(opts, classifier.WithExtensionInspector(cookie))
	}

	return classifier.New(sniff.New(fs), db, cfg.Libmagic.UsedFor, opts...)
}
