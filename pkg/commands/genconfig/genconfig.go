package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/classifiles/pkg/config"
	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/logging"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Config is rendered as is; nil means the built-in defaults
	Config *config.Config

	// WritePath, when set, receives the rendered file
	WritePath string
}

// GenConfigResult is the rendered configuration and where it went
type GenConfigResult struct {
	Content     string
	FileWritten string
}

// GenConfig renders the configuration as YAML and optionally writes it.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	data, err := config.Render(cfg)
	if err != nil {
		return nil, err
	}
	result := &GenConfigResult{Content: string(data)}

	if opts.WritePath == "" {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	if _, err := os.Stat(opts.WritePath); err == nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "refusing to overwrite %s", opts.WritePath)
	}
	if err := os.MkdirAll(filepath.Dir(opts.WritePath), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", opts.WritePath)
	}
	if err := os.WriteFile(opts.WritePath, data, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", opts.WritePath)
	}

	logger.Info().Str("path", opts.WritePath).Msg("Wrote configuration file")
	result.FileWritten = opts.WritePath
	return result, nil
}
