package scan

import (
	"github.com/arthur-debert/classifiles/pkg/commands/internal"
	"github.com/arthur-debert/classifiles/pkg/config"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/magic"
	"github.com/arthur-debert/classifiles/pkg/placer"
	"github.com/arthur-debert/classifiles/pkg/progress"
	"github.com/arthur-debert/classifiles/pkg/types"
)

// ScanOptions holds options for the scan command
type ScanOptions struct {
	// InputPath is a single file or a directory to classify
	InputPath string

	// OutputPath must be an existing directory
	OutputPath string

	Config     *config.Config
	FileSystem types.FS
	Progress   progress.Reporter

	// Resolver replaces the classifier built from Config
	Resolver types.Resolver

	PlacerOptions []placer.Option
	MagicOptions  []magic.Option
}

// Scan classifies every regular file under InputPath and links it into
// OutputPath under a directory named after its type. The first failure
// ends the run; links made before it stay in place.
func Scan(opts ScanOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.scan")
	done := logging.LogOperationStart(logger, "scan")
	defer done()

	env := internal.NewEnv(opts.FileSystem, opts.Progress)
	result := types.NewRunResult("scan", opts.InputPath, opts.OutputPath)

	if err := internal.CheckOutputDir(env.FS, opts.OutputPath); err != nil {
		return nil, err
	}
	info, err := internal.CheckInput(env.FS, opts.InputPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		if err := internal.CheckNotNested(opts.InputPath, opts.OutputPath); err != nil {
			return nil, err
		}
	}

	resolver := opts.Resolver
	if resolver == nil {
		cfg := opts.Config
		if cfg == nil {
			cfg = config.Default()
		}
		resolver = internal.NewClassifier(env.FS, cfg, opts.MagicOptions...)
	}
	p := placer.New(env.FS, opts.PlacerOptions...)

	place := func(path string) error {
		fileType := resolver.Resolve(path)
		dest, err := p.Place(path, opts.InputPath, opts.OutputPath, fileType)
		if err != nil {
			return err
		}
		result.Linked++
		result.ByCategory[fileType.Category()]++
		result.Created = append(result.Created, dest)
		return nil
	}

	if !info.IsDir() {
		logger.Debug().Str("path", opts.InputPath).Msg("Scanning single file")
		result.Total = 1
		if err := place(opts.InputPath); err != nil {
			return result, err
		}
		return result, nil
	}

	result.Total, err = internal.Traverse(env, "Scanning", opts.InputPath, func(entry types.Entry) error {
		switch entry.Kind {
		case types.EntryFile:
			return place(entry.Path)
		case types.EntryDir:
			result.Directories++
		default:
			result.Skipped++
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("linked", result.Linked).
		Int("skipped", result.Skipped).
		Msg("Scan complete")
	return result, nil
}
