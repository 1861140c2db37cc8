package restore

import (
	"github.com/arthur-debert/classifiles/pkg/backup"
	"github.com/arthur-debert/classifiles/pkg/commands/internal"
	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/progress"
	"github.com/arthur-debert/classifiles/pkg/types"
)

// RestoreOptions holds options for the restore command
type RestoreOptions struct {
	// InputPath is a tree written by backup
	InputPath  string
	OutputPath string

	FileSystem types.FS
	Progress   progress.Reporter
}

// Restore recreates the directories and symlinks stored in a backup tree.
// Files without the .lns extension are ignored.
func Restore(opts RestoreOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.restore")
	done := logging.LogOperationStart(logger, "restore")
	defer done()

	env := internal.NewEnv(opts.FileSystem, opts.Progress)
	result := types.NewRunResult("restore", opts.InputPath, opts.OutputPath)

	if err := internal.CheckOutputDir(env.FS, opts.OutputPath); err != nil {
		return nil, err
	}
	info, err := internal.CheckInput(env.FS, opts.InputPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "input path %s is not a directory", opts.InputPath)
	}
	if err := internal.CheckNotNested(opts.InputPath, opts.OutputPath); err != nil {
		return nil, err
	}

	dec := backup.NewDecoder(env.FS)
	result.Total, err = internal.Traverse(env, "Restoring", opts.InputPath, func(entry types.Entry) error {
		action, err := dec.Decode(opts.InputPath, opts.OutputPath, entry)
		if err != nil {
			return err
		}
		switch action {
		case backup.ActionDir:
			result.Directories++
		case backup.ActionLink:
			result.Symlinks++
		default:
			result.Skipped++
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("symlinks", result.Symlinks).
		Int("directories", result.Directories).
		Msg("Restore complete")
	return result, nil
}
