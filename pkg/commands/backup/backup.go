package backup

import (
	"github.com/arthur-debert/classifiles/pkg/backup"
	"github.com/arthur-debert/classifiles/pkg/commands/internal"
	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/progress"
	"github.com/arthur-debert/classifiles/pkg/types"
)

// BackupOptions holds options for the backup command
type BackupOptions struct {
	InputPath  string
	OutputPath string

	FileSystem types.FS
	Progress   progress.Reporter
}

// Backup mirrors the directories of InputPath into OutputPath and stores
// every symlink as a .lns file. Regular files are not copied.
func Backup(opts BackupOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.backup")
	done := logging.LogOperationStart(logger, "backup")
	defer done()

	env := internal.NewEnv(opts.FileSystem, opts.Progress)
	result := types.NewRunResult("backup", opts.InputPath, opts.OutputPath)

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

	enc := backup.NewEncoder(env.FS)
	result.Total, err = internal.Traverse(env, "Backing up", opts.InputPath, func(entry types.Entry) error {
		action, err := enc.Encode(opts.InputPath, opts.OutputPath, entry)
		if err != nil {
			return err
		}
		tally(result, action)
		return nil
	})
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("symlinks", result.Symlinks).
		Int("directories", result.Directories).
		Msg("Backup complete")
	return result, nil
}

func tally(result *types.RunResult, action backup.Action) {
	switch action {
	case backup.ActionDir:
		result.Directories++
	case backup.ActionLink:
		result.Symlinks++
	default:
		result.Skipped++
	}
}
