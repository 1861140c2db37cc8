// Package commands provides the high-level operations behind each CLI
// verb.
//
// Each command is implemented in its own subdirectory:
//   - scan/      - classify files and link them by type
//   - backup/    - encode a tree's directories and symlinks
//   - restore/   - rebuild symlinks from a backup tree
//   - genconfig/ - render the configuration
//   - internal/  - preconditions and the counted traversal
//
// This file re-exports the command functions.
package commands

import (
	"github.com/arthur-debert/classifiles/pkg/commands/backup"
	"github.com/arthur-debert/classifiles/pkg/commands/genconfig"
	"github.com/arthur-debert/classifiles/pkg/commands/restore"
	"github.com/arthur-debert/classifiles/pkg/commands/scan"
	"github.com/arthur-debert/classifiles/pkg/types"
)

// Scan classifies files and links them into per-type directories.
type ScanOptions = scan.ScanOptions

func Scan(opts ScanOptions) (*types.RunResult, error) {
	return scan.Scan(opts)
}

// Backup stores a tree's directories and symlinks as plain files.
type BackupOptions = backup.BackupOptions

func Backup(opts BackupOptions) (*types.RunResult, error) {
	return backup.Backup(opts)
}

// Restore rebuilds symlinks from a backup tree.
type RestoreOptions = restore.RestoreOptions

func Restore(opts RestoreOptions) (*types.RunResult, error) {
	return restore.Restore(opts)
}

// GenConfig renders the configuration as YAML.
type GenConfigOptions = genconfig.GenConfigOptions
type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
