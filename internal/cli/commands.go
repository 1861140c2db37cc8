package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/classifiles/internal/version"
	"github.com/arthur-debert/classifiles/pkg/commands"
	"github.com/arthur-debert/classifiles/pkg/config"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/progress"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbosity  int
	configFile string
	quiet      bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "classifiles",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// Anything that is not a known verb lands here.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), MsgInvalidVerb)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, MsgFlagQuiet)

	rootCmd.AddCommand(newScanCmd(flags))
	rootCmd.AddCommand(newBackupCmd(flags))
	rootCmd.AddCommand(newRestoreCmd(flags))
	rootCmd.AddCommand(newGenConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// inputOutputArgs reports the first missing positional argument.
func inputOutputArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) < 1:
		return fmt.Errorf("%s", MsgMissingInput)
	case len(args) < 2:
		return fmt.Errorf("%s", MsgMissingOutput)
	}
	return nil
}

// reporterFor draws progress only on a terminal.
func reporterFor(w io.Writer) progress.Reporter {
	if f, ok := w.(*os.File); ok {
		return progress.ForFile(f)
	}
	return progress.Noop{}
}

func printSummary(cmd *cobra.Command, flags *rootFlags, result *types.RunResult) {
	if flags.quiet || result == nil {
		return
	}
	out := cmd.OutOrStdout()
	plain := true
	if f, ok := out.(*os.File); ok {
		plain = !progress.IsTerminal(f)
	}
	_, _ = fmt.Fprintln(out, progress.Summary(result, plain))
}

func loadConfig(cmd *cobra.Command, flags *rootFlags) *config.Config {
	cfg, source := config.LoadOrDefault(flags.configFile)
	if source != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigFromFile, source)
	} else {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), MsgConfigDefault)
	}
	return cfg
}

func newScanCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <input-path> <output-path>",
		Short: MsgScanShort,
		Long: `Scan classifies the file at input-path, or every regular file below it,
and creates a symlink to each under output-path/<mime type>/. Files whose
type cannot be determined go under output-path/unknown/. Existing entries
are never overwritten; a clashing name gets a random suffix.

output-path must be an existing directory.`,
		Example: `  # Sort a downloads folder
  classifiles scan ~/Downloads ~/sorted`,
		Args: inputOutputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd, flags)

			result, err := commands.Scan(commands.ScanOptions{
				InputPath:  args[0],
				OutputPath: args[1],
				Config:     cfg,
				Progress:   reporterFor(cmd.ErrOrStderr()),
			})
			printSummary(cmd, flags, result)
			return err
		},
	}
}

func newBackupCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "backup <input-path> <output-path>",
		Short: MsgBackupShort,
		Long: `Backup recreates the directories of input-path under output-path and
writes every symlink as <name>.lns holding the link target followed by a
newline. Regular files are not copied.`,
		Example: `  classifiles backup ~/links /mnt/usb/links`,
		Args:    inputOutputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Backup(commands.BackupOptions{
				InputPath:  args[0],
				OutputPath: args[1],
				Progress:   reporterFor(cmd.ErrOrStderr()),
			})
			printSummary(cmd, flags, result)
			return err
		},
	}
}

func newRestoreCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <input-path> <output-path>",
		Short: MsgRestoreShort,
		Long: `Restore reads a tree written by backup and recreates its directories and
symlinks under output-path. Files without the .lns extension are ignored.`,
		Example: `  classifiles restore /mnt/usb/links ~/links`,
		Args:    inputOutputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Restore(commands.RestoreOptions{
				InputPath:  args[0],
				OutputPath: args[1],
				Progress:   reporterFor(cmd.ErrOrStderr()),
			})
			printSummary(cmd, flags, result)
			return err
		},
	}
}

func newGenConfigCmd(flags *rootFlags) *cobra.Command {
	var writePath string

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long: `Genconfig prints the configuration classifiles would use, built from the
defaults, the config file and CLASSIFILES_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := config.LoadOrDefault(flags.configFile)

			result, err := commands.GenConfig(commands.GenConfigOptions{
				Config:    cfg,
				WritePath: writePath,
			})
			if err != nil {
				return err
			}

			if result.FileWritten != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigWritten, result.FileWritten)
				return nil
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), result.Content)
			return nil
		},
	}
	cmd.Flags().StringVarP(&writePath, "write", "w", "", MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "classifiles version %s\n", version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}
