package cli

// Short messages (one-liners)
const (
	MsgRootShort      = "Classify files by content type"
	MsgScanShort      = "Link files into per-type directories"
	MsgBackupShort    = "Store a tree's directories and symlinks as plain files"
	MsgRestoreShort   = "Rebuild symlinks from a backup tree"
	MsgGenConfigShort = "Print the effective configuration as YAML"
	MsgVersionShort   = "Print version information"

	MsgInvalidVerb    = "Error: invalid verb. Valid verbs are: scan, backup, restore"
	MsgMissingInput   = "missing input path argument"
	MsgMissingOutput  = "missing output path argument"
	MsgConfigFromFile = "Using configuration from %s\n"
	MsgConfigDefault  = "Using default configuration\n"
	MsgConfigWritten  = "Wrote configuration to %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "config file (default is ./config.yaml, then $XDG_CONFIG_HOME/classifiles/config.yaml)"
	MsgFlagWrite   = "write the configuration to this file instead of stdout"
	MsgFlagQuiet   = "do not print the run summary"
)

const MsgRootLong = `classifiles sorts files by what they contain rather than what they are
called. Every file found by scan is sniffed for its content type and a
symlink to it is placed under <output>/<mime type>/, keeping the file's
directory relative to the input.

backup and restore carry a tree's symlinks through storage that cannot
hold them: each link becomes a <name>.lns file containing its target.`
