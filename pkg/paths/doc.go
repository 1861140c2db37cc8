// Package paths provides centralized path handling for classifiles.
//
// It covers two concerns:
//
//   - File name arithmetic shared by the placer and the backup codec
//     (stem/extension splitting, file name extraction, relative parents).
//   - XDG Base Directory locations used for configuration, logs and
//     discovery of the shared mime-info glob database.
//
// # Environment Variables
//
//   - CLASSIFILES_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/classifiles)
//   - CLASSIFILES_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/classifiles)
package paths
