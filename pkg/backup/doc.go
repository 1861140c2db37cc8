// Package backup converts a tree's directories and symlinks into a form
// that storage without symlink support can hold, and back.
//
// Encoding mirrors every directory and replaces every symlink "name" with
// a regular file "name.lns" whose content is the raw link target followed
// by a single newline. Regular files are not part of a backup. Decoding
// recreates the directories and turns every "*.lns" file back into a
// symlink; other files are ignored.
//
// Targets are handled as raw bytes: they need not be valid UTF-8.
package backup
