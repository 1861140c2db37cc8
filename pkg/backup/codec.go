package backup

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/paths"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// LinkExt marks a regular file standing in for a symlink
	LinkExt = "lns"

	linkSuffix = "." + LinkExt
	terminator = '\n'
)

// Action is what a codec did with one entry.
type Action int

const (
	ActionSkipped Action = iota
	ActionDir
	ActionLink
)

func (a Action) String() string {
	switch a {
	case ActionDir:
		return "dir"
	case ActionLink:
		return "link"
	default:
		return "skipped"
	}
}

// EncodeTarget renders a link target as .lns file content.
func EncodeTarget(target string) []byte {
	data := make([]byte, 0, len(target)+1)
	data = append(data, target...)
	return append(data, terminator)
}

// DecodeTarget recovers a link target from .lns file content, removing
// exactly one trailing newline if present.
func DecodeTarget(data []byte) string {
	return string(bytes.TrimSuffix(data, []byte{terminator}))
}

// IsLinkFile reports whether name is an encoded symlink.
func IsLinkFile(name string) bool {
	return paths.Ext(name) == LinkExt
}

type codec struct {
	fs     types.FS
	logger zerolog.Logger
}

// destination mirrors entry's path under outputRoot.
func (c *codec) destination(inputRoot, outputRoot, path string) (string, error) {
	rel, ok := paths.RelativeUnder(inputRoot, path)
	if !ok {
		return "", errors.Newf(errors.ErrRelativePath, "%s is not under %s", path, inputRoot).
			WithDetail("input_root", inputRoot)
	}
	return filepath.Join(outputRoot, rel), nil
}

func (c *codec) mkdir(dest string) error {
	if err := c.fs.MkdirAll(dest, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dest)
	}
	return nil
}

// Encoder is the backup direction.
type Encoder struct {
	codec
}

// NewEncoder creates an Encoder writing through fs.
func NewEncoder(fs types.FS) *Encoder {
	return &Encoder{codec{fs: fs, logger: logging.GetLogger("backup")}}
}

// Encode handles one walked entry of the tree rooted at inputRoot.
func (e *Encoder) Encode(inputRoot, outputRoot string, entry types.Entry) (Action, error) {
	switch entry.Kind {
	case types.EntryDir:
		dest, err := e.destination(inputRoot, outputRoot, entry.Path)
		if err != nil {
			return ActionSkipped, err
		}
		return ActionDir, e.mkdir(dest)

	case types.EntrySymlink:
		dest, err := e.destination(inputRoot, outputRoot, entry.Path)
		if err != nil {
			return ActionSkipped, err
		}
		if dest == filepath.Clean(outputRoot) {
			return ActionSkipped, errors.Newf(errors.ErrInvalidInput, "input root %s is itself a symlink", inputRoot)
		}

		target, err := e.fs.Readlink(entry.Path)
		if err != nil {
			return ActionSkipped, errors.Wrapf(err, errors.ErrSymlinkRead, "failed to read symlink %s", entry.Path)
		}

		dest += linkSuffix
		if err := e.fs.WriteFile(dest, EncodeTarget(target), 0644); err != nil {
			return ActionSkipped, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
		}
		e.logger.Debug().Str("link", entry.Path).Str("file", dest).Msg("Encoded symlink")
		return ActionLink, nil

	default:
		return ActionSkipped, nil
	}
}

// Decoder is the restore direction.
type Decoder struct {
	codec
}

// NewDecoder creates a Decoder writing through fs.
func NewDecoder(fs types.FS) *Decoder {
	return &Decoder{codec{fs: fs, logger: logging.GetLogger("restore")}}
}

// Decode handles one walked entry of the backup tree rooted at inputRoot.
func (d *Decoder) Decode(inputRoot, outputRoot string, entry types.Entry) (Action, error) {
	switch entry.Kind {
	case types.EntryDir:
		dest, err := d.destination(inputRoot, outputRoot, entry.Path)
		if err != nil {
			return ActionSkipped, err
		}
		return ActionDir, d.mkdir(dest)

	case types.EntryFile:
		if !IsLinkFile(filepath.Base(entry.Path)) {
			return ActionSkipped, nil
		}
		dest, err := d.destination(inputRoot, outputRoot, entry.Path)
		if err != nil {
			return ActionSkipped, err
		}

		data, err := d.fs.ReadFile(entry.Path)
		if err != nil {
			return ActionSkipped, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", entry.Path)
		}

		link := strings.TrimSuffix(dest, linkSuffix)
		if err := d.fs.Symlink(DecodeTarget(data), link); err != nil {
			return ActionSkipped, errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to create symlink %s", link)
		}
		d.logger.Debug().Str("file", entry.Path).Str("link", link).Msg("Restored symlink")
		return ActionLink, nil

	default:
		return ActionSkipped, nil
	}
}
