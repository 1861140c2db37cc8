// Package magic provides deep inspection backed by a compiled libmagic
// signature database, driven through the file(1) front end.
//
// A Cookie is tuned for one kind of answer, mirroring libmagic flags:
// ModeMIMEType yields a MIME type such as "application/x-rar", while
// ModeExtension yields slash separated extension candidates such as
// "jpeg/jpg/jpe/jfif", or "???" when libmagic knows none.
package magic

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/rs/zerolog"
)

// Mode selects what a Cookie reports.
type Mode int

const (
	ModeMIMEType Mode = iota
	ModeExtension
)

func (m Mode) String() string {
	if m == ModeExtension {
		return "extension"
	}
	return "mime-type"
}

func (m Mode) flag() string {
	if m == ModeExtension {
		return "--extension"
	}
	return "--mime-type"
}

// NoExtension is what libmagic reports when it has no extension for a file.
const NoExtension = "???"

// DefaultBinary is the file(1) executable looked up on PATH.
const DefaultBinary = "file"

// Runner executes a command and returns its standard output.
type Runner func(name string, args ...string) ([]byte, error)

func execRunner(name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil && stderr.Len() > 0 {
		return out, errors.Wrap(err, errors.ErrInspectorFailed, strings.TrimSpace(stderr.String()))
	}
	return out, err
}

// Cookie is a handle on a loaded magic database.
type Cookie struct {
	binary string
	dbFile string
	mode   Mode
	run    Runner
	logger zerolog.Logger
}

// Option configures a Cookie.
type Option func(*Cookie)

// WithBinary uses a different file(1) executable.
func WithBinary(binary string) Option {
	return func(c *Cookie) {
		c.binary = binary
	}
}

// WithRunner replaces command execution, mainly for tests.
func WithRunner(run Runner) Option {
	return func(c *Cookie) {
		c.run = run
	}
}

// Open loads dbFile for inspections in the given mode. It fails when
// the database cannot be read or the file(1) executable is missing.
func Open(dbFile string, mode Mode, opts ...Option) (*Cookie, error) {
	c := &Cookie{
		binary: DefaultBinary,
		dbFile: dbFile,
		mode:   mode,
		logger: logging.GetLogger("magic"),
	}
	for _, opt := range opts {
		opt(c)
	}

	info, err := os.Stat(dbFile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInspectorUnavailable, "could not load magic database from %s", dbFile)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrInspectorUnavailable, "could not load magic database from %s: is a directory", dbFile)
	}

	if c.run == nil {
		resolved, err := exec.LookPath(c.binary)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInspectorUnavailable, "magic front end %q not found", c.binary)
		}
		c.binary = resolved
		c.run = execRunner
	}

	c.logger.Debug().
		Str("db", dbFile).
		Stringer("mode", mode).
		Msg("Magic database loaded")
	return c, nil
}

// Mode reports what the cookie is tuned for.
func (c *Cookie) Mode() Mode {
	return c.mode
}

// Inspect runs the database against path.
func (c *Cookie) Inspect(path string) (string, error) {
	out, err := c.run(c.binary, "--brief", "--no-pad", "-E", "--magic-file", c.dbFile, c.mode.flag(), "--", path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInspectorFailed, "magic inspection of %s failed", path)
	}

	result := strings.TrimRight(string(out), "\r\n")
	if result == "" {
		return "", errors.Newf(errors.ErrInspectorFailed, "magic inspection of %s returned nothing", path)
	}
	return result, nil
}

var _ types.DeepInspector = (*Cookie)(nil)
