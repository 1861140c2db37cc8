// Package placer turns a classification result into a symlink under the
// output root: <output>/<mime or "unknown">/<relative parent>/<name>.
//
// The placer never replaces an existing entry. When the candidate name is
// taken it keeps the stem, appends "-" and a random suffix, and tries
// again, up to a configurable number of attempts.
package placer

import (
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/arthur-debert/classifiles/pkg/paths"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// RandomNameLength is the length of synthesized names and suffixes
	RandomNameLength = 6

	// DefaultMaxAttempts bounds the collision loop
	DefaultMaxAttempts = 1000

	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Rand is the randomness the placer draws names from.
type Rand interface {
	IntN(n int) int
}

// Placer creates the output symlinks for a run. It is not safe for concurrent use.
type Placer struct {
	fs          types.FS
	rand        Rand
	maxAttempts int
	logger      zerolog.Logger
}

// Option configures a Placer.
type Option func(*Placer)

// WithRand replaces the random source.
func WithRand(r Rand) Option {
	return func(p *Placer) {
		p.rand = r
	}
}

// WithMaxAttempts bounds how many fresh names are tried after a collision.
func WithMaxAttempts(n int) Option {
	return func(p *Placer) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// New creates a Placer writing through fs.
func New(fs types.FS, opts ...Option) *Placer {
	p := &Placer{
		fs:          fs,
		rand:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		maxAttempts: DefaultMaxAttempts,
		logger:      logging.GetLogger("placer"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Place creates one new symlink for source and returns its path. The link
// points at source exactly as given.
func (p *Placer) Place(source, inputRoot, outputRoot string, fileType types.FileType) (string, error) {
	dir := p.TargetDir(source, inputRoot, outputRoot, fileType)
	if err := p.fs.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	name := p.BaseName(source, fileType)
	target := filepath.Join(dir, name)

	for attempt := 0; ; attempt++ {
		taken, err := p.exists(target)
		if err != nil {
			return "", err
		}
		if !taken {
			break
		}
		if attempt >= p.maxAttempts {
			return "", errors.Newf(errors.ErrPlacementExhausted,
				"no free name for %s in %s after %d attempts", source, dir, p.maxAttempts).
				WithDetail("dir", dir).
				WithDetail("name", name)
		}
		name = p.nextName(name)
		target = filepath.Join(dir, name)
	}

	if err := p.fs.Symlink(source, target); err != nil {
		return "", errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s", target)
	}

	p.logger.Debug().Str("source", source).Str("link", target).Msg("Created symlink")
	return target, nil
}

// TargetDir is the directory a source of the given type is linked into.
func (p *Placer) TargetDir(source, inputRoot, outputRoot string, fileType types.FileType) string {
	dir := filepath.Join(outputRoot, fileType.Category())
	if rel := paths.RelativeParent(inputRoot, source); rel != "" {
		dir = filepath.Join(dir, rel)
	}
	return dir
}

// BaseName is the first candidate link name for source.
func (p *Placer) BaseName(source string, fileType types.FileType) string {
	name, ok := paths.FileName(source)
	if !ok {
		name = p.randomName()
	}
	return withExt(name, fileType)
}

// withExt appends the resolved extension unless the name already ends in it.
func withExt(name string, fileType types.FileType) string {
	if !fileType.HasExt() {
		return name
	}
	if ext, ok := currentExt(name); ok && ext == fileType.Ext {
		return name
	}
	return name + "." + fileType.Ext
}

func currentExt(name string) (string, bool) {
	_, ext, ok := paths.SplitExt(name)
	return ext, ok
}

// nextName derives a fresh candidate from a taken one. Every name has a
// non-empty stem since a leading dot never starts an extension.
func (p *Placer) nextName(taken string) string {
	stem, ext, hasExt := paths.SplitExt(taken)
	next := stem + "-" + p.randomName()
	if hasExt {
		next += "." + ext
	}
	return next
}

func (p *Placer) randomName() string {
	buf := make([]byte, RandomNameLength)
	for i := range buf {
		buf[i] = alphanumeric[p.rand.IntN(len(alphanumeric))]
	}
	return string(buf)
}

// exists is a link-aware existence test: dangling symlinks count as taken.
func (p *Placer) exists(path string) (bool, error) {
	_, err := p.fs.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", path)
}
