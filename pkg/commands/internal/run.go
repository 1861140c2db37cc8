// Package internal holds the run plumbing shared by scan, backup and
// restore: precondition checks, the counted traversal and classifier
// assembly.
package internal

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/filesystem"
	"github.com/arthur-debert/classifiles/pkg/paths"
	"github.com/arthur-debert/classifiles/pkg/progress"
	"github.com/arthur-debert/classifiles/pkg/types"
	"github.com/arthur-debert/classifiles/pkg/walker"
)

// Env is the resolved set of collaborators for one run.
type Env struct {
	FS       types.FS
	Progress progress.Reporter
}

// NewEnv fills in defaults for nil collaborators.
func NewEnv(fs types.FS, reporter progress.Reporter) Env {
	if fs == nil {
		fs = filesystem.NewOS()
	}
	if reporter == nil {
		reporter = progress.Noop{}
	}
	return Env{FS: fs, Progress: reporter}
}

// CheckOutputDir fails unless output is an existing directory. It runs
// before any work so a bad destination leaves nothing behind.
func CheckOutputDir(fs types.FS, output string) error {
	info, err := fs.Stat(output)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNotADirectory, "output path %s does not exist", output).
				WithDetail("path", output)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to access output path %s", output)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrNotADirectory, "output path %s is not a directory", output).
			WithDetail("path", output)
	}
	return nil
}

// CheckInput returns what input is, failing when it does not exist.
func CheckInput(fs types.FS, input string) (os.FileInfo, error) {
	info, err := fs.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "input path %s does not exist", input).
				WithDetail("path", input)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to access input path %s", input)
	}
	return info, nil
}

// CheckNotNested fails when output is input or lies below it.
func CheckNotNested(input, output string) error {
	inAbs, err := filepath.Abs(input)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve input path %s", input)
	}
	outAbs, err := filepath.Abs(output)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve output path %s", output)
	}
	if _, inside := paths.RelativeUnder(inAbs, outAbs); inside {
		return errors.Newf(errors.ErrInvalidInput, "output path %s is inside input path %s", output, input).
			WithDetail("input", input).
			WithDetail("output", output)
	}
	return nil
}

// Traverse counts the entries under root, then walks them again calling
// visit on each while advancing the progress reporter. The two passes
// are independent traversals. It returns the counted total.
func Traverse(env Env, title, root string, visit walker.VisitFunc) (int, error) {
	w := walker.New(env.FS)

	total := w.Count(root)
	env.Progress.Start(title, total)
	defer env.Progress.Stop()

	err := w.Walk(root, func(entry types.Entry) error {
		defer env.Progress.Increment()
		return visit(entry)
	})
	return total, err
}
