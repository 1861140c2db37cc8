package progress

import (
	"io"
	"os"

	"github.com/arthur-debert/classifiles/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// Reporter receives progress for one run.
type Reporter interface {
	Start(title string, total int)
	Increment()
	Stop()
}

// Noop discards all progress.
type Noop struct{}

func (Noop) Start(string, int) {}
func (Noop) Increment()        {}
func (Noop) Stop()             {}

// Bar draws a pterm progress bar.
type Bar struct {
	writer io.Writer
	bar    *pterm.ProgressbarPrinter
	logger zerolog.Logger
}

// NewBar creates a bar drawing on w.
func NewBar(w io.Writer) *Bar {
	return &Bar{writer: w, logger: logging.GetLogger("progress")}
}

func (b *Bar) Start(title string, total int) {
	if total <= 0 {
		return
	}
	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithWriter(b.writer).
		WithRemoveWhenDone(true).
		Start()
	if err != nil {
		b.logger.Debug().Err(err).Msg("Progress bar unavailable")
		return
	}
	b.bar = bar
}

func (b *Bar) Increment() {
	if b.bar != nil {
		b.bar.Increment()
	}
}

func (b *Bar) Stop() {
	if b.bar != nil {
		_, _ = b.bar.Stop()
		b.bar = nil
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ForFile returns a Bar on f when it is a terminal, Noop otherwise.
func ForFile(f *os.File) Reporter {
	if !IsTerminal(f) {
		return Noop{}
	}
	return NewBar(f)
}
