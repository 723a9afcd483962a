package handlers

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/Clarilab/s3-upload"
)

const bytesPerMB = 1024 * 1024

// consoleObserver prints upload progress as a single line. On a terminal the
// line is redrawn for every event, otherwise only the final line is printed.
type consoleObserver struct {
	mu          sync.Mutex
	out         io.Writer
	interactive bool
	open        bool
}

func newConsoleObserver(out io.Writer, interactive bool) *consoleObserver {
	return &consoleObserver{out: out, interactive: interactive}
}

func (o *consoleObserver) OnProgress(p s3.Progress) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.interactive {
		if p.Done() {
			fmt.Fprint(o.out, progressLine(p))
			o.open = true
		}

		return
	}

	fmt.Fprintf(o.out, "\r%s", progressLine(p))

	o.open = true
}

// Finish terminates a progress line that is still open.
func (o *consoleObserver) Finish() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.open {
		fmt.Fprintln(o.out)

		o.open = false
	}
}

func progressLine(p s3.Progress) string {
	return fmt.Sprintf("Uploading %s... %.1f%% (%.2f/%.2f MB)",
		p.Path,
		p.Percent(),
		float64(p.BytesRead)/bytesPerMB,
		float64(p.Total)/bytesPerMB,
	)
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
