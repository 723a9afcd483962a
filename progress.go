package s3

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	// ReadChunkSize is the chunk size WriteTo drains the file with.
	ReadChunkSize = 8192

	// ProgressInterval is the minimum time between two progress events.
	// The event that reaches the end of the file is never held back.
	ProgressInterval = 100 * time.Millisecond
)

// Progress is a snapshot of how far a ProgressReader has read.
type Progress struct {
	Path      string
	BytesRead int64
	Total     int64
	Time      time.Time
}

// Percent returns BytesRead relative to Total in percent. An empty file is
// complete from the start.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 100
	}

	return float64(p.BytesRead) / float64(p.Total) * 100
}

// Done reports whether every byte has been read.
func (p Progress) Done() bool {
	return p.BytesRead >= p.Total
}

// Observer receives progress events of an upload.
type Observer interface {
	OnProgress(Progress)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Progress)

// OnProgress implements the Observer interface.
func (f ObserverFunc) OnProgress(p Progress) {
	f(p)
}

// NopObserver discards all progress events.
type NopObserver struct{}

// OnProgress implements the Observer interface.
func (NopObserver) OnProgress(Progress) {}

// ProgressReader streams a file and reports how much of it has been read.
// It owns the file handle; Close releases it exactly once no matter how many
// times it is called.
type ProgressReader struct {
	file     *os.File
	path     string
	total    int64
	observer Observer
	now      func() time.Time

	mu         sync.Mutex
	read       int64
	lastReport time.Time
	completed  bool

	closeOnce sync.Once
	closeErr  error
}

// NewProgressReader opens path for streaming. A nil observer discards events,
// a nil clock falls back to time.Now.
func NewProgressReader(path string, observer Observer, now func() time.Time) (*ProgressReader, error) {
	const errMessage = "failed to open source file: %w"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(errMessage, err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf(errMessage, err)
	}

	if observer == nil {
		observer = NopObserver{}
	}

	if now == nil {
		now = time.Now
	}

	return &ProgressReader{
		file:     f,
		path:     path,
		total:    stat.Size(),
		observer: observer,
		now:      now,
	}, nil
}

// Read implements io.Reader. The bytes returned are exactly those of the file.
func (r *ProgressReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n, err := r.file.Read(p)
	if n > 0 {
		r.advance(int64(n))
	}

	return n, err //nolint:wrapcheck // io.EOF must stay unwrapped
}

// WriteTo implements io.WriterTo by draining the file in ReadChunkSize chunks.
func (r *ProgressReader) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, ReadChunkSize)

	var written int64

	for {
		n, err := r.Read(buf)
		if n > 0 {
			m, werr := w.Write(buf[:n])
			written += int64(m)

			if werr != nil {
				return written, werr
			}

			if m != n {
				return written, io.ErrShortWrite
			}
		}

		if errors.Is(err, io.EOF) {
			return written, nil
		}

		if err != nil {
			return written, err
		}
	}
}

func (r *ProgressReader) advance(n int64) {
	r.mu.Lock()

	r.read += n
	now := r.now()

	report := false

	switch {
	case r.read >= r.total:
		report = !r.completed
		r.completed = true
	case now.Sub(r.lastReport) >= ProgressInterval:
		report = true
	}

	if report {
		r.lastReport = now
	}

	event := Progress{Path: r.path, BytesRead: r.read, Total: r.total, Time: now}

	r.mu.Unlock()

	if report {
		r.observer.OnProgress(event)
	}
}

// Len returns the size of the file when it was opened.
func (r *ProgressReader) Len() int64 {
	return r.total
}

// Progress returns the current read state.
func (r *ProgressReader) Progress() Progress {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Progress{Path: r.path, BytesRead: r.read, Total: r.total, Time: r.lastReport}
}

// Close closes the underlying file. Only the first call has an effect.
func (r *ProgressReader) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.file.Close()
	})

	return r.closeErr
}
