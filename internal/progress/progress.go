// Package progress prints per-file byte counts while streams are processed.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// DefaultInterval is the minimum time between two lines for the same file.
const DefaultInterval = 250 * time.Millisecond

// Reporter writes progress lines to an io.Writer, typically standard error.
// It is safe for concurrent use by several file workers.
type Reporter struct {
	mu       sync.Mutex
	out      io.Writer
	interval time.Duration
	now      func() time.Time
}

// New returns a Reporter writing to out at most once per interval and file.
func New(out io.Writer, interval time.Duration) *Reporter {
	return &Reporter{out: out, interval: interval, now: time.Now}
}

// Track returns a callback for the stream called name. The callback always
// prints once the processed count reaches a known total.
func (r *Reporter) Track(name string) func(processed, total int64) {
	var last time.Time

	return func(processed, total int64) {
		now := r.now()

		finished := total > 0 && processed >= total
		if !finished && now.Sub(last) < r.interval {
			return
		}

		last = now

		r.print(name, processed, total)
	}
}

func (r *Reporter) print(name string, processed, total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if total <= 0 {
		fmt.Fprintf(r.out, "%s: %s\n", name, humanize.IBytes(uint64(processed))) //nolint:gosec // counts are never negative

		return
	}

	fmt.Fprintf(r.out, "%s: %s / %s (%d%%)\n", //nolint:gosec // counts are never negative
		name,
		humanize.IBytes(uint64(processed)),
		humanize.IBytes(uint64(total)),
		processed*100/total)
}
