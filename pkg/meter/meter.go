// Package meter tracks bytes moved across a fixed measurement window and
// converts the count into a megabit-per-second rate.
package meter

import (
	"fmt"
	"time"
)

// Clock returns a monotonic timestamp in microseconds. The counter may wrap
// at its width; elapsed time is computed by unsigned subtraction, which stays
// correct across a single wrap.
type Clock func() uint64

var processStart = time.Now()

// SystemClock is the default monotonic microsecond clock.
func SystemClock() uint64 {
	return uint64(time.Since(processStart) / time.Microsecond)
}

// Window accumulates the bytes transferred since its start timestamp.
// It is owned by a single goroutine; no locking.
type Window struct {
	clock    Clock
	interval uint64 // microseconds
	start    uint64
	bytes    uint64
}

func NewWindow(clock Clock, interval time.Duration) *Window {
	if clock == nil {
		clock = SystemClock
	}
	w := &Window{
		clock:    clock,
		interval: uint64(interval / time.Microsecond),
	}
	w.Reset(clock())
	return w
}

// Now reads the window's clock.
func (w *Window) Now() uint64 {
	return w.clock()
}

// Add records n bytes successfully transferred in the current window.
func (w *Window) Add(n int) {
	w.bytes += uint64(n)
}

// Bytes returns the count accumulated since the last reset.
func (w *Window) Bytes() uint64 {
	return w.bytes
}

// Elapsed returns the microseconds since the window started.
func (w *Window) Elapsed(now uint64) uint64 {
	return now - w.start
}

// Ready reports whether the window covers at least one full interval.
func (w *Window) Ready(now uint64) bool {
	return w.Elapsed(now) >= w.interval
}

// Rate returns the transfer rate over the window in megabits per second.
// The Mbit scale is base-1024: bytes*8 / 1,048,576 / elapsed seconds.
func (w *Window) Rate(now uint64) float64 {
	elapsed := w.Elapsed(now)
	if elapsed == 0 {
		return 0
	}
	return float64(w.bytes) * 8 * 1000 * 1000 / 1024 / 1024 / float64(elapsed)
}

// Reset starts a new window at the given timestamp with a zero byte count.
func (w *Window) Reset(now uint64) {
	w.start = now
	w.bytes = 0
}

// FormatReport renders the throughput line. The format is kept stable for
// log scraping.
func FormatReport(mbps float64) string {
	return fmt.Sprintf("send speed = %.4f Mbps!", mbps)
}
