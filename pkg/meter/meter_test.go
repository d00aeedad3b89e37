package meter

import (
	"math"
	"testing"
	"time"
)

// fakeClock is a manually advanced microsecond counter.
type fakeClock struct {
	now uint64
}

func (c *fakeClock) clock() uint64 {
	return c.now
}

func TestRateOverTwoSecondWindow(t *testing.T) {
	cases := []struct {
		payload int
		sends   int
	}{
		{payload: 2048, sends: 10},
		{payload: 2048, sends: 10000},
		{payload: 1, sends: 1},
		{payload: 65536, sends: 321},
	}

	for _, tc := range cases {
		c := &fakeClock{}
		w := NewWindow(c.clock, 2*time.Second)

		for i := 0; i < tc.sends; i++ {
			w.Add(tc.payload)
		}
		c.now += 2000000

		if !w.Ready(c.now) {
			t.Fatalf("window not ready after 2,000,000us")
		}

		sent := float64(tc.payload) * float64(tc.sends)
		want := sent * 8 / 1048576 / 2.0
		got := w.Rate(c.now)
		if math.Abs(got-want) > 1e-9*want {
			t.Errorf("payload=%d sends=%d: rate = %v, want %v", tc.payload, tc.sends, got, want)
		}
	}
}

func TestWindowReset(t *testing.T) {
	c := &fakeClock{}
	w := NewWindow(c.clock, 2*time.Second)

	w.Add(4096)
	c.now = 2000000
	if !w.Ready(c.now) {
		t.Fatal("expected window ready")
	}

	w.Reset(c.now)
	if w.Bytes() != 0 {
		t.Errorf("bytes after reset = %d, want 0", w.Bytes())
	}
	if w.Elapsed(c.now) != 0 {
		t.Errorf("elapsed after reset = %d, want 0", w.Elapsed(c.now))
	}
	if w.Ready(c.now) {
		t.Error("window ready immediately after reset")
	}

	// accumulation restarts from zero
	w.Add(100)
	if w.Bytes() != 100 {
		t.Errorf("bytes = %d, want 100", w.Bytes())
	}
}

func TestWindowNotReadyBeforeInterval(t *testing.T) {
	c := &fakeClock{}
	w := NewWindow(c.clock, 2*time.Second)

	c.now = 1999999
	if w.Ready(c.now) {
		t.Error("window ready before interval elapsed")
	}
}

func TestElapsedAcrossCounterWrap(t *testing.T) {
	c := &fakeClock{now: math.MaxUint64 - 500000}
	w := NewWindow(c.clock, 2*time.Second)

	// counter wraps; unsigned subtraction must still yield 2,000,000us
	c.now += 2000000
	if got := w.Elapsed(c.now); got != 2000000 {
		t.Fatalf("elapsed across wrap = %d, want 2000000", got)
	}
	if !w.Ready(c.now) {
		t.Error("window not ready across wrap")
	}

	w.Add(2048)
	want := 2048.0 * 8 / 1048576 / 2.0
	if got := w.Rate(c.now); math.Abs(got-want) > 1e-12 {
		t.Errorf("rate across wrap = %v, want %v", got, want)
	}
}

func TestFormatReport(t *testing.T) {
	if got, want := FormatReport(16.28551), "send speed = 16.2855 Mbps!"; got != want {
		t.Errorf("FormatReport = %q, want %q", got, want)
	}
	if got, want := FormatReport(0), "send speed = 0.0000 Mbps!"; got != want {
		t.Errorf("FormatReport = %q, want %q", got, want)
	}
}

func TestRateZeroElapsed(t *testing.T) {
	c := &fakeClock{}
	w := NewWindow(c.clock, 2*time.Second)
	w.Add(2048)
	if got := w.Rate(c.now); got != 0 {
		t.Errorf("rate with zero elapsed = %v, want 0", got)
	}
}
