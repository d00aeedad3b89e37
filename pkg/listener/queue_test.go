package listener

import (
	"net"
	"testing"
	"time"
)

type closeCountConn struct {
	closes int
}

func (c *closeCountConn) Read(p []byte) (int, error)  { return 0, nil }
func (c *closeCountConn) Write(p []byte) (int, error) { return len(p), nil }
func (c *closeCountConn) Close() error {
	c.closes++
	return nil
}
func (c *closeCountConn) LocalAddr() net.Addr                { return &net.TCPAddr{} }
func (c *closeCountConn) RemoteAddr() net.Addr               { return &net.TCPAddr{} }
func (c *closeCountConn) SetDeadline(t time.Time) error      { return nil }
func (c *closeCountConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *closeCountConn) SetWriteDeadline(t time.Time) error { return nil }

func TestQueueSlotReuse(t *testing.T) {
	q := NewQueue(1)

	for i := 0; i < 3; i++ {
		conn := &closeCountConn{}
		id, err := q.Acquire(conn)
		if err != nil {
			t.Fatalf("session %d: %v", i, err)
		}
		if id != 0 {
			t.Errorf("session %d: slot = %d, want 0", i, id)
		}
		if err := q.Release(id); err != nil {
			t.Fatalf("release %d: %v", i, err)
		}
		if conn.closes != 1 {
			t.Errorf("session %d: closes = %d, want 1", i, conn.closes)
		}
	}

	if q.Active() != 0 {
		t.Errorf("active = %d, want 0", q.Active())
	}
}

func TestQueueBoundsSessions(t *testing.T) {
	q := NewQueue(1)

	if _, err := q.Acquire(&closeCountConn{}); err != nil {
		t.Fatal(err)
	}
	if _, err := q.Acquire(&closeCountConn{}); err != ErrQueueFull {
		t.Fatalf("second acquire: err = %v, want ErrQueueFull", err)
	}
}

func TestReleaseFreeSlotIsNoop(t *testing.T) {
	q := NewQueue(1)

	conn := &closeCountConn{}
	id, err := q.Acquire(conn)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Release(id); err != nil {
		t.Fatal(err)
	}
	// double release must not close again
	if err := q.Release(id); err != nil {
		t.Fatal(err)
	}
	if conn.closes != 1 {
		t.Errorf("closes = %d, want 1", conn.closes)
	}

	if err := q.Release(-1); err != nil {
		t.Errorf("release out of range: %v", err)
	}
}

func TestEndpointString(t *testing.T) {
	if got, want := (Endpoint{Port: 12345}).String(), ":12345"; got != want {
		t.Errorf("wildcard endpoint = %q, want %q", got, want)
	}
	if got, want := (Endpoint{Addr: "192.168.1.102", Port: 12344}).String(), "192.168.1.102:12344"; got != want {
		t.Errorf("endpoint = %q, want %q", got, want)
	}
}

func TestListenRejectsBadAddr(t *testing.T) {
	if _, err := Listen(Endpoint{Addr: "bogus", Port: 0}); err == nil {
		t.Error("expected error for non-IP address")
	}
	if _, err := Listen(Endpoint{Addr: "::1", Port: 0}); err == nil {
		t.Error("expected error for IPv6 address")
	}
}
