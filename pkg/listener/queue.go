package listener

import (
	"net"

	"github.com/pkg/errors"
)

// DefaultQueueLen is the session queue capacity: one pending or active
// session at a time.
const DefaultQueueLen = 1

var ErrQueueFull = errors.New("session queue full")

type slot struct {
	conn net.Conn
	used bool
}

// Queue is a fixed arena of connection slots. A slot is acquired when a
// session is accepted and released when it disconnects; the same index is
// reused for the next session.
type Queue struct {
	slots []slot
}

func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueLen
	}
	return &Queue{
		slots: make([]slot, capacity),
	}
}

// Acquire stores the connection in a free slot and returns its index.
func (q *Queue) Acquire(conn net.Conn) (int, error) {
	for i := range q.slots {
		if !q.slots[i].used {
			q.slots[i] = slot{conn: conn, used: true}
			return i, nil
		}
	}
	return -1, ErrQueueFull
}

// Release closes the slot's connection and frees the slot. Releasing a free
// slot is a no-op, so a session is closed at most once.
func (q *Queue) Release(id int) error {
	if id < 0 || id >= len(q.slots) || !q.slots[id].used {
		return nil
	}
	conn := q.slots[id].conn
	q.slots[id] = slot{}
	return conn.Close()
}

// Active returns the number of slots in use.
func (q *Queue) Active() int {
	n := 0
	for i := range q.slots {
		if q.slots[i].used {
			n++
		}
	}
	return n
}
