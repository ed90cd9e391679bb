package channel

import "sync"

// broadcastTable is the shared sender-table of a broadcast group: the set
// of member queues plus the mutex that makes a send atomic across all of
// them. It is refcounted only implicitly, by Go's GC, following the
// sender-table's lifetime rule in the torus design (it lives as long as any
// member endpoint does).
type broadcastTable[T any] struct {
	mu      sync.Mutex
	members []*queue[T]
}

// BroadcastEnd is one member's endpoint into a broadcast group. Any member
// may Send; every member, including the sender, observes every Send via
// Recv, in the sender's own FIFO order.
type BroadcastEnd[T any] struct {
	table *broadcastTable[T]
	self  int
	clone func(T) T
}

// NewBroadcastGroup builds n member endpoints sharing one sender-table.
// clone is applied to the payload once per member delivery so that
// concurrent receivers never alias the same value; pass nil if T's zero
// handling makes aliasing safe (e.g. plain value types never mutated after
// send).
func NewBroadcastGroup[T any](n int, clone func(T) T) []*BroadcastEnd[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	table := &broadcastTable[T]{members: make([]*queue[T], n)}
	for i := range table.members {
		table.members[i] = newQueue[T]()
	}
	ends := make([]*BroadcastEnd[T], n)
	for i := range ends {
		ends[i] = &BroadcastEnd[T]{table: table, self: i, clone: clone}
	}
	return ends
}

// Send delivers v to every member of the group, including this endpoint,
// atomically with respect to other concurrent Sends on the same group: no
// other Send's deliveries interleave between this Send's per-member pushes.
func (e *BroadcastEnd[T]) Send(v T) {
	e.table.mu.Lock()
	defer e.table.mu.Unlock()
	for _, m := range e.table.members {
		m.push(e.clone(v))
	}
}

// Recv blocks until the next broadcast payload destined for this member is
// available, in the FIFO order the originating sender issued it.
func (e *BroadcastEnd[T]) Recv() T {
	return e.table.members[e.self].pop()
}
