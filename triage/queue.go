// Implements the triage waiting queue, which holds all patients waiting to
// be pulled for treatment. The head is always the globally highest-priority
// patient; equal priorities are resolved by each entry's own insertion-time
// tie-break convention.

package triage

import (
	"container/heap"
	"sort"
)

// queueEntry wraps a patient with its heap ordering keys. seq is assigned
// from a counter that only ever increases, so sequence numbers are never
// reused across the queue's lifetime. tieKey is +seq under FIFO and -seq
// under LIFO, frozen at insertion: a later mode switch never rewrites the
// keys of entries already queued, so a running queue may legitimately hold
// a mix of FIFO-tagged and LIFO-tagged entries.
type queueEntry struct {
	patient  *PatientRecord
	priority int
	seq      uint64
	tieKey   int64
}

// entryHeap implements a priority queue with deterministic ordering.
// Ordering: priority value (descending) → tie-break key (ascending).
type entryHeap []*queueEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].tieKey < h[j].tieKey
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(*queueEntry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// WaitingPatient is one row of a queue snapshot, for display and audit.
type WaitingPatient struct {
	Name          string        `json:"name"`
	Severity      SeverityLevel `json:"severity"`
	PriorityValue int           `json:"priority_value"`
}

// Queue is the triage waiting list. One instance exists per operating
// session and is owned exclusively by it; no internal locking.
type Queue struct {
	entries entryHeap
	nextSeq uint64
}

// NewQueue creates an empty triage queue.
func NewQueue() *Queue {
	q := &Queue{entries: make(entryHeap, 0)}
	heap.Init(&q.entries)
	return q
}

// Insert enqueues a patient under the given priority value. mode decides the
// tie-break convention for this entry only. O(log n), no failure mode.
func (q *Queue) Insert(p *PatientRecord, priority int, mode QueueMode) {
	e := &queueEntry{patient: p, priority: priority, seq: q.nextSeq}
	if mode == ModeLIFO {
		e.tieKey = -int64(e.seq)
	} else {
		e.tieKey = int64(e.seq)
	}
	q.nextSeq++
	heap.Push(&q.entries, e)
}

// PopHighest removes and returns the highest-priority patient and its
// priority value. The third return is false when the queue is empty; an
// empty queue is an expected state, never a fault. O(log n).
func (q *Queue) PopHighest() (*PatientRecord, int, bool) {
	if q.entries.Len() == 0 {
		return nil, 0, false
	}
	e := heap.Pop(&q.entries).(*queueEntry)
	return e.patient, e.priority, true
}

// Peek returns what PopHighest would return, without removing it.
func (q *Queue) Peek() (*PatientRecord, int, bool) {
	if q.entries.Len() == 0 {
		return nil, 0, false
	}
	e := q.entries[0]
	return e.patient, e.priority, true
}

// IsEmpty reports whether the queue holds no patients.
func (q *Queue) IsEmpty() bool {
	return q.entries.Len() == 0
}

// Len returns the number of waiting patients.
func (q *Queue) Len() int {
	return q.entries.Len()
}

// SnapshotSorted returns every waiting patient in full pop order without
// mutating the queue. The order matches what repeated PopHighest calls on a
// copy of the queue would produce. O(n log n).
func (q *Queue) SnapshotSorted() []WaitingPatient {
	sorted := make([]*queueEntry, len(q.entries))
	copy(sorted, q.entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].priority != sorted[j].priority {
			return sorted[i].priority > sorted[j].priority
		}
		return sorted[i].tieKey < sorted[j].tieKey
	})

	out := make([]WaitingPatient, 0, len(sorted))
	for _, e := range sorted {
		out = append(out, WaitingPatient{
			Name:          e.patient.Name,
			Severity:      e.patient.Severity,
			PriorityValue: e.priority,
		})
	}
	return out
}
