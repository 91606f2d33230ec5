package ops

import (
	"container/heap"
	"sync"
	"time"
)

// timerEntry is one scheduled callback in the delay queue.
type timerEntry struct {
	at        time.Time
	fn        func()
	index     int
	cancelled bool
}

type timerHeap []*timerEntry

func (h timerHeap) Len() int           { return len(h) }
func (h timerHeap) Less(i, j int) bool { return h[i].at.Before(h[j].at) }
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// delayQueue runs callbacks at their deadlines from a single goroutine,
// instead of one timer per scheduled item. Entries can be cancelled up
// until they fire.
type delayQueue struct {
	mu      sync.Mutex
	entries timerHeap
	wake    chan struct{}
	done    chan struct{}
	stopped bool
}

func newDelayQueue() *delayQueue {
	q := &delayQueue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

// Schedule registers fn to run at the given time and returns a handle
// usable for cancellation.
func (q *delayQueue) Schedule(at time.Time, fn func()) *timerEntry {
	e := &timerEntry{at: at, fn: fn}

	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return e
	}
	heap.Push(&q.entries, e)
	first := e.index == 0
	q.mu.Unlock()

	if first {
		q.notify()
	}
	return e
}

// Cancel marks the entry so it will not fire. Safe to call more than
// once and after the entry has fired.
func (q *delayQueue) Cancel(e *timerEntry) {
	if e == nil {
		return
	}
	q.mu.Lock()
	e.cancelled = true
	q.mu.Unlock()
}

// Stop shuts down the queue goroutine. Pending entries never fire.
func (q *delayQueue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	q.mu.Unlock()
	close(q.done)
}

func (q *delayQueue) notify() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *delayQueue) run() {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		q.mu.Lock()
		var wait time.Duration = -1
		for q.entries.Len() > 0 {
			next := q.entries[0]
			if next.cancelled {
				heap.Pop(&q.entries)
				continue
			}
			d := time.Until(next.at)
			if d > 0 {
				wait = d
				break
			}
			heap.Pop(&q.entries)
			fn := next.fn
			q.mu.Unlock()
			fn()
			q.mu.Lock()
		}
		q.mu.Unlock()

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		if wait >= 0 {
			timer.Reset(wait)
		} else {
			timer.Reset(time.Hour)
		}

		select {
		case <-q.done:
			return
		case <-q.wake:
		case <-timer.C:
		}
	}
}
