package ops

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDelayQueueFiresInDeadlineOrder(t *testing.T) {
	q := newDelayQueue()
	defer q.Stop()

	var seq atomic.Int32
	firedSecond := make(chan struct{})
	q.Schedule(time.Now().Add(30*time.Millisecond), func() {
		if seq.Add(1) != 2 {
			t.Error("later deadline fired first")
		}
		close(firedSecond)
	})
	q.Schedule(time.Now().Add(10*time.Millisecond), func() {
		if seq.Add(1) != 1 {
			t.Error("earlier deadline fired second")
		}
	})

	select {
	case <-firedSecond:
	case <-time.After(time.Second):
		t.Fatal("entries never fired")
	}
}

func TestDelayQueueCancel(t *testing.T) {
	q := newDelayQueue()
	defer q.Stop()

	var fired atomic.Bool
	e := q.Schedule(time.Now().Add(20*time.Millisecond), func() {
		fired.Store(true)
	})
	q.Cancel(e)

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Error("cancelled entry fired")
	}
}

func TestDelayQueueStopDropsPending(t *testing.T) {
	q := newDelayQueue()

	var fired atomic.Bool
	q.Schedule(time.Now().Add(20*time.Millisecond), func() {
		fired.Store(true)
	})
	q.Stop()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Error("entry fired after Stop")
	}
}
