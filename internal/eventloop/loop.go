// Package eventloop runs page callbacks one at a time on a single goroutine.
//
// A Loop holds two kinds of work: tasks posted with Post, which run in FIFO
// order, and timers scheduled with AfterFunc or Every, which run once their
// deadline has passed. Callbacks never run concurrently with each other, so
// state touched only from callbacks needs no locking.
//
// Two clocks are available. New returns a loop driven by wall time through
// Run. NewVirtual returns a loop whose clock only moves when Advance is
// called, which is how tests step through animations deterministically.
package eventloop

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// Timer is a pending AfterFunc or Every callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the timer was still pending.
	Stop() bool
}

// Loop is a single-threaded cooperative scheduler.
type Loop struct {
	mu      sync.Mutex
	virtual bool
	now     time.Time
	seq     uint64
	tasks   []func()
	timers  timerHeap
	wake    chan struct{}
	running bool
}

// New returns a loop on the wall clock. Callbacks run inside Run.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// NewVirtual returns a loop whose clock starts at start and only advances
// through Advance.
func NewVirtual(start time.Time) *Loop {
	return &Loop{virtual: true, now: start, wake: make(chan struct{}, 1)}
}

// Now returns the loop's current time.
func (l *Loop) Now() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.clock()
}

func (l *Loop) clock() time.Time {
	if l.virtual {
		return l.now
	}
	return time.Now()
}

// Post queues fn to run after the currently executing callback returns.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
	l.notify()
}

// AfterFunc schedules fn to run once, d after now.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	return l.schedule(d, 0, fn)
}

// Every schedules fn to run every interval until the timer is stopped.
func (l *Loop) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		panic("eventloop: non-positive interval")
	}
	return l.schedule(interval, interval, fn)
}

func (l *Loop) schedule(d, interval time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	l.mu.Lock()
	l.seq++
	t := &timer{
		loop:     l,
		when:     l.clock().Add(d),
		interval: interval,
		fn:       fn,
		seq:      l.seq,
	}
	heap.Push(&l.timers, t)
	l.mu.Unlock()
	l.notify()
	return t
}

func (l *Loop) notify() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Pending reports the number of queued tasks and live timers.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks) + len(l.timers)
}

// Run executes callbacks on the wall clock until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	if l.virtual {
		panic("eventloop: Run called on a virtual loop")
	}
	for {
		l.drainTasks()
		l.fireDue(time.Now())
		l.drainTasks()

		wait := time.Hour
		l.mu.Lock()
		if len(l.tasks) > 0 {
			wait = 0
		} else if len(l.timers) > 0 {
			wait = time.Until(l.timers[0].when)
		}
		l.mu.Unlock()
		if wait <= 0 {
			continue
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-l.wake:
		case <-t.C:
		}
		t.Stop()
	}
}

// Flush runs queued tasks on a virtual loop without moving the clock.
func (l *Loop) Flush() {
	l.drainTasks()
	l.fireDue(l.Now())
	l.drainTasks()
}

// Advance moves a virtual clock forward by d, running every task and timer
// that falls due on the way, in deadline order.
func (l *Loop) Advance(d time.Duration) {
	if !l.virtual {
		panic("eventloop: Advance called on a wall-clock loop")
	}
	l.mu.Lock()
	target := l.now.Add(d)
	l.mu.Unlock()

	l.drainTasks()
	for {
		l.mu.Lock()
		if len(l.timers) == 0 || l.timers[0].when.After(target) {
			l.now = target
			l.mu.Unlock()
			break
		}
		next := l.timers[0].when
		if next.After(l.now) {
			l.now = next
		}
		l.mu.Unlock()

		l.fireDue(next)
		l.drainTasks()
	}
	l.drainTasks()
}

func (l *Loop) drainTasks() {
	for {
		l.mu.Lock()
		if len(l.tasks) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.tasks[0]
		l.tasks[0] = nil
		l.tasks = l.tasks[1:]
		l.mu.Unlock()
		fn()
	}
}

func (l *Loop) fireDue(now time.Time) {
	for {
		l.mu.Lock()
		if len(l.timers) == 0 || l.timers[0].when.After(now) {
			l.mu.Unlock()
			return
		}
		t := heap.Pop(&l.timers).(*timer)
		if t.interval > 0 {
			l.seq++
			t.seq = l.seq
			t.when = t.when.Add(t.interval)
			heap.Push(&l.timers, t)
		} else {
			t.done = true
		}
		fn := t.fn
		l.mu.Unlock()
		fn()
	}
}

type timer struct {
	loop     *Loop
	when     time.Time
	interval time.Duration
	fn       func()
	seq      uint64
	index    int
	done     bool
}

func (t *timer) Stop() bool {
	l := t.loop
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	if t.index >= 0 && t.index < len(l.timers) && l.timers[t.index] == t {
		heap.Remove(&l.timers, t.index)
	}
	return true
}

// timerHeap orders timers by deadline, then by scheduling order.
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].seq < h[j].seq
	}
	return h[i].when.Before(h[j].when)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
