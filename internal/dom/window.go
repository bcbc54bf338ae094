package dom

import (
	"slices"
	"sync"
)

// EventType names a window event the interaction model listens to.
type EventType string

const (
	Scroll EventType = "scroll"
	Resize EventType = "resize"
)

// Window dispatches scroll and resize events to listeners.
type Window struct {
	mu        sync.Mutex
	next      int
	listeners map[EventType]map[int]func()
}

// NewWindow returns a window with no listeners.
func NewWindow() *Window {
	return &Window{listeners: make(map[EventType]map[int]func())}
}

// AddListener registers fn for ev and returns the function that removes it.
// Calling the remover more than once is harmless.
func (w *Window) AddListener(ev EventType, fn func()) (remove func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.next++
	id := w.next
	if w.listeners[ev] == nil {
		w.listeners[ev] = make(map[int]func())
	}
	w.listeners[ev][id] = fn
	return func() {
		w.mu.Lock()
		delete(w.listeners[ev], id)
		w.mu.Unlock()
	}
}

// Listeners reports how many listeners are registered for ev.
func (w *Window) Listeners(ev EventType) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners[ev])
}

// Dispatch calls every listener registered for ev, in registration order.
// Listeners may add or remove listeners while being dispatched.
func (w *Window) Dispatch(ev EventType) {
	w.mu.Lock()
	ids := make([]int, 0, len(w.listeners[ev]))
	for id := range w.listeners[ev] {
		ids = append(ids, id)
	}
	w.mu.Unlock()
	slices.Sort(ids)

	for _, id := range ids {
		w.mu.Lock()
		fn, ok := w.listeners[ev][id]
		w.mu.Unlock()
		if ok {
			fn()
		}
	}
}
