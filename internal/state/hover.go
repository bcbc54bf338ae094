// Package state holds the page's shared interaction state: which project
// card is hovered, and which sections have been revealed.
//
// Both values are owned by the page session and handed to the components
// that read them. Only the card handlers write the hover selection; overlays
// and the analytics beacon subscribe to it.
package state

import (
	"slices"
	"sync"
)

// Hover is the currently hovered project card, or none.
type Hover struct {
	mu   sync.Mutex
	id   string
	set  bool
	next int
	subs map[int]func(id string, ok bool)
}

// NewHover returns an empty hover selection.
func NewHover() *Hover {
	return &Hover{subs: make(map[int]func(string, bool))}
}

// Current returns the hovered id and whether any card is hovered.
func (h *Hover) Current() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.id, h.set
}

// Is reports whether id is the hovered card.
func (h *Hover) Is(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.set && h.id == id
}

// Enter makes id the hovered card, superseding any previous selection.
func (h *Hover) Enter(id string) {
	h.update(id, true, nil)
}

// Leave clears the selection if id is the hovered card. A leave for a card
// that was already superseded is ignored.
func (h *Hover) Leave(id string) {
	h.update("", false, func() bool { return h.set && h.id == id })
}

// Clear drops the selection unconditionally.
func (h *Hover) Clear() {
	h.update("", false, nil)
}

// update applies the change if guard, called under the lock, allows it.
func (h *Hover) update(id string, set bool, guard func() bool) {
	h.mu.Lock()
	if guard != nil && !guard() {
		h.mu.Unlock()
		return
	}
	if h.set == set && h.id == id {
		h.mu.Unlock()
		return
	}
	h.id, h.set = id, set
	ids := make([]int, 0, len(h.subs))
	for k := range h.subs {
		ids = append(ids, k)
	}
	h.mu.Unlock()
	slices.Sort(ids)

	for _, k := range ids {
		h.mu.Lock()
		fn, ok := h.subs[k]
		h.mu.Unlock()
		if ok {
			fn(id, set)
		}
	}
}

// Subscribe calls fn after every change of the selection. The returned
// function unsubscribes.
func (h *Hover) Subscribe(fn func(id string, ok bool)) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	k := h.next
	h.subs[k] = fn
	return func() {
		h.mu.Lock()
		delete(h.subs, k)
		h.mu.Unlock()
	}
}
