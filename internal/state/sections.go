package state

import (
	"slices"
	"sync"

	"github.com/yorkei04/portfolio/internal/dom"
)

// RevealThreshold is the visible fraction at which a section plays its
// entrance animation.
const RevealThreshold = 0.1

// Sections records which page sections have been scrolled into view at
// least once. A flag never goes back to false.
type Sections struct {
	mu       sync.Mutex
	revealed map[string]bool
	order    []string
	next     int
	subs     map[int]func(id string)
}

// NewSections returns a tracker with every flag unset.
func NewSections() *Sections {
	return &Sections{
		revealed: make(map[string]bool),
		subs:     make(map[int]func(string)),
	}
}

// Visible reports whether section id has been revealed.
func (s *Sections) Visible(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed[id]
}

// Revealed lists revealed sections in the order they were revealed.
func (s *Sections) Revealed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.order)
}

// Reveal sets the flag for id. Subscribers hear about the first call only.
func (s *Sections) Reveal(id string) {
	s.mu.Lock()
	if s.revealed[id] {
		s.mu.Unlock()
		return
	}
	s.revealed[id] = true
	s.order = append(s.order, id)
	fns := make([]func(string), 0, len(s.subs))
	keys := make([]int, 0, len(s.subs))
	for k := range s.subs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fns = append(fns, s.subs[k])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(id)
	}
}

// Subscribe calls fn whenever a section is revealed for the first time.
func (s *Sections) Subscribe(fn func(id string)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	k := s.next
	s.subs[k] = fn
	return func() {
		s.mu.Lock()
		delete(s.subs, k)
		s.mu.Unlock()
	}
}

// Observe watches the element with HTML id `id` and reveals it once at
// least threshold of it is inside the viewport. The check runs immediately
// and then on every scroll and resize until it fires, after which the
// observer detaches itself. A section that is missing from doc is simply
// not revealed yet.
func (s *Sections) Observe(doc dom.Document, win *dom.Window, id string, threshold float64) (stop func()) {
	var removers []func()
	stopped := false
	stop = func() {
		if stopped {
			return
		}
		stopped = true
		for _, r := range removers {
			r()
		}
	}

	check := func() {
		if stopped || s.Visible(id) {
			stop()
			return
		}
		el, ok := doc.Query("#" + id)
		if !ok {
			return
		}
		if dom.VisibleRatio(doc, el) >= threshold {
			s.Reveal(id)
			stop()
		}
	}

	removers = append(removers,
		win.AddListener(dom.Scroll, check),
		win.AddListener(dom.Resize, check),
	)
	check()
	return stop
}
