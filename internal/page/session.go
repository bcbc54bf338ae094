// Package page wires the interaction model of the portfolio page together:
// hover state, section reveals, overlays, the hero intro and the header.
//
// A Session is owned by the event loop it was mounted on. All of its
// methods must be called from that loop.
package page

import (
	"github.com/charmbracelet/log"

	"github.com/yorkei04/portfolio/internal/content"
	"github.com/yorkei04/portfolio/internal/dom"
	"github.com/yorkei04/portfolio/internal/overlay"
	"github.com/yorkei04/portfolio/internal/state"
	"github.com/yorkei04/portfolio/internal/typing"
)

// ScrolledOffset is how far the page must scroll before the header switches
// to its compact style.
const ScrolledOffset = 50

// Snapshot is the page's observable state at one instant.
type Snapshot struct {
	Hovered  string          `json:"hovered,omitempty"`
	Revealed []string        `json:"revealed"`
	Overlays []overlay.View  `json:"overlays"`
	Hero     typing.HeroView `json:"hero"`
	Scrolled bool            `json:"scrolled"`
}

// Session is one mounted page.
type Session struct {
	portfolio content.Portfolio
	defs      []Definition

	hover    *state.Hover
	sections *state.Sections
	layer    *overlay.Layer
	hero     *typing.Hero

	env      overlay.Env
	mounted  bool
	scrolled bool
	stops    []func()
}

// New builds an unmounted session for p.
func New(p content.Portfolio) *Session {
	s := &Session{
		portfolio: p,
		defs:      Definitions(p),
		hover:     state.NewHover(),
		sections:  state.NewSections(),
	}
	s.layer = overlay.NewLayer(Positioners(s.defs, s.hover)...)
	return s
}

// Hover returns the shared hover store.
func (s *Session) Hover() *state.Hover { return s.hover }

// Sections returns the section visibility flags.
func (s *Session) Sections() *state.Sections { return s.sections }

// Layer returns the overlay layer.
func (s *Session) Layer() *overlay.Layer { return s.layer }

// Definitions returns the overlay definitions the layer was built from.
func (s *Session) Definitions() []Definition { return append([]Definition(nil), s.defs...) }

// Mount attaches the session to env and starts the hero intro.
func (s *Session) Mount(env overlay.Env) {
	if s.mounted {
		return
	}
	s.mounted = true
	s.env = env
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}

	s.hero = typing.NewHero(env.Loop, typing.HeroText{
		Greeting:    s.portfolio.Hero.Greeting,
		Name:        s.portfolio.Name,
		Tagline:     s.portfolio.Hero.Tagline,
		Description: s.portfolio.Hero.Description,
	}, func() { logger.Debug("hero intro finished") })

	s.stops = append(s.stops, s.sections.Subscribe(func(id string) {
		logger.Debug("section revealed", "section", id)
	}))
	for _, id := range content.Sections() {
		s.stops = append(s.stops, s.sections.Observe(env.Doc, env.Win, id, state.RevealThreshold))
	}

	s.updateScrolled()
	s.stops = append(s.stops, env.Win.AddListener(dom.Scroll, s.updateScrolled))

	s.layer.Mount(env)
	s.hero.Mount()
}

// Unmount detaches every listener and cancels pending timers.
func (s *Session) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.layer.Unmount()
	s.hero.Unmount()
	for _, stop := range s.stops {
		stop()
	}
	s.stops = nil
}

// Enter records the pointer entering a project card.
func (s *Session) Enter(id string) { s.hover.Enter(id) }

// Leave records the pointer leaving a project card.
func (s *Session) Leave(id string) { s.hover.Leave(id) }

// Scrolled reports whether the header is in its compact style.
func (s *Session) Scrolled() bool { return s.scrolled }

func (s *Session) updateScrolled() {
	s.scrolled = s.env.Doc.ScrollY() > ScrolledOffset
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Revealed: s.sections.Revealed(),
		Overlays: s.layer.Views(),
		Scrolled: s.scrolled,
	}
	if id, ok := s.hover.Current(); ok {
		snap.Hovered = id
	}
	if s.hero != nil {
		snap.Hero = s.hero.View()
	}
	return snap
}
